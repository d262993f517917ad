package model

import (
	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"
)

// moneyContext is the arithmetic context every monetary value goes through.
// Amounts are stored and reported with two decimal places.
var moneyContext = decimal.Context128

const moneyScale = 2

// NewMoney returns a zero amount bound to the money context
func NewMoney() *decimal.Big {
	amount := new(decimal.Big)
	amount.Context = moneyContext
	amount.Context.RoundingMode = decimal.ToNearestEven
	return amount
}

// MoneyFromFloat converts a float into a two decimal place amount
func MoneyFromFloat(value float64) *decimal.Big {
	return RoundMoney(NewMoney().SetFloat64(value))
}

// RoundMoney quantizes an amount to two decimal places in place
func RoundMoney(amount *decimal.Big) *decimal.Big {
	return amount.Quantize(moneyScale)
}

// MoneyToFloat renders an amount as a float for JSON payloads
func MoneyToFloat(amount *decimal.Big) float64 {
	if amount == nil {
		return 0
	}
	value, _ := amount.Float64()
	return value
}

// WrapMoney wraps an amount for persistence through a decimal column
func WrapMoney(amount *decimal.Big) *postgres.Decimal {
	return &postgres.Decimal{V: amount}
}

// ZeroMoneyColumn returns a persistable zero amount
func ZeroMoneyColumn() *postgres.Decimal {
	return WrapMoney(RoundMoney(NewMoney()))
}

// NullMoneyColumn returns a persistable absent amount, stored as SQL NULL.
// Money columns must never be a nil *postgres.Decimal: the driver conversion
// cannot handle a nil receiver.
func NullMoneyColumn() *postgres.Decimal {
	return &postgres.Decimal{}
}

// MoneyColumnValue unwraps a decimal column, treating NULL as zero
func MoneyColumnValue(column *postgres.Decimal) *decimal.Big {
	if column == nil || column.V == nil {
		return NewMoney()
	}
	return column.V
}
