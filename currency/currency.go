// Package currency formats monetary amounts for display based on a country
// code. It is a static lookup layer: country selection only changes how an
// amount is rendered, never the stored value.
package currency

import (
	"strconv"
	"strings"

	"github.com/ericlagergren/decimal"
)

// Country describes one display locale
type Country struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	Symbol       string `json:"symbol"`
	ThousandsSep string `json:"-"`
	DecimalSep   string `json:"-"`
}

// DefaultCountry used when no display country is configured
const DefaultCountry = "US"

// Countries is the fixed display locale table, in menu order
var Countries = []Country{
	{Code: "US", Name: "United States", Currency: "USD", Symbol: "$", ThousandsSep: ",", DecimalSep: "."},
	{Code: "IN", Name: "India", Currency: "INR", Symbol: "₹", ThousandsSep: ",", DecimalSep: "."},
	{Code: "GB", Name: "United Kingdom", Currency: "GBP", Symbol: "£", ThousandsSep: ",", DecimalSep: "."},
	{Code: "EU", Name: "European Union", Currency: "EUR", Symbol: "€", ThousandsSep: ".", DecimalSep: ","},
	{Code: "CA", Name: "Canada", Currency: "CAD", Symbol: "CA$", ThousandsSep: ",", DecimalSep: "."},
	{Code: "AU", Name: "Australia", Currency: "AUD", Symbol: "A$", ThousandsSep: ",", DecimalSep: "."},
	{Code: "JP", Name: "Japan", Currency: "JPY", Symbol: "¥", ThousandsSep: ",", DecimalSep: "."},
	{Code: "CN", Name: "China", Currency: "CNY", Symbol: "¥", ThousandsSep: ",", DecimalSep: "."},
	{Code: "KR", Name: "South Korea", Currency: "KRW", Symbol: "₩", ThousandsSep: ",", DecimalSep: "."},
	{Code: "SG", Name: "Singapore", Currency: "SGD", Symbol: "S$", ThousandsSep: ",", DecimalSep: "."},
	{Code: "AE", Name: "United Arab Emirates", Currency: "AED", Symbol: "د.إ", ThousandsSep: ",", DecimalSep: "."},
	{Code: "BR", Name: "Brazil", Currency: "BRL", Symbol: "R$", ThousandsSep: ".", DecimalSep: ","},
	{Code: "MX", Name: "Mexico", Currency: "MXN", Symbol: "MX$", ThousandsSep: ",", DecimalSep: "."},
	{Code: "ZA", Name: "South Africa", Currency: "ZAR", Symbol: "R", ThousandsSep: ",", DecimalSep: "."},
	{Code: "NG", Name: "Nigeria", Currency: "NGN", Symbol: "₦", ThousandsSep: ",", DecimalSep: "."},
	{Code: "CH", Name: "Switzerland", Currency: "CHF", Symbol: "CHF", ThousandsSep: "'", DecimalSep: "."},
	{Code: "SE", Name: "Sweden", Currency: "SEK", Symbol: "kr", ThousandsSep: " ", DecimalSep: ","},
	{Code: "NO", Name: "Norway", Currency: "NOK", Symbol: "kr", ThousandsSep: " ", DecimalSep: ","},
	{Code: "NZ", Name: "New Zealand", Currency: "NZD", Symbol: "NZ$", ThousandsSep: ",", DecimalSep: "."},
	{Code: "TR", Name: "Turkey", Currency: "TRY", Symbol: "₺", ThousandsSep: ".", DecimalSep: ","},
	{Code: "PL", Name: "Poland", Currency: "PLN", Symbol: "zł", ThousandsSep: " ", DecimalSep: ","},
	{Code: "TH", Name: "Thailand", Currency: "THB", Symbol: "฿", ThousandsSep: ",", DecimalSep: "."},
	{Code: "MY", Name: "Malaysia", Currency: "MYR", Symbol: "RM", ThousandsSep: ",", DecimalSep: "."},
	{Code: "ID", Name: "Indonesia", Currency: "IDR", Symbol: "Rp", ThousandsSep: ".", DecimalSep: ","},
	{Code: "PH", Name: "Philippines", Currency: "PHP", Symbol: "₱", ThousandsSep: ",", DecimalSep: "."},
	{Code: "VN", Name: "Vietnam", Currency: "VND", Symbol: "₫", ThousandsSep: ".", DecimalSep: ","},
}

// GetCountryByCode returns the display locale for the given code, falling
// back to the first table entry for unknown codes.
func GetCountryByCode(code string) Country {
	code = strings.ToUpper(code)
	for _, c := range Countries {
		if c.Code == code {
			return c
		}
	}
	return Countries[0]
}

// GetSymbol returns the currency symbol for a country code
func GetSymbol(code string) string {
	return GetCountryByCode(code).Symbol
}

// Format renders an amount with the country's symbol and separators,
// trimming trailing zero cents ("$1,200" rather than "$1,200.00").
func Format(amount *decimal.Big, countryCode string) string {
	country := GetCountryByCode(countryCode)
	intPart, fracPart := split(amount)
	out := country.Symbol + group(intPart, country.ThousandsSep)
	if fracPart != "00" {
		out += country.DecimalSep + fracPart
	}
	return out
}

// FormatPrecise renders an amount always carrying two decimal places,
// used anywhere exact payout figures are shown.
func FormatPrecise(amount *decimal.Big, countryCode string) string {
	country := GetCountryByCode(countryCode)
	intPart, fracPart := split(amount)
	return country.Symbol + group(intPart, country.ThousandsSep) + country.DecimalSep + fracPart
}

// split renders the amount with two decimals and separates the parts
func split(amount *decimal.Big) (string, string) {
	if amount == nil {
		return "0", "00"
	}
	f, _ := amount.Float64()
	s := strconv.FormatFloat(f, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	return parts[0], parts[1]
}

func group(digits, sep string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	prefix := len(digits) % 3
	if prefix > 0 {
		b.WriteString(digits[:prefix])
	}
	for i := prefix; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	return out
}
