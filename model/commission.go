package model

import (
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"
)

// CommissionStatus defines the payout stage of a commission
type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusApproved  CommissionStatus = "approved"
	CommissionStatusPaid      CommissionStatus = "paid"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

func (s CommissionStatus) String() string {
	return string(s)
}

func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionStatusPending, CommissionStatusApproved,
		CommissionStatusPaid, CommissionStatusCancelled:
		return true
	default:
		return false
	}
}

// Commission structure. DealValue, CommissionRate and CommissionAmount are
// frozen at creation time; later rate changes on the reseller never touch
// existing rows.
type Commission struct {
	ID               uint64            `sql:"type: bigint" gorm:"primary_key" json:"id"`
	ReferralID       uint64            `gorm:"column:referral_id;unique" json:"referral_id"`
	ResellerID       uint64            `gorm:"column:reseller_id" json:"reseller_id"`
	DealValue        *postgres.Decimal `gorm:"column:deal_value" sql:"type:decimal(18,2)" json:"deal_value"`
	CommissionRate   float64           `gorm:"column:commission_rate" json:"commission_rate"`
	CommissionAmount *postgres.Decimal `gorm:"column:commission_amount" sql:"type:decimal(18,2)" json:"commission_amount"`
	Status           CommissionStatus  `sql:"not null;type:commission_status_t" json:"status"`
	PaidAt           *time.Time        `gorm:"column:paid_at" json:"paid_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ComputeCommissionAmount derives the payout from a deal value and a
// percentage rate, quantized once to two decimal places.
func ComputeCommissionAmount(dealValue *decimal.Big, rate float64) *decimal.Big {
	amount := NewMoney().Copy(dealValue)
	amount.Mul(amount, NewMoney().SetFloat64(rate))
	amount.Quo(amount, NewMoney().SetUint64(100))
	return RoundMoney(amount)
}

// NewCommission creates a pending commission for a won referral
func NewCommission(referralID, resellerID uint64, dealValue *decimal.Big, rate float64) *Commission {
	return &Commission{
		ReferralID:       referralID,
		ResellerID:       resellerID,
		DealValue:        WrapMoney(NewMoney().Copy(dealValue)),
		CommissionRate:   rate,
		CommissionAmount: WrapMoney(ComputeCommissionAmount(dealValue, rate)),
		Status:           CommissionStatusPending,
	}
}

// CommissionWithReferral joins a commission with referral and partner context
type CommissionWithReferral struct {
	Commission
	ReferralCompany string `gorm:"column:referral_company" json:"referral_company"`
	ContactName     string `gorm:"column:contact_name" json:"contact_name"`
	ResellerName    string `gorm:"column:reseller_name" json:"reseller_name,omitempty"`
	ResellerEmail   string `gorm:"column:reseller_email" json:"reseller_email,omitempty"`
}

// CommissionList structure
type CommissionList struct {
	Commissions []CommissionWithReferral `json:"commissions"`
	Totals      []CommissionStatusTotal  `json:"totals"`
}

// CommissionStatusTotal is a per-status rollup of commission amounts
type CommissionStatusTotal struct {
	Status CommissionStatus  `json:"status"`
	Count  int64             `json:"count"`
	Sum    *postgres.Decimal `gorm:"column:sum" sql:"type:decimal(18,2)" json:"sum"`
}
