package model

import (
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"
)

// ResellerTier defines the partner standing ladder, lowest first
type ResellerTier string

const (
	ResellerTierBronze   ResellerTier = "bronze"
	ResellerTierSilver   ResellerTier = "silver"
	ResellerTierGold     ResellerTier = "gold"
	ResellerTierPlatinum ResellerTier = "platinum"
)

// TierLadder is the fixed tier ordering used by the progress calculator
var TierLadder = []ResellerTier{
	ResellerTierBronze,
	ResellerTierSilver,
	ResellerTierGold,
	ResellerTierPlatinum,
}

func (t ResellerTier) String() string {
	return string(t)
}

func (t ResellerTier) IsValid() bool {
	for _, tier := range TierLadder {
		if tier == t {
			return true
		}
	}
	return false
}

// Next returns the tier immediately above the current one, or false when
// the reseller is already at the top of the ladder.
func (t ResellerTier) Next() (ResellerTier, bool) {
	for i, tier := range TierLadder {
		if tier == t && i < len(TierLadder)-1 {
			return TierLadder[i+1], true
		}
	}
	return "", false
}

// ResellerStatus defines the list of possible reseller statuses
type ResellerStatus string

const (
	ResellerStatusActive    ResellerStatus = "active"
	ResellerStatusInactive  ResellerStatus = "inactive"
	ResellerStatusSuspended ResellerStatus = "suspended"
)

func (s ResellerStatus) String() string {
	return string(s)
}

func (s ResellerStatus) IsValid() bool {
	switch s {
	case ResellerStatusActive, ResellerStatusInactive, ResellerStatusSuspended:
		return true
	default:
		return false
	}
}

// Reseller structure. TotalEarnings is a running accumulator credited only
// when a commission reaches the paid status, never recomputed from history.
type Reseller struct {
	ID             uint64            `sql:"type: bigint" gorm:"primary_key" json:"id"`
	UserID         uint64            `gorm:"column:user_id;unique" json:"user_id"`
	CompanyName    string            `gorm:"column:company_name" json:"company_name"`
	Phone          string            `json:"phone"`
	Address        string            `json:"address"`
	CommissionRate float64           `gorm:"column:commission_rate" json:"commission_rate"`
	Tier           ResellerTier      `sql:"not null;type:reseller_tier_t" json:"tier"`
	Status         ResellerStatus    `sql:"not null;type:reseller_status_t" json:"status"`
	TotalEarnings  *postgres.Decimal `gorm:"column:total_earnings" sql:"type:decimal(18,2)" json:"total_earnings"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ResellerWithUser joins the reseller with its owning account
type ResellerWithUser struct {
	Reseller
	Name  string `gorm:"column:name" json:"name"`
	Email string `gorm:"column:email" json:"email"`
}

// ResellerList structure
type ResellerList struct {
	Resellers []ResellerWithUser `json:"resellers"`
	Meta      PagingMeta         `json:"meta"`
}

// NewReseller creates a reseller attached to the given user
func NewReseller(userID uint64, companyName, phone string, commissionRate float64) *Reseller {
	return &Reseller{
		UserID:         userID,
		CompanyName:    companyName,
		Phone:          phone,
		CommissionRate: commissionRate,
		Tier:           ResellerTierBronze,
		Status:         ResellerStatusActive,
		TotalEarnings:  ZeroMoneyColumn(),
	}
}
