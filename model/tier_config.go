package model

import (
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"
)

// TierConfig holds one rung of the partner ladder: the referral count and
// revenue a reseller needs before qualifying for the tier, plus the bonus
// rate the tier grants. Rows are read ordered by min_referrals ascending.
type TierConfig struct {
	ID           uint64            `sql:"type: bigint" gorm:"primary_key" json:"id"`
	Tier         ResellerTier      `sql:"not null;type:reseller_tier_t" gorm:"unique" json:"tier"`
	MinReferrals int               `gorm:"column:min_referrals" json:"min_referrals"`
	MinRevenue   *postgres.Decimal `gorm:"column:min_revenue" sql:"type:decimal(18,2)" json:"min_revenue"`
	BonusRate    float64           `gorm:"column:bonus_rate" json:"bonus_rate"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TierProgress is the reported standing of a reseller on the ladder.
// Progress only reports; promotion stays a manual admin action.
type TierProgress struct {
	CurrentTier ResellerTier  `json:"current_tier"`
	NextTier    *ResellerTier `json:"next_tier"`
	Progress    int           `json:"progress"`
}
