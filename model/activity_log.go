package model

import "time"

// Audit actions recorded by the portal
const (
	ActivityReferralCreated       = "referral_created"
	ActivityReferralImported      = "referral_imported"
	ActivityReferralStatusUpdated = "referral_status_updated"
	ActivityCommissionUpdated     = "commission_status_updated"
	ActivityResellerUpdated       = "reseller_updated"
	ActivitySettingsUpdated       = "settings_updated"
)

// ActivityLog is one audit entry. Metadata holds a small JSON document with
// action specific context, e.g. {"from":"proposal","to":"won"}.
type ActivityLog struct {
	ID         uint64    `sql:"type: bigint" gorm:"primary_key" json:"id"`
	UserID     uint64    `gorm:"column:user_id" json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `gorm:"column:entity_type" json:"entity_type"`
	EntityID   uint64    `gorm:"column:entity_id" json:"entity_id"`
	Metadata   string    `json:"metadata"`
	CreatedAt  time.Time `json:"created_at"`
}
