package model

import "time"

// Well known system setting keys
const (
	SettingKeyDefaultCommissionRate = "default_commission_rate"
	SettingKeyCompanyName           = "company_name"
	SettingKeyCompanyEmail          = "company_email"
	SettingKeyCountry               = "country"
)

// SystemSetting is one key/value row of portal wide settings. Settings feed
// defaults and display formatting only; they never gate business rules and
// are read from the store at call time, not kept as ambient state.
type SystemSetting struct {
	ID        uint64    `sql:"type: bigint" gorm:"primary_key" json:"id"`
	Key       string    `gorm:"column:key;unique" json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
