package service

import (
	"strconv"

	"gorm.io/gorm/clause"

	"gitlab.com/digitory/partner_portal_api/currency"
	"gitlab.com/digitory/partner_portal_api/model"
)

// GetSystemSettings returns every settings row as a key/value map
func (service *Service) GetSystemSettings() (map[string]string, error) {
	settings := make([]model.SystemSetting, 0)
	db := service.repo.ConnReader.Table("system_settings").Find(&settings)
	if db.Error != nil {
		return nil, db.Error
	}
	settingsMap := make(map[string]string, len(settings))
	for _, setting := range settings {
		settingsMap[setting.Key] = setting.Value
	}
	return settingsMap, nil
}

// GetSetting reads a single setting at call time, returning the fallback
// when the row is absent or unreadable.
func (service *Service) GetSetting(key, fallback string) string {
	setting := model.SystemSetting{}
	db := service.repo.ConnReader.Table("system_settings").Where("key = ?", key).First(&setting)
	if db.Error != nil || setting.Value == "" {
		return fallback
	}
	return setting.Value
}

// DisplayCountry resolves the configured display country for currency
// formatting. Display only, amounts are never converted.
func (service *Service) DisplayCountry() string {
	fallback := service.cfg.Portal.DefaultCountry
	if fallback == "" {
		fallback = currency.DefaultCountry
	}
	return service.GetSetting(model.SettingKeyCountry, fallback)
}

// DefaultCommissionRate resolves the rate assigned to newly registered
// resellers.
func (service *Service) DefaultCommissionRate() float64 {
	fallback := service.cfg.Portal.DefaultCommissionRate
	value := service.GetSetting(model.SettingKeyDefaultCommissionRate, "")
	if value == "" {
		return fallback
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil || rate < 0 || rate > 100 {
		return fallback
	}
	return rate
}

// UpdateSystemSettings upserts the given key/value pairs
func (service *Service) UpdateSystemSettings(settings map[string]string) error {
	for key, value := range settings {
		row := model.SystemSetting{Key: key, Value: value}
		db := service.repo.Conn.Table("system_settings").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).
			Create(&row)
		if db.Error != nil {
			return db.Error
		}
	}
	return nil
}

// AuditSettingsUpdate records which settings keys an admin changed
func (service *Service) AuditSettingsUpdate(adminUserID uint64, settings map[string]string) error {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	return service.logActivity(service.repo.Conn, adminUserID, model.ActivitySettingsUpdated, "settings", 0, map[string]interface{}{
		"keys": keys,
	})
}

// GetTierConfigs returns the tier ladder ordered by the referral threshold
func (service *Service) GetTierConfigs() ([]model.TierConfig, error) {
	configs := make([]model.TierConfig, 0)
	db := service.repo.ConnReader.Table("tier_configs").
		Order("min_referrals ASC").
		Find(&configs)
	return configs, db.Error
}

// UpdateTierConfigs upserts ladder rows keyed by tier
func (service *Service) UpdateTierConfigs(configs []model.TierConfig) error {
	for i := range configs {
		if !configs[i].Tier.IsValid() {
			return ErrInvalidStatus
		}
		if configs[i].MinRevenue == nil {
			configs[i].MinRevenue = model.ZeroMoneyColumn()
		}
		db := service.repo.Conn.Table("tier_configs").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "tier"}},
				DoUpdates: clause.AssignmentColumns([]string{"min_referrals", "min_revenue", "bonus_rate", "updated_at"}),
			}).
			Create(&configs[i])
		if db.Error != nil {
			return db.Error
		}
	}
	return nil
}
