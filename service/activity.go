package service

import (
	"encoding/json"

	"gorm.io/gorm"

	"gitlab.com/digitory/partner_portal_api/model"
)

// logActivity appends one audit entry on the given connection. Metadata is
// marshalled to a small JSON document; a nil metadata stores "{}".
func (service *Service) logActivity(tx *gorm.DB, userID uint64, action, entityType string, entityID uint64, metadata interface{}) error {
	payload := []byte("{}")
	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = data
	}
	entry := model.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   string(payload),
	}
	return tx.Table("activity_logs").Create(&entry).Error
}

// ListActivity returns the audit trail, newest first, optionally filtered
// by entity type
func (service *Service) ListActivity(entityType string, limit, page int) ([]model.ActivityLog, *model.PagingMeta, error) {
	entries := make([]model.ActivityLog, 0)
	meta := model.PagingMeta{Page: page, Limit: limit}
	q := service.repo.ConnReader.Table("activity_logs")
	if entityType != "" {
		q = q.Where("entity_type = ?", entityType)
	}
	db := q.Count(&meta.Count)
	if db.Error != nil {
		return nil, nil, db.Error
	}
	if limit > 0 {
		q = q.Limit(limit).Offset((page - 1) * limit)
	}
	db = q.Order("created_at DESC").Find(&entries)
	if db.Error != nil {
		return nil, nil, db.Error
	}
	return entries, &meta, nil
}
