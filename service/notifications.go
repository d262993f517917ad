package service

import (
	"gorm.io/gorm"

	"gitlab.com/digitory/partner_portal_api/model"
)

// ListNotifications returns the newest notifications for a user together
// with the unread counter used for the navbar badge
func (service *Service) ListNotifications(userID uint64, limit, page int) (*model.NotificationList, error) {
	list := model.NotificationList{
		Notifications: make([]model.Notification, 0),
	}
	q := service.repo.ConnReader.Table("notifications").Where("user_id = ?", userID)
	if limit > 0 {
		q = q.Limit(limit).Offset((page - 1) * limit)
	}
	db := q.Order("created_at DESC").Find(&list.Notifications)
	if db.Error != nil {
		return nil, db.Error
	}
	db = service.repo.ConnReader.Table("notifications").
		Where("user_id = ? AND read = ?", userID, false).
		Count(&list.UnreadCount)
	if db.Error != nil {
		return nil, db.Error
	}
	return &list, nil
}

// MarkNotificationRead marks a single notification as read. Scoped by user
// so a reseller can not touch someone else's rows.
func (service *Service) MarkNotificationRead(userID, id uint64) error {
	db := service.repo.Conn.Table("notifications").
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if db.Error != nil {
		return db.Error
	}
	if db.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllNotificationsRead marks every unread notification of a user as read
func (service *Service) MarkAllNotificationsRead(userID uint64) error {
	db := service.repo.Conn.Table("notifications").
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return db.Error
}

// createNotification inserts one notification row on the given connection,
// which may be a transaction when the caller needs atomicity with other writes
func (service *Service) createNotification(tx *gorm.DB, userID uint64, title model.NotificationTitle, message, link string) error {
	notification := model.Notification{
		UserID:  userID,
		Title:   title.String(),
		Message: message,
		Link:    link,
	}
	return tx.Table("notifications").Create(&notification).Error
}

// notifyAdmins fans a notification out to every admin user
func (service *Service) notifyAdmins(tx *gorm.DB, title model.NotificationTitle, message, link string) error {
	adminIDs := make([]uint64, 0)
	db := tx.Table("users").Where("role = ?", model.UserRoleAdmin).Pluck("id", &adminIDs)
	if db.Error != nil {
		return db.Error
	}
	for _, adminID := range adminIDs {
		if err := service.createNotification(tx, adminID, title, message, link); err != nil {
			return err
		}
	}
	return nil
}
