package model

import "time"

// NotificationTitle values used by the portal
type NotificationTitle string

const (
	NotificationTitleReferralWon       NotificationTitle = "Referral Won!"
	NotificationTitleReferralUpdated   NotificationTitle = "Referral Status Updated"
	NotificationTitleReferralReceived  NotificationTitle = "New Referral Submitted"
	NotificationTitleCommissionPaid    NotificationTitle = "Commission Paid"
	NotificationTitleCommissionUpdated NotificationTitle = "Commission Status Updated"
)

func (n NotificationTitle) String() string {
	return string(n)
}

// Notification links
const (
	NotificationLinkAdminReferrals      = "/admin/referrals"
	NotificationLinkResellerReferrals   = "/reseller/referrals"
	NotificationLinkResellerCommissions = "/reseller/commissions"
)

// Notification structure
type Notification struct {
	ID        uint64    `sql:"type: bigint" gorm:"primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id" json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationList structure
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
}
