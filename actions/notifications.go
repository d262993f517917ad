package actions

import (
	"github.com/gin-gonic/gin"
)

// GetNotifications returns the authenticated user's notifications with the
// unread counter
func (actions *Actions) GetNotifications(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	page, limit := getPagination(c)
	list, err := actions.service.ListNotifications(userID, limit, page)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, list)
}

// MarkNotificationRead marks one notification as read. The id "all" marks
// everything at once.
func (actions *Actions) MarkNotificationRead(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	if c.Param("notification_id") == "all" {
		if err := actions.service.MarkAllNotificationsRead(userID); err != nil {
			abortServiceError(c, err)
			return
		}
		c.JSON(OK, gin.H{"marked": "all"})
		return
	}
	id, ok := getParamAsUint64(c, "notification_id")
	if !ok {
		abortWithError(c, BadRequest, "Invalid notification id")
		return
	}
	if err := actions.service.MarkNotificationRead(userID, id); err != nil {
		abortWithError(c, NotFound, "Notification not found")
		return
	}
	c.JSON(OK, gin.H{"marked": id})
}
