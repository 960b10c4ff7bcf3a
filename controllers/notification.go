package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"compensation-request-api/services"
)

// ListNotifications returns the notifications visible to the caller, newest
// first. ?unread=true filters to unread ones.
func ListNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifs, err := services.NotificationsFor(c.GetString("username"), c.GetString("role"), unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifs})
}

// MarkNotificationRead flags one notification as read.
func MarkNotificationRead(c *gin.Context) {
	if err := services.MarkNotificationRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
