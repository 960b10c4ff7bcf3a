package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"compensation-request-api/config"
	"compensation-request-api/datastore"
	"compensation-request-api/models"
	"compensation-request-api/utils"
)

// NewNotification builds an unread notification addressed to a role and/or a
// single username.
func NewNotification(message, recipientRole, recipientUsername, reqID string, now time.Time) models.Notification {
	return models.Notification{
		ID:                fmt.Sprintf("NOTIF-%s-%s", now.Format("20060102150405"), uuid.NewString()[:8]),
		Message:           message,
		RecipientRole:     recipientRole,
		RecipientUsername: recipientUsername,
		RequestID:         reqID,
		IsRead:            false,
		Timestamp:         FormatThaiDate(now, true),
	}
}

// PushNotifications prepends notifications to the collection (newest first)
// and fans user-addressed ones out over SMTP when a mailer is configured.
// Mail failures are logged, never propagated: delivery is best effort.
func PushNotifications(notifs []models.Notification) error {
	if len(notifs) == 0 {
		return nil
	}

	var all []models.Notification
	if err := config.Store.Load(datastore.CollectionNotifications, &all); err != nil {
		return err
	}
	all = append(append([]models.Notification{}, notifs...), all...)
	if err := config.Store.Save(datastore.CollectionNotifications, all); err != nil {
		return err
	}

	if config.MailEnabled() {
		mailNotifications(notifs)
	}
	return nil
}

func mailNotifications(notifs []models.Notification) {
	var users []models.User
	if err := config.Store.Load(datastore.CollectionUsers, &users); err != nil {
		log.Printf("Warning: cannot load users for notification mail: %v", err)
		return
	}

	emailByUsername := make(map[string]string, len(users))
	for _, u := range users {
		if utils.ValidateEmail(u.Email) {
			emailByUsername[u.Username] = u.Email
		}
	}

	for _, n := range notifs {
		if n.RecipientUsername == "" {
			continue
		}
		email, ok := emailByUsername[n.RecipientUsername]
		if !ok {
			continue
		}
		subject := "แจ้งเตือนระบบคำขอค่าตอบแทนผลงานวิชาการ"
		if err := config.SendMail([]string{email}, subject, n.Message); err != nil {
			log.Printf("Warning: failed to mail notification %s to %s: %v", n.ID, n.RecipientUsername, err)
		}
	}
}

// NotificationsFor lists notifications visible to a user, newest first.
func NotificationsFor(username, role string, unreadOnly bool) ([]models.Notification, error) {
	var all []models.Notification
	if err := config.Store.Load(datastore.CollectionNotifications, &all); err != nil {
		return nil, err
	}

	visible := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if unreadOnly && n.IsRead {
			continue
		}
		if n.VisibleTo(username, role) {
			visible = append(visible, n)
		}
	}
	return visible, nil
}

// MarkNotificationRead flags one notification as read.
func MarkNotificationRead(id string) error {
	var all []models.Notification
	if err := config.Store.Load(datastore.CollectionNotifications, &all); err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].IsRead = true
			return config.Store.Save(datastore.CollectionNotifications, all)
		}
	}
	return fmt.Errorf("notification %s not found", id)
}
