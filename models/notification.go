package models

// Notification is an in-app message raised by a lifecycle transition. It is
// addressed either to a whole role or to a single username.
type Notification struct {
	ID                string `json:"id"`
	Message           string `json:"message"`
	RecipientRole     string `json:"recipient_role,omitempty"`
	RecipientUsername string `json:"recipient_username,omitempty"`
	RequestID         string `json:"req_id,omitempty"`
	IsRead            bool   `json:"is_read"`
	Timestamp         string `json:"timestamp"`
}

// VisibleTo reports whether the notification should be shown to the given
// user/role pair.
func (n Notification) VisibleTo(username, role string) bool {
	if n.RecipientUsername != "" && n.RecipientUsername == username {
		return true
	}
	return n.RecipientRole != "" && n.RecipientRole == role
}
