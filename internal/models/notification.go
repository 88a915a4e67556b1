package models

// NotificationType classifies a user-facing alert.
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyAlert   NotificationType = "alert"
	NotifyInfo    NotificationType = "info"
)

// AppNotification is an ephemeral, session-only alert shown to the user.
type AppNotification struct {
	ID        string           `json:"id"`        // Unique per item
	Title     string           `json:"title"`     // Short headline
	Message   string           `json:"message"`   // Body text
	Type      NotificationType `json:"type"`      // success, alert or info
	Timestamp string           `json:"timestamp"` // RFC 3339 creation time
}
