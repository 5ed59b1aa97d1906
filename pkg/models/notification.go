package models

// Notification is one entry of the server event feed.
type Notification struct {
	ID        int64  `json:"id"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at,omitempty"`
}

// NotificationSummary is the payload of GET /api/notifications/summary:
// the unread counter plus the most recent entries.
type NotificationSummary struct {
	UnreadCount   int64          `json:"unread_count"`
	Notifications []Notification `json:"notifications"`
}
