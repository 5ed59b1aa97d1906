package models

// Location groups cameras by physical site. System locations are seeded by
// the server and cannot be deleted.
type Location struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsSystem    bool   `json:"is_system"`
	CreatedAt   string `json:"created_at,omitempty"`
}
