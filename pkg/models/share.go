package models

// MosaicShare is a tokenized public link to a mosaic. Emails is the
// comma-separated recipient list as stored server-side.
type MosaicShare struct {
	ID            int64   `json:"id"`
	MosaicID      int64   `json:"mosaic_id"`
	MosaicName    string  `json:"mosaic_name"`
	Token         string  `json:"token"`
	Emails        string  `json:"emails"`
	ExpiresAt     string  `json:"expires_at"`
	ScheduleStart *string `json:"schedule_start"`
	ScheduleEnd   *string `json:"schedule_end"`
	Active        bool    `json:"active"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// CreateShareRequest is the body for POST /api/shares. The schedule window
// is optional; when set the link only works inside it.
type CreateShareRequest struct {
	MosaicID      int64    `json:"mosaic_id"`
	Emails        []string `json:"emails"`
	DurationHours int64    `json:"duration_hours"`
	ScheduleStart *string  `json:"schedule_start,omitempty"`
	ScheduleEnd   *string  `json:"schedule_end,omitempty"`
}
