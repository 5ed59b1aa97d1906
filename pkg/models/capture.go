package models

// Capture is a stored screenshot or recording segment.
type Capture struct {
	ID          int64  `json:"id"`
	CameraID    int64  `json:"camera_id"`
	CameraName  string `json:"camera_name"`
	CaptureType string `json:"capture_type"`
	FilePath    string `json:"file_path"`
	FileSize    int64  `json:"file_size"`
	CreatedAt   string `json:"created_at,omitempty"`
}
