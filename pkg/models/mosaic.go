package models

// Mosaic is a named grid of camera streams. PID is set while the mosaic
// process is running server-side.
type Mosaic struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Layout    string `json:"layout"`
	Active    bool   `json:"active"`
	PID       *int64 `json:"pid"`
	CreatedAt string `json:"created_at,omitempty"`
}

// MosaicCamera is one positioned camera inside a mosaic.
type MosaicCamera struct {
	Position   int64  `json:"position"`
	CameraID   int64  `json:"camera_id"`
	CameraName string `json:"camera_name"`
	Host       string `json:"host"`
	Port       int64  `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Path       string `json:"path"`
	Protocol   string `json:"protocol"`
}

// MosaicWithCameras is the list representation returned by GET /api/mosaics.
type MosaicWithCameras struct {
	Mosaic
	Cameras []MosaicCamera `json:"cameras"`
}

// SaveMosaicRequest is the body for POST/PUT /api/mosaics.
type SaveMosaicRequest struct {
	Name      string  `json:"name"`
	Layout    string  `json:"layout"`
	CameraIDs []int64 `json:"camera_ids"`
}
