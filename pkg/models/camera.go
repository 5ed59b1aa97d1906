package models

// Camera represents a single camera as stored by the SARV backend.
// Location and area are denormalized names, not ids.
type Camera struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Host           string `json:"host"`
	Port           int64  `json:"port"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Enabled        bool   `json:"enabled"`
	Record         bool   `json:"record"`
	SourceOnDemand bool   `json:"source_on_demand"`
	Location       string `json:"location"`
	Area           string `json:"area"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// CameraStatus is one entry of GET /api/cameras/status: the liveness probe
// result for a stream path, keyed by camera name.
type CameraStatus struct {
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// Client-side liveness states derived from the status probe. Disabled
// cameras report StatusDisabled regardless of what the probe said.
const (
	StatusOnline   = "online"
	StatusOffline  = "offline"
	StatusDisabled = "disabled"
)
