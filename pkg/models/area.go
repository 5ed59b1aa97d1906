package models

// Area is a sub-division of a Location.
type Area struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LocationID  int64  `json:"location_id"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// AreaWithLocation is the list representation: the server joins in the
// denormalized location name.
type AreaWithLocation struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LocationID   int64  `json:"location_id"`
	LocationName string `json:"location_name"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at,omitempty"`
}
