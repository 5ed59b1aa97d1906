package models

// Role is a named permission set. System roles are seeded by the server and
// cannot be deleted.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsSystem    bool   `json:"is_system"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Permission is the per-module grant attached to a role.
type Permission struct {
	Module    string `json:"module"`
	CanView   bool   `json:"can_view"`
	CanCreate bool   `json:"can_create"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

// RoleWithPermissions is the list representation returned by GET /api/roles.
type RoleWithPermissions struct {
	Role
	Permissions []Permission `json:"permissions"`
}

// SaveRoleRequest is the body for POST/PUT /api/roles.
type SaveRoleRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
}
