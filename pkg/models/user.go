package models

// User is the public view of an account; the password hash never leaves
// the server.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SaveUserRequest is the body for POST/PUT /api/users. Password is optional
// on update (empty keeps the current one).
type SaveUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}
