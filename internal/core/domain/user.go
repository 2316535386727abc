package domain

import "time"

// User is the core account record. The password hash is write-only: it is
// never serialized into any response payload.
type User struct {
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Caller is the authenticated principal derived from a verified request
// token. It exists only for the duration of a single request; a nil *Caller
// means the request carried no usable credential.
type Caller struct {
	Username string
	IsAdmin  bool
}
