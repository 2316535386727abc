package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Username  string `json:"username"   validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Password  string `json:"password"   validate:"required,min=5"`
	Email     string `json:"email"      validate:"required,email"`
	IsAdmin   bool   `json:"is_admin"`
}

// updateUserRequest is a partial patch; absent fields stay untouched.
// Pointer fields distinguish "absent" from "set to zero value".
type updateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1"`
	Password  *string `json:"password"   validate:"omitempty,min=5"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	IsAdmin   *bool   `json:"is_admin"`
}

// --- Response types ---

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes — and so no password field can ever leak into a payload.

type userResponse struct {
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userWithJobsResponse struct {
	userResponse
	Jobs []string `json:"jobs"`
}

type createUserResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}

type getUserResponse struct {
	User userWithJobsResponse `json:"user"`
}

type updateUserResponse struct {
	User userResponse `json:"user"`
}

type deleteUserResponse struct {
	Deleted string `json:"deleted"`
}

type applyResponse struct {
	Applied string `json:"applied"`
}
