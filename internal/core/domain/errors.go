package domain

import "errors"

// Access errors. The message text is user-facing and surfaced verbatim by
// the HTTP layer; all three map to 401.
var ErrUnauthorized = errors.New("Unauthorized")
var ErrMustBeAdmin = errors.New("Must be Admin to access!")
var ErrMustBeSelfOrAdmin = errors.New("Must be current user or admin to access!")

var ErrInvalidCredentials = errors.New("invalid username/password")

// ErrInvalidInput is the base for validation failures; callers wrap it with
// the offending field, e.g. fmt.Errorf("%w: email must be a valid address", ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrJobNotFound = errors.New("job not found")
var ErrAlreadyApplied = errors.New("bad request, cannot apply twice")
