package ports

import (
	"context"

	"github.com/joblane/careers-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user.
type CreateUserInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// CreateUserResult is returned after a successful create: the stored record
// plus a freshly issued identity token for the new user.
type CreateUserResult struct {
	User  domain.User
	Token string
}

// UpdateUserInput is a partial patch; nil fields are left untouched.
// IsAdmin is honoured only when the caller is an admin — a self-caller
// cannot elevate their own account.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

// UserDetail is the single-user view: the record plus the ascending list of
// job IDs the user has applied to.
type UserDetail struct {
	User domain.User
	Jobs []string
}

// UserService defines the use-case operations of the user directory. Every
// operation takes the caller identity explicitly and enforces its access
// tier before touching storage.
type UserService interface {
	Create(ctx context.Context, caller *domain.Caller, in CreateUserInput) (*CreateUserResult, error)
	List(ctx context.Context, caller *domain.Caller) ([]domain.User, error)
	Get(ctx context.Context, caller *domain.Caller, username string) (*UserDetail, error)
	Update(ctx context.Context, caller *domain.Caller, username string, patch UpdateUserInput) (*domain.User, error)
	// Delete removes the user and cascades over their applications,
	// returning the deleted username as confirmation.
	Delete(ctx context.Context, caller *domain.Caller, username string) (string, error)
}
