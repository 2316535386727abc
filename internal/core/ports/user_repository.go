package ports

import (
	"context"

	"github.com/joblane/careers-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user records. The
// storage layer owns the username uniqueness constraint and is the
// authoritative guard against concurrent duplicate creates.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns all users ordered by username ascending.
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}
