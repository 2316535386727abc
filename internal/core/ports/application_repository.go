package ports

import (
	"context"

	"github.com/joblane/careers-api/internal/core/domain"
)

// ApplicationRepository defines persistence for the user↔job join rows.
// The storage layer owns the (username, job_id) uniqueness constraint; the
// service-level Exists check is an early exit, not the race guard.
type ApplicationRepository interface {
	Insert(ctx context.Context, app *domain.JobApplication) error
	Exists(ctx context.Context, username, jobID string) (bool, error)
	// JobIDsForUser returns the job IDs a user applied to, ascending.
	JobIDsForUser(ctx context.Context, username string) ([]string, error)
	// DeleteForUser removes all of a user's applications and reports how
	// many rows were removed. Called when the owning user is deleted.
	DeleteForUser(ctx context.Context, username string) (int64, error)
}
