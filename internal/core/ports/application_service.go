package ports

import (
	"context"

	"github.com/joblane/careers-api/internal/core/domain"
)

// ApplicationService defines the use-case operations for job applications.
type ApplicationService interface {
	// Apply records that username applied to jobID and returns the applied
	// job ID. Applying twice to the same job is a conflict, not a no-op.
	Apply(ctx context.Context, caller *domain.Caller, username, jobID string) (string, error)
}
