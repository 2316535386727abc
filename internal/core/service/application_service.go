package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/joblane/careers-api/internal/core/domain"
	"github.com/joblane/careers-api/internal/core/policy"
	"github.com/joblane/careers-api/internal/core/ports"
)

// ApplicationService tracks the user↔job application relation.
type ApplicationService struct {
	users   ports.UserRepository
	apps    ports.ApplicationRepository
	catalog ports.JobCatalog
	logger  zerolog.Logger
}

func NewApplicationService(users ports.UserRepository, apps ports.ApplicationRepository, catalog ports.JobCatalog, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{users: users, apps: apps, catalog: catalog, logger: logger}
}

// Apply records that username applied to jobID. Self or admin relative to
// username, so an admin may apply on behalf of any user. The duplicate
// pre-check is an early exit only; the unique index on (username, job_id)
// is what actually guards against concurrent duplicate applies.
func (s *ApplicationService) Apply(ctx context.Context, caller *domain.Caller, username, jobID string) (string, error) {
	if err := policy.RequireSelfOrAdmin(caller, username); err != nil {
		return "", err
	}
	if jobID == "" {
		return "", fmt.Errorf("%w: job id is required", domain.ErrInvalidInput)
	}

	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		return "", err
	}

	ok, err := s.catalog.Exists(ctx, jobID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrJobNotFound
	}

	applied, err := s.apps.Exists(ctx, username, jobID)
	if err != nil {
		return "", err
	}
	if applied {
		return "", domain.ErrAlreadyApplied
	}

	app := &domain.JobApplication{
		Username:  username,
		JobID:     jobID,
		AppliedAt: time.Now().UTC(),
	}
	if err := s.apps.Insert(ctx, app); err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Str("job_id", jobID).Msg("application recorded")

	return jobID, nil
}
