package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/joblane/careers-api/internal/core/domain"
	"github.com/joblane/careers-api/internal/core/policy"
	"github.com/joblane/careers-api/internal/core/ports"
)

var validate = validator.New()

// UserService implements the user directory: create, list, get, update and
// delete, each gated by its access tier. All dependencies are injected so
// tests can construct the service in isolation.
type UserService struct {
	users  ports.UserRepository
	apps   ports.ApplicationRepository
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, apps ports.ApplicationRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *UserService {
	return &UserService{users: users, apps: apps, tokens: tokens, logger: logger}
}

// Create stores a new user and returns the record plus a freshly issued
// token for it. Admin only. The authorization check runs before field
// validation: an unauthorized caller is rejected even with a broken payload.
func (s *UserService) Create(ctx context.Context, caller *domain.Caller, in ports.CreateUserInput) (*ports.CreateUserResult, error) {
	if err := policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validateNewUser(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsAdmin:      in.IsAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueToken(created)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Bool("is_admin", created.IsAdmin).Msg("user created")

	return &ports.CreateUserResult{User: *created, Token: token}, nil
}

// List returns all users ordered by username ascending. Admin only.
func (s *UserService) List(ctx context.Context, caller *domain.Caller) ([]domain.User, error) {
	if err := policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// Get returns a single user together with the ascending list of job IDs
// they applied to. Self or admin.
func (s *UserService) Get(ctx context.Context, caller *domain.Caller, username string) (*ports.UserDetail, error) {
	if err := policy.RequireSelfOrAdmin(caller, username); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	jobs, err := s.apps.JobIDsForUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return &ports.UserDetail{User: *user, Jobs: jobs}, nil
}

// Update applies a partial patch to a user. Self or admin. A password in
// the patch is re-hashed; the is_admin flag is honoured only for admin
// callers — a self-caller cannot elevate their own account.
func (s *UserService) Update(ctx context.Context, caller *domain.Caller, username string, patch ports.UpdateUserInput) (*domain.User, error) {
	if err := policy.RequireSelfOrAdmin(caller, username); err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if patch.IsAdmin != nil && caller.IsAdmin {
		user.IsAdmin = *patch.IsAdmin
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user updated")

	return updated, nil
}

// Delete removes a user and all of their job applications. Self or admin.
func (s *UserService) Delete(ctx context.Context, caller *domain.Caller, username string) (string, error) {
	if err := policy.RequireSelfOrAdmin(caller, username); err != nil {
		return "", err
	}

	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		return "", err
	}

	// Cascade first so no application row can outlive its owner.
	removed, err := s.apps.DeleteForUser(ctx, username)
	if err != nil {
		return "", err
	}

	if err := s.users.Delete(ctx, username); err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Int64("applications_removed", removed).Msg("user deleted")

	return username, nil
}

func validateNewUser(in ports.CreateUserInput) error {
	if in.Username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if in.FirstName == "" {
		return fmt.Errorf("%w: first_name is required", domain.ErrInvalidInput)
	}
	if in.LastName == "" {
		return fmt.Errorf("%w: last_name is required", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	if err := validate.Var(in.Email, "required,email"); err != nil {
		return fmt.Errorf("%w: email must be a valid address", domain.ErrInvalidInput)
	}
	return nil
}

func validatePatch(patch ports.UpdateUserInput) error {
	if patch.FirstName != nil && *patch.FirstName == "" {
		return fmt.Errorf("%w: first_name must not be empty", domain.ErrInvalidInput)
	}
	if patch.LastName != nil && *patch.LastName == "" {
		return fmt.Errorf("%w: last_name must not be empty", domain.ErrInvalidInput)
	}
	if patch.Password != nil && *patch.Password == "" {
		return fmt.Errorf("%w: password must not be empty", domain.ErrInvalidInput)
	}
	if patch.Email != nil {
		if err := validate.Var(*patch.Email, "required,email"); err != nil {
			return fmt.Errorf("%w: email must be a valid address", domain.ErrInvalidInput)
		}
	}
	return nil
}
