package ports

import (
	"context"

	"github.com/joblane/careers-api/internal/core/domain"
)

// AuthService verifies credentials and issues identity tokens.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenIssuer issues an identity token for a user. Split out so the user
// directory can mint a token for a freshly created account without
// depending on the full credential verifier.
type TokenIssuer interface {
	IssueToken(user *domain.User) (string, error)
}
