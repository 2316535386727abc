// Package policy holds the pure authorization decisions for the API. Every
// user-affecting operation is gated by exactly one of three tiers; the
// predicates here are side-effect free and take the caller identity
// explicitly so they can be evaluated anywhere (HTTP middleware, services,
// tests) without process-wide state.
package policy

import "github.com/joblane/careers-api/internal/core/domain"

// Tier is the access requirement attached to an operation.
type Tier int

const (
	// TierPublic requires no identity.
	TierPublic Tier = iota
	// TierAdmin requires an authenticated caller with the admin flag.
	TierAdmin
	// TierSelfOrAdmin requires the caller to be the target user, or an admin.
	TierSelfOrAdmin
)

// String returns the tier name used in metrics labels.
func (t Tier) String() string {
	switch t {
	case TierAdmin:
		return "admin"
	case TierSelfOrAdmin:
		return "self_or_admin"
	default:
		return "public"
	}
}

// RequireAuthenticated allows any caller that presented a valid credential.
// A nil caller (missing or undecodable token) is denied with the generic
// Unauthorized error — the two cases are indistinguishable to the client.
func RequireAuthenticated(caller *domain.Caller) error {
	if caller == nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireAdmin allows only authenticated admins. The authentication check
// runs first: an anonymous caller gets the generic Unauthorized error, never
// the admin-specific message.
func RequireAdmin(caller *domain.Caller) error {
	if err := RequireAuthenticated(caller); err != nil {
		return err
	}
	if !caller.IsAdmin {
		return domain.ErrMustBeAdmin
	}
	return nil
}

// RequireSelfOrAdmin allows the target user themselves, or any admin.
func RequireSelfOrAdmin(caller *domain.Caller, targetUsername string) error {
	if err := RequireAuthenticated(caller); err != nil {
		return err
	}
	if caller.Username != targetUsername && !caller.IsAdmin {
		return domain.ErrMustBeSelfOrAdmin
	}
	return nil
}

// Check evaluates the predicate matching tier. Routes declare their tier as
// data and dispatch through here instead of scattering per-operation
// conditionals; target is only consulted for TierSelfOrAdmin.
func Check(tier Tier, caller *domain.Caller, target string) error {
	switch tier {
	case TierAdmin:
		return RequireAdmin(caller)
	case TierSelfOrAdmin:
		return RequireSelfOrAdmin(caller, target)
	default:
		return nil
	}
}
