package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joblane/careers-api/internal/api/metrics"
	"github.com/joblane/careers-api/internal/core/policy"
)

// RequireTier gates a route on the given access tier. For self-or-admin
// routes the target username is read from the named path parameter. Denials
// carry the tier's user-facing reason and always render as 401.
func RequireTier(tier policy.Tier, usernameParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			target := ""
			if usernameParam != "" {
				target = c.Param(usernameParam)
			}

			if err := policy.Check(tier, CallerFromContext(c), target); err != nil {
				metrics.AuthzDenialsTotal.WithLabelValues(tier.String()).Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			return next(c)
		}
	}
}
