package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/joblane/careers-api/internal/core/domain"
)

const callerKey = "caller"

// Auth decodes the bearer token, when one is present, into a Caller stored
// on the echo context. A missing, malformed or unverifiable token does NOT
// fail the request here — the caller simply stays anonymous and the tier
// check on the route denies with the generic Unauthorized error. Absence
// and invalidity are indistinguishable to the client.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			username, _ := claims["username"].(string)
			if username == "" {
				return next(c)
			}
			isAdmin, _ := claims["is_admin"].(bool)

			c.Set(callerKey, &domain.Caller{Username: username, IsAdmin: isAdmin})
			return next(c)
		}
	}
}

// CallerFromContext returns the caller set by Auth, or nil when the request
// carried no usable credential.
func CallerFromContext(c echo.Context) *domain.Caller {
	caller, _ := c.Get(callerKey).(*domain.Caller)
	return caller
}
