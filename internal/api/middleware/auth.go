package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskgate/clickup-gateway/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers and middleware.
const (
	IdentityKey = "identity"
	UserIDKey   = "user_id"
	EmailKey    = "email"
	RoleKey     = "role"
)

// Auth validates the bearer token and injects the verified identity into
// the request context. Routes registered without this middleware are
// public; no business logic runs past it on failure.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			ident, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(IdentityKey, ident)
			c.Set(UserIDKey, ident.UserID)
			c.Set(EmailKey, ident.Email)
			c.Set(RoleKey, ident.Role)

			return next(c)
		}
	}
}
