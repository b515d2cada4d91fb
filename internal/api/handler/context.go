package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskgate/clickup-gateway/internal/api/middleware"
	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware.
// Its presence proves the middleware ran; handlers on protected routes
// fast-fail with 401 rather than proceed anonymously.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || ident.Role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}
