package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

// UsageSink receives usage records without blocking the request path.
type UsageSink interface {
	Enqueue(entry domain.APILogEntry)
}

// APILog records one usage entry per authenticated request once the
// response has been written. The write is fire-and-forget: it never blocks
// or fails the response.
func APILog(sink UsageSink) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().After(func() {
				ident, ok := c.Get(IdentityKey).(domain.Identity)
				if !ok {
					return
				}
				sink.Enqueue(domain.APILogEntry{
					UserID:     ident.UserID,
					Endpoint:   c.Request().URL.Path,
					Method:     c.Request().Method,
					StatusCode: c.Response().Status,
					CreatedAt:  time.Now().UTC(),
				})
			})
			return next(c)
		}
	}
}
