package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskgate/clickup-gateway/internal/api/metrics"
)

// Limiter counts hits against a key inside a fixed window.
type Limiter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateTier is one fixed-window cap. Tiers are checked in order; the first
// exhausted tier rejects the request.
type RateTier struct {
	Name   string
	Window time.Duration
	Limit  int
}

// RateLimit enforces the configured tiers per client IP. A limiter failure
// fails open: the request proceeds and the error is logged.
func RateLimit(limiter Limiter, log zerolog.Logger, tiers ...RateTier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			client := c.RealIP()

			for _, tier := range tiers {
				count, err := limiter.Hit(c.Request().Context(), "ratelimit:"+tier.Name+":"+client, tier.Window)
				if err != nil {
					log.Warn().Err(err).Str("tier", tier.Name).Msg("rate limiter unavailable, failing open")
					continue
				}
				if count > int64(tier.Limit) {
					metrics.RateLimitRejectionsTotal.WithLabelValues(tier.Name).Inc()
					c.Response().Header().Set("Retry-After", strconv.Itoa(int(tier.Window.Seconds())))
					return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
				}
			}

			return next(c)
		}
	}
}
