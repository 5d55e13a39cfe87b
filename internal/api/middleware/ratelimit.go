package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/keepnote/notes-api/internal/api/metrics"
)

const msgRateLimited = "Too many requests from this IP, please try again later."

// Limiter abstracts the fixed-window request counter (Redis).
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles requests per client IP. When the limiter itself fails
// (Redis unreachable) the request is let through: availability over strict
// throttling.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, msgRateLimited)
			}
			return next(c)
		}
	}
}
