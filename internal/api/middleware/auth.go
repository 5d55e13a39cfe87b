package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/keepnote/notes-api/internal/api/metrics"
	"github.com/keepnote/notes-api/internal/core/domain"
	"github.com/keepnote/notes-api/internal/core/ports"
)

// UserContextKey is the echo context key under which Auth stores the
// resolved *domain.User.
const UserContextKey = "auth_user"

const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid token."
)

// Auth extracts the bearer token, verifies it, and resolves it to a live
// user record stored in the request context. The middleware never mutates
// store state.
//
// A deleted user behind a validly signed token is rejected with the same
// message as a forged token, so responses never reveal whether an account
// exists.
func Auth(tokens ports.TokenVerifier, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msgNoToken)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
