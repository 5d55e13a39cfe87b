package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keepnote/notes-api/internal/api/middleware"
	"github.com/keepnote/notes-api/internal/core/domain"
)

// ctxUser extracts the user resolved by the Auth middleware. A missing or
// mistyped value means the route was wired without the middleware; fail
// closed with 401 rather than proceed without an identity.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
	}
	return user, nil
}
