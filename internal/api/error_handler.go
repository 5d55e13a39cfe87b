package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/keepnote/notes-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// validationResponse adds the per-field list on validation failures.
type validationResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the closed set of domain errors to their HTTP status codes.
//   - Renders validation failures with the full per-field error list.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{
				Message: "Validation failed",
				Errors:  ve.Fields,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. The messages are part
	// of the wire contract: "not found" and "not yours" share one message,
	// as do "unknown email" and "wrong password".
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "User already exists with this email"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token."
	case errors.Is(err, domain.ErrNoteNotFound):
		return http.StatusNotFound, "Note not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error"
}
