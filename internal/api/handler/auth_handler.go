package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/keepnote/notes-api/internal/api/metrics"
	"github.com/keepnote/notes-api/internal/core/domain"
	"github.com/keepnote/notes-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}
