package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/api/metrics"
	"github.com/salesdesk/daily-report-api/internal/api/response"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// AuthHandler handles credential exchange and logout.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login handles POST /auth/login. Unknown email and wrong password are
// indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
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
	return response.Data(c, http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout handles POST /auth/logout: the presented token is revoked until
// it would have expired.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), sess.TokenID, sess.ExpiresAt); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
