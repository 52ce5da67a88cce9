package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/task-api/internal/api/metrics"
	"github.com/todoapp/task-api/internal/core/domain"
	"github.com/todoapp/task-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Authenticate verifies credentials and returns a bearer token.
//
// @Summary      Authenticate a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Login credentials"
// @Success      200   {object}  authenticateResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.service.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthAttemptsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, authenticateResponse{
		Message:   "User authenticated successfully",
		Token:     token,
		TokenType: "Bearer",
	})
}
