package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/task-api/internal/auth"
	"github.com/todoapp/task-api/internal/core/ports"
)

// Context keys under which the authenticated identity is stored.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// Auth gates protected routes behind a bearer token. The token must carry a
// valid signature, an unexpired lifetime, and both subject and email claims;
// the referenced user must still exist. Every rejection is an identical 401 so
// the failing check is never revealed.
func Auth(tokens *auth.TokenManager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return unauthorized()
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized()
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return unauthorized()
			}

			userID, err := claims.UserID()
			if err != nil {
				return unauthorized()
			}

			// A structurally valid token is not enough: the subject must
			// still resolve to a stored user.
			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				return err
			}
			if user == nil {
				return unauthorized()
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextUserEmail, claims.Email)

			return next(c)
		}
	}
}

func unauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
}
