package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/todoapp/task-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Message is
// a plain string, or a list of strings for validation failures.
type errorResponse struct {
	Message any `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": <string | [string]>}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (bind failures, 404 from router, guard rejections,
	// validation message lists).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msgs, ok := he.Message.([]string); ok {
			return he.Code, msgs
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes and fixed messages.
	var notFound *domain.TaskNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, notFound.Error()
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return http.StatusUnauthorized, "Invalid credentials"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
