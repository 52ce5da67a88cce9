package handler

import "time"

// --- Request types ---

type authenticateRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=100"`
}

// --- Response types ---

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// storage changes; updatedAt and deletedAt are never exposed.

type authenticateResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}

type taskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
