package domain

import (
	"errors"
	"time"
)

// User models an authenticated actor. Email uniquely identifies at most one
// active user and is the only lookup key used during authentication.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// ErrInvalidCredentials covers both unknown-email and wrong-password login
// failures so the two cases stay indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserExists indicates a unique constraint violation on the email column.
var ErrUserExists = errors.New("user already exists")
