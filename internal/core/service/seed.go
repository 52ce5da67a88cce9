package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/todoapp/task-api/internal/core/domain"
	"github.com/todoapp/task-api/internal/core/ports"
)

// EnsureDefaultUser creates the seed credential if it does not exist yet.
// It runs once at process start, guarded by an existence check, so repeated
// startups leave exactly one seed user behind.
func EnsureDefaultUser(ctx context.Context, users ports.UserRepository, email, password string, logger zerolog.Logger) error {
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Debug().Str("email", email).Msg("default user already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := users.Create(ctx, &domain.User{Email: email, PasswordHash: string(hash)}); err != nil {
		return err
	}

	logger.Info().Str("email", email).Msg("default user created")
	return nil
}
