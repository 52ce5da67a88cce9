package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/todoapp/task-api/internal/core/domain"
	"github.com/todoapp/task-api/internal/core/ports"
)

// AuthService implements the login use case: credential lookup, password
// verification, token issuance.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Authenticate verifies the credentials and returns a signed bearer token.
// Unknown email and wrong password are deliberately indistinguishable: both
// return domain.ErrInvalidCredentials. Repository and signing errors propagate
// unchanged.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("email", user.Email).Msg("user authenticated")
	return token, nil
}
