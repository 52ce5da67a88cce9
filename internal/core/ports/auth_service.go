package ports

import "context"

// AuthService verifies credentials and issues bearer tokens.
type AuthService interface {
	// Authenticate returns a signed token on success. Unknown email and wrong
	// password both fail with domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (string, error)
}
