package ports

import "github.com/todoapp/task-api/internal/core/domain"

// TokenIssuer signs bearer tokens for authenticated users. Verification lives
// with the concrete implementation; the auth service only issues.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
