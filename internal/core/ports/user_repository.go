package ports

import (
	"context"

	"github.com/todoapp/task-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Lookups return
// (nil, nil) when no row matches; existence decisions belong to the callers.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Save upserts by email. Kept alongside Create as the superset contract;
	// no current flow updates an existing user through it.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}
