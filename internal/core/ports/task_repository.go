package ports

import (
	"context"

	"github.com/todoapp/task-api/internal/core/domain"
)

// TaskFilter carries the optional list filters. A nil Completed means no
// filtering by completion state.
type TaskFilter struct {
	Completed *bool
}

// TaskRepository defines persistence operations for tasks. FindByID returns
// (nil, nil) when the id does not exist; not-found is a service-level concern.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	FindAll(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
