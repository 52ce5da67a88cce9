package ports

import (
	"context"

	"github.com/todoapp/task-api/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a new task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// TaskService defines the task use cases.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	ToggleStatus(ctx context.Context, id int64) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
