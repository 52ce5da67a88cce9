package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/todoapp/task-api/internal/core/domain"
	"github.com/todoapp/task-api/internal/core/ports"
)

// TaskService implements the task use cases. Each operation is one round trip
// to the repository plus, at most, the explicit existence check the use case
// itself performs; repository errors bubble unchanged.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create persists a new task in its initial state (completed=false) and
// returns it with the generated id and timestamps.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	task := domain.NewTask(input.Title, input.Description)

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Int64("task_id", created.ID).Msg("task created")
	return created, nil
}

// GetByID returns the task or a TaskNotFoundError naming the id.
func (s *TaskService) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &domain.TaskNotFoundError{ID: id}
	}
	return task, nil
}

// List returns tasks matching the filter; with no filter, all tasks in
// insertion order.
func (s *TaskService) List(ctx context.Context, filter ports.TaskFilter) ([]*domain.Task, error) {
	return s.repo.FindAll(ctx, filter)
}

// ToggleStatus flips the completed flag and persists the change. This is the
// only mutation path for completed; title and description are never touched.
func (s *TaskService) ToggleStatus(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &domain.TaskNotFoundError{ID: id}
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Int64("task_id", id).Msg("failed to update task status")
		return nil, err
	}

	s.logger.Info().Int64("task_id", id).Bool("completed", updated.Completed).Msg("task status toggled")
	return updated, nil
}

// Delete removes the task permanently. A second delete against the same id
// fails with TaskNotFoundError; deletion happens exactly once.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return &domain.TaskNotFoundError{ID: id}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("task_id", id).Msg("failed to delete task")
		return err
	}

	s.logger.Info().Int64("task_id", id).Msg("task deleted")
	return nil
}
