package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/todoapp/task-api/internal/core/domain"
	"github.com/todoapp/task-api/internal/core/ports"
)

const (
	queryTaskInsert = `INSERT INTO tasks (title, description, completed) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	queryTaskByID   = `SELECT id, title, description, completed, created_at, updated_at FROM tasks WHERE id = $1`
	queryTaskAll    = `SELECT id, title, description, completed, created_at, updated_at FROM tasks ORDER BY id`
	// Insertion-order-stable listing; the filter variant keeps the same ordering.
	queryTaskByCompleted = `SELECT id, title, description, completed, created_at, updated_at FROM tasks WHERE completed = $1 ORDER BY id`
	queryTaskUpdate      = `UPDATE tasks SET title = $2, description = $3, completed = $4, updated_at = $5 WHERE id = $1`
	queryTaskDelete      = `DELETE FROM tasks WHERE id = $1`
)

// TaskRepository implements ports.TaskRepository on PostgreSQL.
type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task row. The database assigns id and timestamps.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created := *task
	err := r.db.Pool.QueryRow(ctx, queryTaskInsert, task.Title, task.Description, task.Completed).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &created, nil
}

// FindByID returns the task with the given id, or (nil, nil) when no row
// matches.
func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.Pool.QueryRow(ctx, queryTaskByID, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

// FindAll returns tasks in insertion order, optionally filtered by the
// completed flag.
func (r *TaskRepository) FindAll(ctx context.Context, filter ports.TaskFilter) ([]*domain.Task, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if filter.Completed != nil {
		rows, err = r.db.Pool.Query(ctx, queryTaskByCompleted, *filter.Completed)
	} else {
		rows, err = r.db.Pool.Query(ctx, queryTaskAll)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update persists the task's current state. Callers are expected to have
// loaded the entity first; a missing row is not reported as an error here.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	_, err := r.db.Pool.Exec(ctx, queryTaskUpdate,
		task.ID, task.Title, task.Description, task.Completed, task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes the task row permanently.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Pool.Exec(ctx, queryTaskDelete, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
