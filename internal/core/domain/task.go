package domain

import (
	"fmt"
	"time"
)

// Task is the core aggregate of the task manager. Identity is assigned by the
// store on creation and immutable afterwards; Completed is only ever flipped
// through the toggle-status use case.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	// DeletedAt exists in the schema but no query path sets or filters it;
	// deletion is a hard removal.
	DeletedAt *time.Time `json:"-"`
}

// NewTask builds an unsaved task in its initial state.
func NewTask(title, description string) *Task {
	return &Task{
		Title:       title,
		Description: description,
		Completed:   false,
	}
}

// TaskNotFoundError reports that the referenced task id does not exist
// (or no longer exists). The message is part of the API contract.
type TaskNotFoundError struct {
	ID int64
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("Task with ID %d not found", e.ID)
}
