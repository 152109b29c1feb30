// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"tasktrack/internal/task"
)

// Service defines the interface for task store operations.
// Commands never touch the backing file directly.
type Service interface {
	// ListTasks returns all tasks in collection order.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// FilterTasks returns tasks matching status, in collection order.
	FilterTasks(ctx context.Context, status task.Status) ([]task.Task, error)

	// AddTask creates a task with a fresh id and status todo.
	// Fails with task.ValidationError on an empty or oversized description.
	AddTask(ctx context.Context, description string) (task.Task, error)

	// UpdateTask replaces a task's description and refreshes its
	// updatedAt. Fails with task.NotFoundError on an unknown id.
	UpdateTask(ctx context.Context, id int, description string) (task.Task, error)

	// SetStatus changes a task's status and refreshes its updatedAt.
	// Fails with task.NotFoundError on an unknown id.
	SetStatus(ctx context.Context, id int, status task.Status) (task.Task, error)

	// DeleteTask removes a task, preserving the order of the remainder.
	// Fails with task.NotFoundError on an unknown id.
	DeleteTask(ctx context.Context, id int) error
}
