// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"tasktrack/internal/task"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It applies the same invariants as the file backend (monotonic ids,
// validation, updatedAt refresh) without touching disk.
type FakeService struct {
	mu    sync.RWMutex
	tasks []task.Task

	// Now is the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time

	// Error injection for testing
	ListTasksErr   error
	FilterTasksErr error
	AddTaskErr     error
	UpdateTaskErr  error
	SetStatusErr   error
	DeleteTaskErr  error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{Now: time.Now}
}

// Seed replaces the stored collection (for test setup).
func (f *FakeService) Seed(tasks []task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]task.Task(nil), tasks...)
}

// Tasks returns a copy of the stored collection (for assertions).
func (f *FakeService) Tasks() []task.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]task.Task(nil), f.tasks...)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]task.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// FilterTasks implements service.Service.
func (f *FakeService) FilterTasks(ctx context.Context, status task.Status) ([]task.Task, error) {
	if f.FilterTasksErr != nil {
		return nil, f.FilterTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return task.Filter(f.tasks, status), nil
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, description string) (task.Task, error) {
	if f.AddTaskErr != nil {
		return task.Task{}, f.AddTaskErr
	}
	description, err := task.ValidateDescription(description)
	if err != nil {
		return task.Task{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.Now()
	t := task.Task{
		ID:          task.NextID(f.tasks),
		Description: description,
		Status:      task.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int, description string) (task.Task, error) {
	if f.UpdateTaskErr != nil {
		return task.Task{}, f.UpdateTaskErr
	}
	description, err := task.ValidateDescription(description)
	if err != nil {
		return task.Task{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	i := task.Find(f.tasks, id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}
	f.tasks[i].Description = description
	f.tasks[i].UpdatedAt = f.Now()
	return f.tasks[i], nil
}

// SetStatus implements service.Service.
func (f *FakeService) SetStatus(ctx context.Context, id int, status task.Status) (task.Task, error) {
	if f.SetStatusErr != nil {
		return task.Task{}, f.SetStatusErr
	}
	if !status.Valid() {
		return task.Task{}, &task.ValidationError{Reason: "invalid status: " + string(status)}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	i := task.Find(f.tasks, id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}
	f.tasks[i].Status = status
	f.tasks[i].UpdatedAt = f.Now()
	return f.tasks[i], nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	tasks, ok := task.Remove(f.tasks, id)
	if !ok {
		return &task.NotFoundError{ID: id}
	}
	f.tasks = tasks
	return nil
}
