// Package localfile implements the service.Service interface over the
// JSON file store. Every operation runs a full load-mutate-save cycle;
// nothing is cached between invocations.
package localfile

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"tasktrack/internal/config"
	"tasktrack/internal/store"
	"tasktrack/internal/task"
)

// Backend implements service.Service using a local JSON file.
type Backend struct {
	store *store.Store
	log   *log.Logger

	// now is swappable for tests.
	now func() time.Time
}

// New creates a backend over the task file named by cfg.
func New(cfg *config.Config, logger *log.Logger) (*Backend, error) {
	return &Backend{
		store: store.New(cfg.TasksFile),
		log:   logger,
		now:   time.Now,
	}, nil
}

// NewWithStore creates a backend over an explicit store (for tests).
func NewWithStore(s *store.Store, logger *log.Logger) *Backend {
	return &Backend{store: s, log: logger, now: time.Now}
}

// SetNow overrides the clock (for tests).
func (b *Backend) SetNow(now func() time.Time) {
	b.now = now
}

// ListTasks implements service.Service.
func (b *Backend) ListTasks(ctx context.Context) ([]task.Task, error) {
	tasks, err := b.store.Load()
	if err != nil {
		return nil, err
	}
	b.log.Debug("loaded task file", "path", b.store.Path(), "tasks", len(tasks))
	return tasks, nil
}

// FilterTasks implements service.Service.
func (b *Backend) FilterTasks(ctx context.Context, status task.Status) ([]task.Task, error) {
	tasks, err := b.store.Load()
	if err != nil {
		return nil, err
	}
	return task.Filter(tasks, status), nil
}

// AddTask implements service.Service.
func (b *Backend) AddTask(ctx context.Context, description string) (task.Task, error) {
	description, err := task.ValidateDescription(description)
	if err != nil {
		return task.Task{}, err
	}

	tasks, err := b.store.Load()
	if err != nil {
		return task.Task{}, err
	}

	now := b.now()
	t := task.Task{
		ID:          task.NextID(tasks),
		Description: description,
		Status:      task.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	tasks = append(tasks, t)

	if err := b.store.Save(tasks); err != nil {
		return task.Task{}, err
	}
	b.log.Debug("added task", "id", t.ID)
	return t, nil
}

// UpdateTask implements service.Service.
func (b *Backend) UpdateTask(ctx context.Context, id int, description string) (task.Task, error) {
	description, err := task.ValidateDescription(description)
	if err != nil {
		return task.Task{}, err
	}

	tasks, err := b.store.Load()
	if err != nil {
		return task.Task{}, err
	}

	i := task.Find(tasks, id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}
	tasks[i].Description = description
	tasks[i].UpdatedAt = b.now()

	if err := b.store.Save(tasks); err != nil {
		return task.Task{}, err
	}
	b.log.Debug("updated task", "id", id)
	return tasks[i], nil
}

// SetStatus implements service.Service.
func (b *Backend) SetStatus(ctx context.Context, id int, status task.Status) (task.Task, error) {
	if !status.Valid() {
		return task.Task{}, &task.ValidationError{Reason: "invalid status: " + string(status)}
	}

	tasks, err := b.store.Load()
	if err != nil {
		return task.Task{}, err
	}

	i := task.Find(tasks, id)
	if i < 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}
	tasks[i].Status = status
	tasks[i].UpdatedAt = b.now()

	if err := b.store.Save(tasks); err != nil {
		return task.Task{}, err
	}
	b.log.Debug("set task status", "id", id, "status", status)
	return tasks[i], nil
}

// DeleteTask implements service.Service.
func (b *Backend) DeleteTask(ctx context.Context, id int) error {
	tasks, err := b.store.Load()
	if err != nil {
		return err
	}

	tasks, ok := task.Remove(tasks, id)
	if !ok {
		return &task.NotFoundError{ID: id}
	}

	if err := b.store.Save(tasks); err != nil {
		return err
	}
	b.log.Debug("deleted task", "id", id)
	return nil
}
