package localfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tasktrack/internal/logging"
	"tasktrack/internal/store"
	"tasktrack/internal/task"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "tasks.json"))
	return NewWithStore(s, logging.New(nil, false))
}

func TestAddTask_FirstID(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	got, err := b.AddTask(ctx, "Buy groceries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("expected id 1, got %d", got.ID)
	}
	if got.Status != task.StatusTodo {
		t.Errorf("expected status todo, got %s", got.Status)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Error("createdAt and updatedAt should match at creation")
	}
}

func TestAddTask_IDsMonotonicAcrossDelete(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	for _, desc := range []string{"one", "two", "three"} {
		if _, err := b.AddTask(ctx, desc); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.DeleteTask(ctx, 3); err != nil {
		t.Fatal(err)
	}

	// Id 3 was deleted; it must not be reused.
	got, err := b.AddTask(ctx, "four")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 4 {
		t.Errorf("expected id 4 after deleting id 3, got %d", got.ID)
	}

	tasks, err := b.ListTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int]bool)
	prev := 0
	for _, tk := range tasks {
		if seen[tk.ID] {
			t.Errorf("duplicate id %d", tk.ID)
		}
		seen[tk.ID] = true
		if tk.ID <= prev {
			t.Errorf("ids not strictly increasing: %d after %d", tk.ID, prev)
		}
		prev = tk.ID
	}
}

func TestAddTask_EmptyDescription(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.AddTask(context.Background(), "   ")
	var verr *task.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateTask_RefreshesUpdatedAtOnly(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	b.SetNow(func() time.Time { return base })

	created, err := b.AddTask(ctx, "Buy groceries")
	if err != nil {
		t.Fatal(err)
	}

	b.SetNow(func() time.Time { return base.Add(time.Minute) })
	updated, err := b.UpdateTask(ctx, created.ID, "Buy milk")
	if err != nil {
		t.Fatal(err)
	}

	if updated.Description != "Buy milk" {
		t.Errorf("expected new description, got %q", updated.Description)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt must never change")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updatedAt must advance on update")
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.UpdateTask(context.Background(), 42, "nope")
	var nferr *task.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nferr.ID != 42 {
		t.Errorf("expected id 42 in error, got %d", nferr.ID)
	}
}

func TestSetStatus(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	b.SetNow(func() time.Time { return base })

	created, err := b.AddTask(ctx, "Buy groceries")
	if err != nil {
		t.Fatal(err)
	}

	b.SetNow(func() time.Time { return base.Add(time.Minute) })
	got, err := b.SetStatus(ctx, created.ID, task.StatusInProgress)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != task.StatusInProgress {
		t.Errorf("expected in-progress, got %s", got.Status)
	}
	if got.ID != created.ID {
		t.Errorf("id changed: %d -> %d", created.ID, got.ID)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updatedAt must advance on status change")
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.SetStatus(context.Background(), 1, task.Status("doing"))
	var verr *task.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.SetStatus(context.Background(), 9, task.StatusDone)
	var nferr *task.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	b := newTestBackend(t)

	err := b.DeleteTask(context.Background(), 9)
	var nferr *task.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeletedTaskNeverFiltered(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	if _, err := b.AddTask(ctx, "one"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddTask(ctx, "two"); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteTask(ctx, 1); err != nil {
		t.Fatal(err)
	}

	for _, status := range task.Statuses {
		tasks, err := b.FilterTasks(ctx, status)
		if err != nil {
			t.Fatal(err)
		}
		for _, tk := range tasks {
			if tk.ID == 1 {
				t.Errorf("deleted id 1 returned by filter %s", status)
			}
		}
	}
}

// TestLifecycleScenario walks the full load-mutate-save cycle the way a
// user would: add, start, add, delete, list, filter.
func TestLifecycleScenario(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	first, err := b.AddTask(ctx, "Buy groceries")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != 1 || first.Status != task.StatusTodo {
		t.Fatalf("unexpected first task: %+v", first)
	}

	started, err := b.SetStatus(ctx, 1, task.StatusInProgress)
	if err != nil {
		t.Fatal(err)
	}
	if started.Status != task.StatusInProgress || started.ID != 1 {
		t.Fatalf("unexpected task after mark: %+v", started)
	}

	second, err := b.AddTask(ctx, "Walk dog")
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != 2 {
		t.Fatalf("expected id 2, got %d", second.ID)
	}

	if err := b.DeleteTask(ctx, 1); err != nil {
		t.Fatal(err)
	}

	remaining, err := b.ListTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].ID != 2 {
		t.Fatalf("expected only id 2, got %+v", remaining)
	}

	todos, err := b.FilterTasks(ctx, task.StatusTodo)
	if err != nil {
		t.Fatal(err)
	}
	if len(todos) != 1 || todos[0].ID != 2 {
		t.Fatalf("expected id 2 in todo filter, got %+v", todos)
	}
}

func TestBackend_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	ctx := context.Background()

	b1 := NewWithStore(store.New(path), logging.New(nil, false))
	if _, err := b1.AddTask(ctx, "persisted"); err != nil {
		t.Fatal(err)
	}

	// A fresh backend over the same file sees the same collection,
	// as a new CLI invocation would.
	b2 := NewWithStore(store.New(path), logging.New(nil, false))
	tasks, err := b2.ListTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Description != "persisted" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}
