package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseStatus_Valid(t *testing.T) {
	for _, s := range []string{"todo", "in-progress", "done"} {
		status, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("ParseStatus(%q): unexpected error: %v", s, err)
		}
		if string(status) != s {
			t.Errorf("ParseStatus(%q) = %q", s, status)
		}
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	_, err := ParseStatus("doing")
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestParseStatus_TrimsWhitespace(t *testing.T) {
	status, err := ParseStatus("  done ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusDone {
		t.Errorf("expected done, got %q", status)
	}
}

func TestNextID_Empty(t *testing.T) {
	if id := NextID(nil); id != 1 {
		t.Errorf("expected 1 for empty collection, got %d", id)
	}
}

func TestNextID_SkipsReusedIDs(t *testing.T) {
	// A gap left by a deletion must not be filled.
	tasks := []Task{{ID: 1}, {ID: 3}}
	if id := NextID(tasks); id != 4 {
		t.Errorf("expected 4, got %d", id)
	}
}

func TestValidateDescription_Normalizes(t *testing.T) {
	got, err := ValidateDescription("  Buy   some \n groceries  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Buy some groceries" {
		t.Errorf("expected normalized description, got %q", got)
	}
}

func TestValidateDescription_Empty(t *testing.T) {
	for _, s := range []string{"", "   ", "\t\n"} {
		if _, err := ValidateDescription(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestValidateDescription_TooLong(t *testing.T) {
	_, err := ValidateDescription(strings.Repeat("x", MaxDescriptionLen+1))
	if err == nil {
		t.Fatal("expected error for oversized description")
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	tasks := []Task{
		{ID: 1, Status: StatusTodo},
		{ID: 2, Status: StatusDone},
		{ID: 3, Status: StatusTodo},
	}
	got := Filter(tasks, StatusTodo)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("unexpected filter result: %+v", got)
	}
}

func TestFilter_NoMatch(t *testing.T) {
	tasks := []Task{{ID: 1, Status: StatusTodo}}
	got := Filter(tasks, StatusDone)
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no tasks, got %d", len(got))
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	tasks := []Task{{ID: 1}, {ID: 2}, {ID: 3}}
	got, ok := Remove(tasks, 2)
	if !ok {
		t.Fatal("expected task 2 to be removed")
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("unexpected remainder: %+v", got)
	}
}

func TestRemove_Missing(t *testing.T) {
	tasks := []Task{{ID: 1}}
	got, ok := Remove(tasks, 7)
	if ok {
		t.Error("expected removal to report missing id")
	}
	if len(got) != 1 {
		t.Errorf("collection changed on failed removal: %+v", got)
	}
}

func TestFind(t *testing.T) {
	tasks := []Task{
		{ID: 2, CreatedAt: time.Now()},
		{ID: 5, CreatedAt: time.Now()},
	}
	if i := Find(tasks, 5); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := Find(tasks, 9); i != -1 {
		t.Errorf("expected -1 for missing id, got %d", i)
	}
}
