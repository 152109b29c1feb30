package output

import (
	"bytes"
	"testing"

	"tasktrack/internal/task"
)

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, task.Task{ID: 3, Description: "Walk dog", Status: task.StatusInProgress})

	want := "[3] Walk dog (in-progress)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatTask_NewlinesFlattened(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, task.Task{ID: 1, Description: "line1\nline2", Status: task.StatusTodo})

	want := "[1] line1 line2 (todo)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatTasks(t *testing.T) {
	var buf bytes.Buffer
	FormatTasks(&buf, []task.Task{
		{ID: 1, Description: "one", Status: task.StatusTodo},
		{ID: 2, Description: "two", Status: task.StatusDone},
	})

	want := "[1] one (todo)\n[2] two (done)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
