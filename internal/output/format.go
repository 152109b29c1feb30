// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasktrack/internal/task"
)

// FormatTask formats a single task line.
// Format: "[{ID}] {DESCRIPTION} ({STATUS})\n"
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "[%d] %s (%s)\n", t.ID, normalizeDescription(t.Description), t.Status)
}

// FormatTasks formats a sequence of tasks, one line each.
func FormatTasks(w io.Writer, tasks []task.Task) {
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// normalizeDescription normalizes a description for display.
// - Empty or whitespace-only descriptions become "(empty)"
// - Newlines are replaced with spaces
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(empty)"
	}
	return desc
}
