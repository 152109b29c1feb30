// Package task defines the task entity and pure operations on a task collection.
package task

import (
	"strings"
	"time"
)

// MaxDescriptionLen is the maximum length of a task description after
// whitespace normalization.
const MaxDescriptionLen = 500

// Status represents a task status.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists all valid statuses in lifecycle order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus converts a user-supplied string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.Valid() {
		return "", &ValidationError{Reason: "invalid status: " + s}
	}
	return st, nil
}

// Task represents a single trackable item.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NormalizeDescription collapses internal whitespace and trims the ends.
func NormalizeDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValidateDescription normalizes a description and checks length limits.
// Returns the normalized description.
func ValidateDescription(s string) (string, error) {
	normalized := NormalizeDescription(s)
	if normalized == "" {
		return "", &ValidationError{Reason: "description cannot be empty"}
	}
	if len(normalized) > MaxDescriptionLen {
		return "", &ValidationError{Reason: "description is too long"}
	}
	return normalized, nil
}

// NextID returns one greater than the maximum id present, or 1 for an
// empty collection. Ids are never reused after deletion.
func NextID(tasks []Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Find returns the index of the task with the given id, or -1.
func Find(tasks []Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Filter returns the tasks matching status, preserving collection order.
func Filter(tasks []Task, status Status) []Task {
	matched := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			matched = append(matched, t)
		}
	}
	return matched
}

// Remove deletes the task with the given id, preserving the relative
// order of the remainder. Reports whether the id was present.
func Remove(tasks []Task, id int) ([]Task, bool) {
	i := Find(tasks, id)
	if i < 0 {
		return tasks, false
	}
	return append(tasks[:i], tasks[i+1:]...), true
}
