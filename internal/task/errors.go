package task

import "fmt"

// ValidationError indicates user input that fails a field invariant.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError indicates an id with no matching task.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// CorruptDataError indicates a store file that exists but does not parse
// as a valid task collection.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("task file %s is corrupted: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CorruptDataError) Unwrap() error {
	return e.Err
}
