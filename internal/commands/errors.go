package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"tasktrack/internal/exitcode"
	"tasktrack/internal/task"
)

// fail prints err as a one-line message and maps it to an exit code
// using the store's typed error taxonomy.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)

	var validationErr *task.ValidationError
	var notFoundErr *task.NotFoundError
	var corruptErr *task.CorruptDataError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &notFoundErr):
		return exitcode.UserError
	case errors.As(err, &corruptErr):
		return exitcode.DataError
	default:
		return exitcode.BackendError
	}
}

// parseID parses a positive integer task id from a command argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	return id, nil
}
