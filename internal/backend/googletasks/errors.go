package googletasks

import (
	"fmt"
	"strings"
)

// wrapError converts raw API errors into user-facing messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: tasktrack login)")
	}
	if strings.Contains(errStr, "404") {
		return fmt.Errorf("remote resource not found")
	}

	return fmt.Errorf("google tasks: %w", err)
}
