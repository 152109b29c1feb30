// Package logging provides the debug logger used across the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Unless debug is set, all output is
// discarded so the normal command output stays clean.
func New(w io.Writer, debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: false,
		Prefix:          "tasktrack",
	})
}
