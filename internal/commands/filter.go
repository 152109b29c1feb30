package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/output"
	"tasktrack/internal/service"
	"tasktrack/internal/task"
)

func init() {
	Register(&FilterCmd{})
}

// FilterCmd implements the filter command.
type FilterCmd struct{}

func (c *FilterCmd) Name() string      { return "filter" }
func (c *FilterCmd) Aliases() []string { return nil }
func (c *FilterCmd) Synopsis() string  { return "List tasks with a given status" }
func (c *FilterCmd) Usage() string     { return "tasktrack filter <status>" }
func (c *FilterCmd) NeedsStore() bool  { return true }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilterCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: status required (todo, in-progress, done)")
		return exitcode.UserError
	}

	status, err := task.ParseStatus(args[0])
	if err != nil {
		return fail(errOut, err)
	}

	tasks, err := svc.FilterTasks(ctx, status)
	if err != nil {
		return fail(errOut, err)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatTasks(out, tasks)
	return exitcode.Success
}
