package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/service"
	"tasktrack/internal/task"
)

func init() {
	Register(&MarkDoneCmd{})
	Register(&MarkInProgressCmd{})
	Register(&MarkTodoCmd{})
}

// MarkDoneCmd implements the mark-done command.
type MarkDoneCmd struct{}

func (c *MarkDoneCmd) Name() string      { return "mark-done" }
func (c *MarkDoneCmd) Aliases() []string { return []string{"done"} }
func (c *MarkDoneCmd) Synopsis() string  { return "Mark a task done" }
func (c *MarkDoneCmd) Usage() string     { return "tasktrack mark-done <id>" }
func (c *MarkDoneCmd) NeedsStore() bool  { return true }

func (c *MarkDoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkDoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(ctx, cfg, svc, task.StatusDone, args, out, errOut)
}

// MarkInProgressCmd implements the mark-in-progress command.
type MarkInProgressCmd struct{}

func (c *MarkInProgressCmd) Name() string      { return "mark-in-progress" }
func (c *MarkInProgressCmd) Aliases() []string { return []string{"start"} }
func (c *MarkInProgressCmd) Synopsis() string  { return "Mark a task in progress" }
func (c *MarkInProgressCmd) Usage() string     { return "tasktrack mark-in-progress <id>" }
func (c *MarkInProgressCmd) NeedsStore() bool  { return true }

func (c *MarkInProgressCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkInProgressCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(ctx, cfg, svc, task.StatusInProgress, args, out, errOut)
}

// MarkTodoCmd implements the mark-todo command.
type MarkTodoCmd struct{}

func (c *MarkTodoCmd) Name() string      { return "mark-todo" }
func (c *MarkTodoCmd) Aliases() []string { return nil }
func (c *MarkTodoCmd) Synopsis() string  { return "Mark a task todo" }
func (c *MarkTodoCmd) Usage() string     { return "tasktrack mark-todo <id>" }
func (c *MarkTodoCmd) NeedsStore() bool  { return true }

func (c *MarkTodoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkTodoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(ctx, cfg, svc, task.StatusTodo, args, out, errOut)
}

// runMark is the shared implementation for the mark-* commands.
func runMark(ctx context.Context, cfg *config.Config, svc service.Service, status task.Status, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	t, err := svc.SetStatus(ctx, id, status)
	if err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "task %d marked %s\n", t.ID, t.Status)
	}
	return exitcode.Success
}
