package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktrack/internal/backend/googletasks"
	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/logging"
	"tasktrack/internal/service"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd implements the push command: a one-way mirror of the local
// collection into a Google Tasks list.
type PushCmd struct {
	listName string
}

// SetListName sets the target list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Mirror tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "tasktrack push [--list <name>]" }
func (c *PushCmd) NeedsStore() bool  { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PushCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "error: push takes no arguments")
		return exitcode.UserError
	}

	if !cfg.HasOAuthClient() {
		fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
		return exitcode.AuthError
	}
	if !cfg.HasToken() {
		fmt.Fprintln(errOut, "error: not logged in (run: tasktrack login)")
		return exitcode.AuthError
	}

	listName := c.listName
	if listName == "" {
		listName = cfg.PushList
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return fail(errOut, err)
	}

	client, err := googletasks.New(ctx, cfg, logging.New(errOut, cfg.Debug))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	stats, err := client.Push(ctx, tasks, listName)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "pushed to %s: %d created, %d updated, %d deleted\n",
			listName, stats.Created, stats.Updated, stats.Deleted)
	}
	return exitcode.Success
}
