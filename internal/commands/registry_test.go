package commands_test

import (
	"context"
	"flag"
	"io"
	"testing"

	"tasktrack/internal/commands"
	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/service"
)

// stubCmd is a minimal Command for registry tests.
type stubCmd struct {
	name    string
	aliases []string
}

func (c *stubCmd) Name() string                  { return c.name }
func (c *stubCmd) Aliases() []string             { return c.aliases }
func (c *stubCmd) Synopsis() string              { return "stub" }
func (c *stubCmd) Usage() string                 { return "tasktrack " + c.name }
func (c *stubCmd) NeedsStore() bool              { return false }
func (c *stubCmd) RegisterFlags(fs *flag.FlagSet) {}
func (c *stubCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return exitcode.Success
}

func TestRegistryResolve(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&stubCmd{name: "delete", aliases: []string{"rm"}}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	cmd, primary, ok := r.Resolve("rm")
	if !ok {
		t.Fatal("alias rm should resolve")
	}
	if primary != "delete" {
		t.Errorf("alias rm resolved to primary %q, want %q", primary, "delete")
	}
	if cmd.Name() != "delete" {
		t.Errorf("alias rm resolved to command %q, want %q", cmd.Name(), "delete")
	}

	if _, _, ok := r.Resolve("nope"); ok {
		t.Error("unregistered name should not resolve")
	}
}

func TestRegistryRejectsCollisions(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&stubCmd{name: "delete", aliases: []string{"rm"}}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := r.Register(&stubCmd{name: "delete"}); err == nil {
		t.Error("duplicate primary name should be rejected")
	}
	if err := r.Register(&stubCmd{name: "rm"}); err == nil {
		t.Error("primary name shadowing an alias should be rejected")
	}
	if err := r.Register(&stubCmd{name: "purge", aliases: []string{"delete"}}); err == nil {
		t.Error("alias shadowing a primary name should be rejected")
	}
	if err := r.Register(&stubCmd{name: "drop", aliases: []string{"drop"}}); err == nil {
		t.Error("alias equal to its own primary name should be rejected")
	}
}

func TestRegistryAllOrder(t *testing.T) {
	r := commands.NewRegistry()
	for _, name := range []string{"update", "add", "list"} {
		if err := r.Register(&stubCmd{name: name}); err != nil {
			t.Fatalf("register %s failed: %v", name, err)
		}
	}

	all := r.All()
	want := []string{"add", "list", "update"}
	if len(all) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(all))
	}
	for i, name := range want {
		if all[i].Name() != name {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].Name(), name)
		}
	}
}
