// Package main is the entry point for the cargo-pgoe cargo subcommand.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kingbultsea/cargo-pgo/cmd/cargo-pgoe/commands"
	"github.com/Kingbultsea/cargo-pgo/internal/app"
	_ "github.com/Kingbultsea/cargo-pgo/internal/wiring"
	"github.com/grindlemire/graft"
)

// subcommandName is the argument cargo inserts when it runs `cargo pgoe ...`.
const subcommandName = "pgoe"

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, resolveComponents))
}

func resolveComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

// run executes the CLI and returns the process exit code.
func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// No logger without components.
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(stripSubcommand(args))
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// stripSubcommand drops the name cargo passes first, so `cargo pgoe x` and
// `cargo-pgoe x` behave the same.
func stripSubcommand(args []string) []string {
	if len(args) > 0 && args[0] == subcommandName {
		return args[1:]
	}
	return args
}
