// Package commands implements the CLI commands for cargo-pgoe.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/Kingbultsea/cargo-pgo/internal/app"
	"github.com/Kingbultsea/cargo-pgo/internal/build"
	"github.com/spf13/cobra"
)

// Application is the behavior the commands drive.
type Application interface {
	Instrument(ctx context.Context, opts app.InstrumentOptions) error
	Info(ctx context.Context, w io.Writer) error
}

// CLI is the cobra command tree of cargo-pgoe.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New builds the command tree around a.
func New(a Application) *CLI {
	c := &CLI{app: a}

	c.rootCmd = &cobra.Command{
		Use:   "cargo-pgoe",
		Short: "Build PGO-instrumented Rust artifacts with cargo",
		Long: "cargo-pgoe builds Rust binaries and benchmarks instrumented for\n" +
			"profile-guided optimization. Run it through cargo as `cargo pgoe`.",
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Same shape as `cargo -V`: name, version, then commit and date.
	c.rootCmd.SetVersionTemplate(versionLine() + "\n")

	c.rootCmd.AddCommand(
		c.newInstrumentCmd(),
		c.newInfoCmd(),
		c.newVersionCmd(),
	)
	return c
}

func versionLine() string {
	return fmt.Sprintf("cargo-pgoe %s (%s %s)", build.Version, build.Commit, build.Date)
}

// Execute runs the command selected by the arguments.
func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and errors.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
