// Package app implements the application layer for cargo-pgoe.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/detector"
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"github.com/Kingbultsea/cargo-pgo/internal/engine/instrument"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	llvmProfdata  = "llvm-profdata"
	llvmToolsHint = "rustup component add llvm-tools-preview"
)

// App represents the main application logic.
type App struct {
	config    *domain.Config
	resolver  ports.WorkspaceResolver
	toolchain ports.Toolchain
	driver    ports.BuildDriver
	builder   *instrument.Builder
	consumer  *instrument.Consumer
	logger    ports.Logger
	mode      detector.OutputMode
	lookPath  func(string) (string, error)
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	resolver ports.WorkspaceResolver,
	toolchain ports.Toolchain,
	driver ports.BuildDriver,
	builder *instrument.Builder,
	consumer *instrument.Consumer,
	log ports.Logger,
	mode detector.OutputMode,
) *App {
	return &App{
		config:    cfg,
		resolver:  resolver,
		toolchain: toolchain,
		driver:    driver,
		builder:   builder,
		consumer:  consumer,
		logger:    log,
		mode:      mode,
		lookPath:  exec.LookPath,
	}
}

// WithLookPath replaces the PATH lookup used to find llvm-profdata.
// This is primarily used for testing.
func (a *App) WithLookPath(fn func(string) (string, error)) *App {
	a.lookPath = fn
	return a
}

// InstrumentOptions configuration for the Instrument method.
type InstrumentOptions struct {
	Kind domain.CommandKind
	// KeepProfiles skips clearing the profile directory before the build.
	KeepProfiles bool
	// Args are passed to cargo after sanitization.
	Args []string
}

// Instrument runs an instrumented cargo build and reports the produced artifacts.
func (a *App) Instrument(ctx context.Context, opts InstrumentOptions) error {
	// 1. Resolve the workspace and prepare the profile directory
	ws, err := a.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	profileDir, err := ws.ProfileDirectory(domain.ProfilePGO)
	if err != nil {
		return err
	}

	if !opts.KeepProfiles && !a.config.KeepProfiles {
		if err := ws.Clear(profileDir); err != nil {
			return err
		}
	}

	// 2. Build the invocation
	args := slices.Concat(a.config.Args, opts.Args)
	sanitized := instrument.Sanitize(args, a.logger)

	inv, err := a.builder.Build(ctx, opts.Kind, domain.ProfileGenerateFlag(profileDir), sanitized)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Running %s %s with PGO instrumentation", filepath.Base(inv.Program), opts.Kind))

	// 3. Spawn cargo and drain its event stream
	session, err := a.driver.Start(ctx, inv)
	if err != nil {
		return err
	}

	consumeErr := a.consumer.Consume(opts.Kind, profileDir, session.Events())
	waitErr := session.Wait()

	if consumeErr != nil {
		return consumeErr
	}
	if waitErr != nil {
		return waitErr
	}

	a.logger.Info(fmt.Sprintf("PGO profiles will be stored in %s", profileDir))
	return nil
}

// Info prints diagnostics about the toolchain and the current project.
func (a *App) Info(ctx context.Context, w io.Writer) error {
	var (
		info         domain.ToolchainInfo
		cargoVersion string
		sysroot      string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = a.toolchain.Describe(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if cargoVersion, err = a.toolchain.CargoVersion(gctx); err != nil {
			a.logger.Warn(fmt.Sprintf("cannot determine cargo version: %s", err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sysroot, err = a.toolchain.Sysroot(gctx); err != nil {
			a.logger.Warn(fmt.Sprintf("cannot determine rustc sysroot: %s", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "failed to inspect the rust toolchain")
	}

	printField(w, "rustc", fmt.Sprintf("%s (host: %s, LLVM %s)",
		orUnknown(info.Release), orUnknown(info.Host), orUnknown(info.LLVMVersion)))
	printField(w, "cargo", orUnknown(cargoVersion))
	printField(w, llvmProfdata, a.findProfdata(sysroot, info.Host))
	printField(w, "output mode", a.mode.String())

	ws, err := a.resolver.Resolve(ctx)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("not inside a cargo project: %s", err))
		return nil
	}

	printField(w, "target dir", ws.TargetDirectory())
	for _, kind := range []domain.ProfileKind{domain.ProfilePGO, domain.ProfileBOLT} {
		dir, err := ws.ProfileDirectory(kind)
		if err != nil {
			return err
		}
		printField(w, kind.String()+" profiles", dir)
	}

	return nil
}

// findProfdata looks up llvm-profdata on PATH, then in the rustup llvm-tools component.
func (a *App) findProfdata(sysroot, host string) string {
	if path, err := a.lookPath(llvmProfdata); err == nil {
		return path
	}

	if sysroot != "" && host != "" {
		candidate := filepath.Join(sysroot, "lib", "rustlib", host, "bin", llvmProfdata)
		if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
			return candidate
		}
	}

	return fmt.Sprintf("not found (run `%s`)", llvmToolsHint)
}

func printField(w io.Writer, name, value string) {
	_, _ = fmt.Fprintf(w, "%-15s %s\n", name+":", strings.TrimSpace(value))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
