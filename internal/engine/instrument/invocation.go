package instrument

import (
	"context"
	"strings"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder turns sanitized arguments into a ready to spawn cargo invocation.
type Builder struct {
	program   string
	toolchain ports.Toolchain
	lookupEnv func(string) (string, bool)
}

// NewBuilder creates a Builder running program as cargo.
// lookupEnv is consulted for the RUSTFLAGS the user already set.
func NewBuilder(program string, toolchain ports.Toolchain, lookupEnv func(string) (string, bool)) *Builder {
	return &Builder{
		program:   program,
		toolchain: toolchain,
		lookupEnv: lookupEnv,
	}
}

// Build assembles the invocation for kind with the rustc flag appended to RUSTFLAGS.
func (b *Builder) Build(
	ctx context.Context,
	kind domain.CommandKind,
	flag string,
	args domain.SanitizedArgs,
) (domain.BuildInvocation, error) {
	cmdArgs := make([]string, 0, len(args.Args)+6)
	cmdArgs = append(cmdArgs, kind.String())

	if kind.Release() {
		cmdArgs = append(cmdArgs, flagRelease)
	}

	// An explicit target keeps build scripts out of the instrumented flags.
	if !args.HasTarget {
		host, err := b.hostTarget(ctx)
		if err != nil {
			return domain.BuildInvocation{}, err
		}
		cmdArgs = append(cmdArgs, flagTarget, host)
	}

	cmdArgs = append(cmdArgs, flagMessageFormat, domain.MessageFormat)
	cmdArgs = append(cmdArgs, args.Args...)

	return domain.BuildInvocation{
		Program: b.program,
		Args:    cmdArgs,
		Env:     []string{domain.RustFlagsEnv + "=" + b.rustFlags(flag)},
		Stdin:   domain.StreamInherit,
		Stdout:  domain.StreamCapture,
		Stderr:  domain.StreamInherit,
	}, nil
}

func (b *Builder) rustFlags(flag string) string {
	existing, ok := b.lookupEnv(domain.RustFlagsEnv)
	if !ok || strings.TrimSpace(existing) == "" {
		return flag
	}
	return existing + " " + flag
}

func (b *Builder) hostTarget(ctx context.Context) (string, error) {
	info, err := b.toolchain.Describe(ctx)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrTargetUnresolved.Error())
	}
	if info.Host == "" {
		return "", domain.ErrTargetUnresolved
	}
	return info.Host, nil
}
