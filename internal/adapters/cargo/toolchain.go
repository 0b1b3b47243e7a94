package cargo

import (
	"context"
	"strings"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Toolchain implements ports.Toolchain by running rustc and cargo.
type Toolchain struct {
	Cargo string
	Rustc string
}

// NewToolchain creates a Toolchain using the programs selected by cfg.
func NewToolchain(cfg *domain.Config) *Toolchain {
	return &Toolchain{
		Cargo: cfg.Cargo,
		Rustc: cfg.Rustc,
	}
}

// Describe runs `rustc -vV`.
func (t *Toolchain) Describe(ctx context.Context) (domain.ToolchainInfo, error) {
	out, err := output(ctx, t.Rustc, "-vV")
	if err != nil {
		return domain.ToolchainInfo{}, zerr.Wrap(err, domain.ErrToolchainQueryFailed.Error())
	}
	return domain.ParseVersionVerbose(out), nil
}

// Sysroot runs `rustc --print sysroot`.
func (t *Toolchain) Sysroot(ctx context.Context) (string, error) {
	out, err := output(ctx, t.Rustc, "--print", "sysroot")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrToolchainQueryFailed.Error())
	}
	return strings.TrimSpace(out), nil
}

// CargoVersion runs `cargo -V`.
func (t *Toolchain) CargoVersion(ctx context.Context) (string, error) {
	out, err := output(ctx, t.Cargo, "-V")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrToolchainQueryFailed.Error())
	}
	return strings.TrimSpace(out), nil
}
