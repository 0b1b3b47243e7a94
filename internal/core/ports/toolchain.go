package ports

import (
	"context"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
)

// Toolchain queries the installed rust toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Describe runs `rustc -vV` and returns its parsed output.
	Describe(ctx context.Context) (domain.ToolchainInfo, error)

	// Sysroot returns the output of `rustc --print sysroot`.
	Sysroot(ctx context.Context) (string, error)

	// CargoVersion returns the output of `cargo -V`.
	CargoVersion(ctx context.Context) (string, error)
}
