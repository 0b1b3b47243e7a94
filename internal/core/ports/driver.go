package ports

import (
	"context"
	"iter"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
)

// BuildDriver spawns build driver processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks
type BuildDriver interface {
	// Start spawns the invocation and returns the live session.
	Start(ctx context.Context, inv domain.BuildInvocation) (BuildSession, error)
}

// BuildSession is a running build driver process and its event stream.
type BuildSession interface {
	// Events lazily decodes the captured output of the process.
	// The sequence stops after the first error and can only be ranged over once.
	Events() iter.Seq2[domain.BuildEvent, error]

	// Wait releases the captured output and waits for the process to exit.
	// A non-zero exit status is reported as domain.ErrBuildFailed.
	Wait() error
}
