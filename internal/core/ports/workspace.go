package ports

import (
	"context"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
)

// MetadataQuery locates the cargo project of the working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type MetadataQuery interface {
	// TargetDirectory returns the absolute path of the cargo target directory.
	TargetDirectory(ctx context.Context) (string, error)
}

// Workspace owns the profile directories of a project.
type Workspace interface {
	// TargetDirectory returns the project output root.
	TargetDirectory() string

	// ProfileDirectory returns the directory for the given profile kind,
	// creating it if it does not exist.
	ProfileDirectory(kind domain.ProfileKind) (string, error)

	// Clear removes everything inside path and recreates it empty.
	Clear(path string) error
}

// WorkspaceResolver resolves the Workspace of the current project.
type WorkspaceResolver interface {
	// Resolve returns the workspace, querying cargo at most once per process.
	Resolve(ctx context.Context) (Workspace, error)
}
