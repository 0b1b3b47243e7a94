package fs

import (
	"context"
	"sync"

	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
)

// Resolver implements ports.WorkspaceResolver.
// A successful resolution is cached for the lifetime of the Resolver.
type Resolver struct {
	query ports.MetadataQuery

	mu        sync.Mutex
	workspace *ProjectContext
}

// NewResolver creates a Resolver backed by the given metadata query.
func NewResolver(query ports.MetadataQuery) *Resolver {
	return &Resolver{query: query}
}

// Resolve returns the workspace of the current cargo project.
func (r *Resolver) Resolve(ctx context.Context) (ports.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.workspace != nil {
		return r.workspace, nil
	}

	targetDir, err := r.query.TargetDirectory(ctx)
	if err != nil {
		return nil, err
	}

	r.workspace = NewProjectContext(targetDir)
	return r.workspace, nil
}
