package fs

import (
	"context"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/cargo"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"github.com/grindlemire/graft"
)

// ResolverNodeID is the unique identifier for the workspace resolver Graft node.
const ResolverNodeID graft.ID = "adapter.fs.resolver"

func init() {
	graft.Register(graft.Node[ports.WorkspaceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cargo.MetadataNodeID},
		Run: func(ctx context.Context) (ports.WorkspaceResolver, error) {
			query, err := graft.Dep[ports.MetadataQuery](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(query), nil
		},
	})
}
