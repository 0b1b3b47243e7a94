package report

import (
	"context"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/detector"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the reporter Graft node.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (ports.Reporter, error) {
			mode, err := graft.Dep[detector.OutputMode](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(nil, nil, mode.ColorProfile()), nil
		},
	})
}
