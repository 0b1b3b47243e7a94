package cargo

import (
	"context"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/config"
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// ToolchainNodeID is the unique identifier for the toolchain Graft node.
	ToolchainNodeID graft.ID = "adapter.toolchain"
	// MetadataNodeID is the unique identifier for the cargo metadata Graft node.
	MetadataNodeID graft.ID = "adapter.metadata"
	// DriverNodeID is the unique identifier for the build driver Graft node.
	DriverNodeID graft.ID = "adapter.driver"
)

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        ToolchainNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewToolchain(cfg), nil
		},
	})

	graft.Register(graft.Node[ports.MetadataQuery]{
		ID:        MetadataNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.MetadataQuery, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewMetadata(cfg.Cargo), nil
		},
	})

	graft.Register(graft.Node[ports.BuildDriver]{
		ID:        DriverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.BuildDriver, error) {
			return NewDriver(), nil
		},
	})
}
