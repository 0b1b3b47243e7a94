package instrument

import (
	"context"
	"os"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/cargo"  //nolint:depguard // Wired in engine wiring
	"github.com/Kingbultsea/cargo-pgo/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"github.com/Kingbultsea/cargo-pgo/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/Kingbultsea/cargo-pgo/internal/adapters/report" //nolint:depguard // Wired in engine wiring
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// BuilderNodeID is the unique identifier for the invocation builder Graft node.
	BuilderNodeID graft.ID = "engine.instrument.builder"
	// ConsumerNodeID is the unique identifier for the event consumer Graft node.
	ConsumerNodeID graft.ID = "engine.instrument.consumer"
)

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cargo.ToolchainNodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(cfg.Cargo, toolchain, os.LookupEnv), nil
		},
	})

	graft.Register(graft.Node[*Consumer]{
		ID:        ConsumerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			report.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Consumer, error) {
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewConsumer(reporter, log), nil
		},
	})
}
