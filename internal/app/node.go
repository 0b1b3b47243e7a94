package app

import (
	"context"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/cargo"    //nolint:depguard // Wired in app layer
	"github.com/Kingbultsea/cargo-pgo/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/Kingbultsea/cargo-pgo/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"github.com/Kingbultsea/cargo-pgo/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"github.com/Kingbultsea/cargo-pgo/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"github.com/Kingbultsea/cargo-pgo/internal/engine/instrument"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			cargo.ToolchainNodeID,
			cargo.DriverNodeID,
			instrument.BuilderNodeID,
			instrument.ConsumerNodeID,
			logger.NodeID,
			detector.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.WorkspaceResolver](ctx)
			if err != nil {
				return nil, err
			}

			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			driver, err := graft.Dep[ports.BuildDriver](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[*instrument.Builder](ctx)
			if err != nil {
				return nil, err
			}

			consumer, err := graft.Dep[*instrument.Consumer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			mode, err := graft.Dep[detector.OutputMode](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, resolver, toolchain, driver, builder, consumer, log, mode), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}
