// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Kingbultsea/cargo-pgo/internal/adapters/cargo"
	_ "github.com/Kingbultsea/cargo-pgo/internal/adapters/config"
	_ "github.com/Kingbultsea/cargo-pgo/internal/adapters/detector"
	_ "github.com/Kingbultsea/cargo-pgo/internal/adapters/fs"
	_ "github.com/Kingbultsea/cargo-pgo/internal/adapters/logger"
	_ "github.com/Kingbultsea/cargo-pgo/internal/adapters/report"
	// Register app and engine nodes.
	_ "github.com/Kingbultsea/cargo-pgo/internal/app"
	_ "github.com/Kingbultsea/cargo-pgo/internal/engine/instrument"
)
