package app

import (
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components instance.
func NewComponents(a *App, log ports.Logger) *Components {
	return &Components{
		App:    a,
		Logger: log,
	}
}
