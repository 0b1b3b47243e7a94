package ports

import "github.com/Kingbultsea/cargo-pgo/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration for the given working directory.
	// A missing config file is not an error; defaults are returned instead.
	Load(cwd string) (*domain.Config, error)
}
