// Package config provides the configuration loader for cargo-pgoe.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only config file version understood by this loader.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger    ports.Logger
	LookupEnv func(string) (string, bool)
}

// NewLoader creates a new Loader reading overrides from the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:    logger,
		LookupEnv: os.LookupEnv,
	}
}

// Load resolves the configuration for cwd.
// The nearest pgoe.yaml in cwd or one of its parents is used; without one the
// defaults apply. CARGO and RUSTC from the environment override the file.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, found := findConfiguration(cwd)
	if found {
		if err := l.applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if v, ok := l.LookupEnv(domain.CargoEnv); ok && v != "" {
		cfg.Cargo = v
	}
	if v, ok := l.LookupEnv(domain.RustcEnv); ok && v != "" {
		cfg.Rustc = v
	}

	return cfg, nil
}

func (l *Loader) applyFile(cfg *domain.Config, path string) error {
	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return err
	}

	if file.Version == "" {
		l.Logger.Warn(fmt.Sprintf("%s has no version, assuming %q", path, supportedVersion))
	} else if file.Version != supportedVersion {
		return zerr.With(zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version), "path", path)
	}

	if file.Toolchain.Cargo != "" {
		cfg.Cargo = file.Toolchain.Cargo
	}
	if file.Toolchain.Rustc != "" {
		cfg.Rustc = file.Toolchain.Rustc
	}
	cfg.KeepProfiles = file.Instrument.KeepProfiles
	cfg.Args = append(cfg.Args, file.Instrument.Args...)

	return nil
}

// findConfiguration walks up from cwd looking for the config file.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return nil
}
