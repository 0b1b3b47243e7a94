package domain

// Config holds the resolved project configuration.
type Config struct {
	// Cargo is the cargo program used for builds and metadata.
	Cargo string
	// Rustc is the rustc program used for toolchain queries.
	Rustc string
	// KeepProfiles keeps existing profile data instead of clearing it before a build.
	KeepProfiles bool
	// Args are prepended to the pass-through cargo arguments of every instrumented build.
	Args []string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Cargo: "cargo",
		Rustc: "rustc",
	}
}
