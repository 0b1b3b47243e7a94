package config

// File represents the structure of the pgoe.yaml configuration file.
type File struct {
	Version    string        `yaml:"version"`
	Toolchain  ToolchainDTO  `yaml:"toolchain"`
	Instrument InstrumentDTO `yaml:"instrument"`
}

// ToolchainDTO selects the cargo and rustc programs.
type ToolchainDTO struct {
	Cargo string `yaml:"cargo"`
	Rustc string `yaml:"rustc"`
}

// InstrumentDTO holds defaults for the instrument command.
type InstrumentDTO struct {
	KeepProfiles bool     `yaml:"keep_profiles"`
	Args         []string `yaml:"args"`
}
