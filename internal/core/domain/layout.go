package domain

const (
	// PGODirName is the directory under the cargo target directory holding PGO profiles.
	PGODirName = "pgo-profiles"

	// BOLTDirName is the directory under the cargo target directory holding BOLT profiles.
	BOLTDirName = "bolt-profiles"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "pgoe.yaml"

	// RustFlagsEnv is the compiler flags variable read by cargo.
	RustFlagsEnv = "RUSTFLAGS"

	// CargoEnv is exported by cargo to its subcommands and points at the cargo binary.
	CargoEnv = "CARGO"

	// RustcEnv overrides the rustc binary.
	RustcEnv = "RUSTC"

	// MessageFormat is the only cargo message format the event decoder understands.
	MessageFormat = "json-diagnostic-rendered-ansi"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)
