package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownCommandKind is returned when the requested cargo command is not build or bench.
	ErrUnknownCommandKind = zerr.New("unknown cargo command, expected 'build' or 'bench'")

	// ErrTargetUnresolved is returned when the default target triple of the toolchain cannot be determined.
	ErrTargetUnresolved = zerr.New("cannot determine the default target triple of the toolchain")

	// ErrToolchainQueryFailed is returned when a toolchain diagnostic command cannot be run.
	ErrToolchainQueryFailed = zerr.New("failed to query the rust toolchain")

	// ErrMetadataFailed is returned when cargo metadata cannot be obtained.
	ErrMetadataFailed = zerr.New("cannot get cargo metadata")

	// ErrMetadataParseFailed is returned when cargo metadata output cannot be decoded.
	ErrMetadataParseFailed = zerr.New("failed to parse cargo metadata")

	// ErrSpawnFailed is returned when the build driver process cannot be started.
	ErrSpawnFailed = zerr.New("failed to start cargo")

	// ErrMalformedEvent is returned when a line of the build event stream is not a valid event.
	ErrMalformedEvent = zerr.New("malformed build event")

	// ErrEventStreamFailed is returned when reading the build event stream fails.
	ErrEventStreamFailed = zerr.New("failed to read build event stream")

	// ErrSessionConsumed is returned when the events of a build session are requested twice.
	ErrSessionConsumed = zerr.New("build event stream already consumed")

	// ErrBuildFailed is returned when the build driver exits with a non-zero status.
	ErrBuildFailed = zerr.New("cargo build failed")

	// ErrDirectoryCreateFailed is returned when a profile directory cannot be created.
	ErrDirectoryCreateFailed = zerr.New("failed to create directory")

	// ErrDirectoryClearFailed is returned when a profile directory cannot be cleared.
	ErrDirectoryClearFailed = zerr.New("failed to clear directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")
)
