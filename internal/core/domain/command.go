package domain

import "go.trai.ch/zerr"

// CommandKind is the cargo command used for the instrumented build.
type CommandKind int

const (
	// CommandBuild runs `cargo build` in release mode.
	CommandBuild CommandKind = iota
	// CommandBench runs `cargo bench`, which picks its own optimization profile.
	CommandBench
)

// ParseCommandKind converts a cargo subcommand name into a CommandKind.
func ParseCommandKind(s string) (CommandKind, error) {
	switch s {
	case "build":
		return CommandBuild, nil
	case "bench":
		return CommandBench, nil
	default:
		return CommandBuild, zerr.With(ErrUnknownCommandKind, "command", s)
	}
}

// String returns the cargo subcommand name.
func (k CommandKind) String() string {
	switch k {
	case CommandBench:
		return "bench"
	default:
		return "build"
	}
}

// Release reports whether the command is run with --release.
func (k CommandKind) Release() bool {
	return k == CommandBuild
}

// ReportsArtifacts reports whether produced executables are announced to the user.
// Bench artifacts are executed by cargo itself and are not reported.
func (k CommandKind) ReportsArtifacts() bool {
	return k == CommandBuild
}
