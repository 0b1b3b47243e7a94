// Package detector decides how console output should be rendered.
package detector

import (
	"os"

	"github.com/Kingbultsea/cargo-pgo/internal/ui/output"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode of console output.
type OutputMode int

const (
	// ModeInteractive renders for a terminal with full color detection.
	ModeInteractive OutputMode = iota
	// ModeLinear renders for CI logs, which keep basic ANSI colors.
	ModeLinear
	// ModePlain renders for output redirected to a file or pipe outside CI.
	ModePlain
)

// String returns the mode name shown by the info command.
func (m OutputMode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModePlain:
		return "plain"
	default:
		return "interactive"
	}
}

// DetectEnvironment returns the output mode for the given file descriptor.
// Any run with CI=true|1 is linear; otherwise output that is not a terminal is plain.
func DetectEnvironment(fd uintptr) OutputMode {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return ModeLinear
	}
	if !term.IsTerminal(int(fd)) { //nolint:gosec // file descriptors fit in int
		return ModePlain
	}
	return ModeInteractive
}

// ColorProfile returns the color profile selector matching the mode.
func (m OutputMode) ColorProfile() func() termenv.Profile {
	switch m {
	case ModeLinear:
		return output.ColorProfileANSI
	case ModePlain:
		return output.ColorProfileASCII
	default:
		return output.ColorProfile
	}
}
