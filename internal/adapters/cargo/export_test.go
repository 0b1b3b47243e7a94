package cargo

import "github.com/Kingbultsea/cargo-pgo/internal/core/domain"

// NewDriverWithEnviron creates a Driver with a fixed base environment.
func NewDriverWithEnviron(environ []string) *Driver {
	return &Driver{environ: func() []string { return environ }}
}

// MergeEnvironment exposes mergeEnvironment for testing.
func MergeEnvironment(sysEnv, overlay []string) []string {
	return mergeEnvironment(sysEnv, overlay)
}

// DecodeEvent exposes decodeEvent for testing.
func DecodeEvent(line []byte) (domain.BuildEvent, error) {
	return decodeEvent(line)
}
