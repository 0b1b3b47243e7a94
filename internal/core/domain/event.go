package domain

import "encoding/json"

// BuildEvent is a single message of the build driver's event stream.
// The concrete types are ArtifactProduced, BuildFinished and OtherEvent.
type BuildEvent interface {
	// Reason is the discriminator of the event as emitted by cargo.
	Reason() string
	isBuildEvent()
}

const (
	// ReasonCompilerArtifact is emitted when a target has been compiled.
	ReasonCompilerArtifact = "compiler-artifact"
	// ReasonBuildFinished is emitted once at the end of the build.
	ReasonBuildFinished = "build-finished"
	// ReasonCompilerMessage carries a compiler diagnostic.
	ReasonCompilerMessage = "compiler-message"
)

// ArtifactProduced reports a compiled target.
type ArtifactProduced struct {
	// TargetName is the name of the compiled target.
	TargetName string
	// Executable is the path of the produced executable, empty for libraries.
	Executable string
	// Kinds are the target kind tags, e.g. "bin", "lib", "example", "bench".
	Kinds []string
}

// Reason implements BuildEvent.
func (ArtifactProduced) Reason() string { return ReasonCompilerArtifact }

func (ArtifactProduced) isBuildEvent() {}

// BuildFinished marks the end of a build.
type BuildFinished struct {
	Success bool
}

// Reason implements BuildEvent.
func (BuildFinished) Reason() string { return ReasonBuildFinished }

func (BuildFinished) isBuildEvent() {}

// OtherEvent is any event the orchestrator does not interpret.
// The raw JSON object is kept so that reporters can render it.
type OtherEvent struct {
	Kind string
	Raw  json.RawMessage
}

// Reason implements BuildEvent.
func (e OtherEvent) Reason() string { return e.Kind }

func (OtherEvent) isBuildEvent() {}
