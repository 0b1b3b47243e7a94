package domain

import "slices"

// ArtifactCategory is the user facing label of a produced artifact.
type ArtifactCategory string

const (
	// CategoryBinary labels targets of kind "bin".
	CategoryBinary ArtifactCategory = "binary"
	// CategoryBenchmark labels targets of kind "bench".
	CategoryBenchmark ArtifactCategory = "benchmark"
	// CategoryExample labels targets of kind "example".
	CategoryExample ArtifactCategory = "example"
	// CategoryArtifact is the fallback label.
	CategoryArtifact ArtifactCategory = "artifact"
)

// artifactPriority is checked in order; the first kind present wins.
var artifactPriority = []struct {
	kind     string
	category ArtifactCategory
}{
	{kind: "bin", category: CategoryBinary},
	{kind: "bench", category: CategoryBenchmark},
	{kind: "example", category: CategoryExample},
}

// ClassifyArtifact maps the kind tags of a target to its category.
func ClassifyArtifact(kinds []string) ArtifactCategory {
	for _, p := range artifactPriority {
		if slices.Contains(kinds, p.kind) {
			return p.category
		}
	}
	return CategoryArtifact
}

// ArtifactReport is what the user needs to collect profiles from an instrumented artifact.
type ArtifactReport struct {
	Category   ArtifactCategory
	Name       string
	Executable string
	// EnvVar is the variable the artifact reads at run time, e.g. LLVM_PROFILE_FILE.
	EnvVar string
	// ProfileTemplate is the value to assign to EnvVar.
	ProfileTemplate string
}

// NewArtifactReport builds the report for an artifact whose profiles go to profileDir.
func NewArtifactReport(artifact ArtifactProduced, profileDir string) ArtifactReport {
	return ArtifactReport{
		Category:        ClassifyArtifact(artifact.Kinds),
		Name:            artifact.TargetName,
		Executable:      artifact.Executable,
		EnvVar:          ProfileFileEnv,
		ProfileTemplate: ProfileFileTemplate(profileDir, artifact.TargetName),
	}
}
