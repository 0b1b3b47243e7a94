package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyArtifact(t *testing.T) {
	tests := []struct {
		name     string
		kinds    []string
		expected domain.ArtifactCategory
	}{
		{name: "binary", kinds: []string{"bin"}, expected: domain.CategoryBinary},
		{name: "bench", kinds: []string{"bench"}, expected: domain.CategoryBenchmark},
		{name: "example", kinds: []string{"example"}, expected: domain.CategoryExample},
		{name: "lib and bench", kinds: []string{"lib", "bench"}, expected: domain.CategoryBenchmark},
		{name: "bin wins over bench", kinds: []string{"bench", "bin"}, expected: domain.CategoryBinary},
		{name: "bench wins over example", kinds: []string{"example", "bench"}, expected: domain.CategoryBenchmark},
		{name: "library only", kinds: []string{"lib"}, expected: domain.CategoryArtifact},
		{name: "no kinds", kinds: nil, expected: domain.CategoryArtifact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ClassifyArtifact(tt.kinds))
		})
	}
}

func TestNewArtifactReport(t *testing.T) {
	dir := filepath.Join("target", "pgo-profiles")
	report := domain.NewArtifactReport(domain.ArtifactProduced{
		TargetName: "server",
		Executable: "/work/target/release/server",
		Kinds:      []string{"bin"},
	}, dir)

	assert.Equal(t, domain.CategoryBinary, report.Category)
	assert.Equal(t, "server", report.Name)
	assert.Equal(t, "/work/target/release/server", report.Executable)
	assert.Equal(t, "LLVM_PROFILE_FILE", report.EnvVar)
	assert.Equal(t, filepath.Join(dir, "server_%m_%p.profraw"), report.ProfileTemplate)
}
