package cargo_test

import (
	"context"
	"testing"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/cargo"
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_TargetDirectory(t *testing.T) {
	script := `[ "$1 $2 $3 $4" = "metadata --format-version 1 --no-deps" ] || exit 2
printf '{"packages":[],"target_directory":"/work/app/target","version":1}\n'`

	meta := cargo.NewMetadata(writeScript(t, "cargo", script))

	dir, err := meta.TargetDirectory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/work/app/target", dir)
}

func TestMetadata_TargetDirectory_Errors(t *testing.T) {
	tests := []struct {
		name        string
		script      string
		errContains string
	}{
		{
			name:        "not a cargo project",
			script:      `echo "error: could not find Cargo.toml" >&2; exit 101`,
			errContains: domain.ErrMetadataFailed.Error(),
		},
		{
			name:        "invalid json",
			script:      `echo "not json"`,
			errContains: domain.ErrMetadataParseFailed.Error(),
		},
		{
			name:        "missing target directory",
			script:      `echo '{"packages":[]}'`,
			errContains: domain.ErrMetadataParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := cargo.NewMetadata(writeScript(t, "cargo", tt.script))

			_, err := meta.TargetDirectory(context.Background())
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}
