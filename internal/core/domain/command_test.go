package domain_test

import (
	"testing"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandKind(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.CommandKind
		wantErr  bool
	}{
		{input: "build", expected: domain.CommandBuild},
		{input: "bench", expected: domain.CommandBench},
		{input: "test", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := domain.ParseCommandKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), domain.ErrUnknownCommandKind.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
			assert.Equal(t, tt.input, kind.String())
		})
	}
}

func TestCommandKind_Modes(t *testing.T) {
	assert.True(t, domain.CommandBuild.Release())
	assert.True(t, domain.CommandBuild.ReportsArtifacts())

	assert.False(t, domain.CommandBench.Release())
	assert.False(t, domain.CommandBench.ReportsArtifacts())
}
