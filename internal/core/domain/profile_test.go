package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProfileKind_DirName(t *testing.T) {
	assert.Equal(t, "pgo-profiles", domain.ProfilePGO.DirName())
	assert.Equal(t, "bolt-profiles", domain.ProfileBOLT.DirName())
	assert.Equal(t, "PGO", domain.ProfilePGO.String())
	assert.Equal(t, "BOLT", domain.ProfileBOLT.String())
}

func TestProfileGenerateFlag(t *testing.T) {
	assert.Equal(t, "-Cprofile-generate=/tmp/t/pgo-profiles", domain.ProfileGenerateFlag("/tmp/t/pgo-profiles"))
}

func TestProfileFileTemplate(t *testing.T) {
	got := domain.ProfileFileTemplate(filepath.Join("/tmp", "pgo"), "app")
	assert.Equal(t, filepath.Join("/tmp", "pgo", "app_%m_%p.profraw"), got)
}
