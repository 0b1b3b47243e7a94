package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/fs"
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o600))
}

func TestProjectContext_ProfileDirectory(t *testing.T) {
	t.Parallel()

	targetDir := t.TempDir()
	project := fs.NewProjectContext(targetDir)

	tests := []struct {
		kind domain.ProfileKind
		want string
	}{
		{kind: domain.ProfilePGO, want: filepath.Join(targetDir, "pgo-profiles")},
		{kind: domain.ProfileBOLT, want: filepath.Join(targetDir, "bolt-profiles")},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			path, err := project.ProfileDirectory(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, path)
			assert.DirExists(t, path)
		})
	}
}

func TestProjectContext_ProfileDirectory_Idempotent(t *testing.T) {
	t.Parallel()

	project := fs.NewProjectContext(t.TempDir())

	first, err := project.ProfileDirectory(domain.ProfilePGO)
	require.NoError(t, err)
	mustCreateFile(t, first, "app_1_2.profraw")

	second, err := project.ProfileDirectory(domain.ProfilePGO)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.FileExists(t, filepath.Join(second, "app_1_2.profraw"))
}

func TestProjectContext_ProfileDirectory_CreatesMissingTarget(t *testing.T) {
	t.Parallel()

	targetDir := filepath.Join(t.TempDir(), "not", "built", "yet")
	project := fs.NewProjectContext(targetDir)

	path, err := project.ProfileDirectory(domain.ProfilePGO)
	require.NoError(t, err)
	assert.DirExists(t, path)
	assert.Equal(t, targetDir, project.TargetDirectory())
}

func TestProjectContext_ProfileDirectory_Failure(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	// A regular file where the target directory should be.
	mustCreateFile(t, rootDir, "target")

	project := fs.NewProjectContext(filepath.Join(rootDir, "target"))

	_, err := project.ProfileDirectory(domain.ProfilePGO)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDirectoryCreateFailed.Error())
}

func TestProjectContext_Clear(t *testing.T) {
	t.Parallel()

	project := fs.NewProjectContext(t.TempDir())
	dir, err := project.ProfileDirectory(domain.ProfilePGO)
	require.NoError(t, err)

	mustCreateFile(t, dir, "app_1_2.profraw")
	mustCreateFile(t, dir, "nested/bench_3_4.profraw")

	require.NoError(t, project.Clear(dir))

	assert.DirExists(t, dir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProjectContext_Clear_MissingDirectory(t *testing.T) {
	t.Parallel()

	project := fs.NewProjectContext(t.TempDir())
	dir := filepath.Join(project.TargetDirectory(), "pgo-profiles")

	require.NoError(t, project.Clear(dir))
	assert.DirExists(t, dir)
}

func TestProjectContext_Clear_AlreadyEmpty(t *testing.T) {
	t.Parallel()

	project := fs.NewProjectContext(t.TempDir())
	dir, err := project.ProfileDirectory(domain.ProfilePGO)
	require.NoError(t, err)

	require.NoError(t, project.Clear(dir))
	require.NoError(t, project.Clear(dir))

	assert.DirExists(t, dir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProjectContext_Clear_Failure(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	mustCreateFile(t, rootDir, "blocker")

	project := fs.NewProjectContext(rootDir)

	err := project.Clear(filepath.Join(rootDir, "blocker", "pgo-profiles"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDirectoryClearFailed.Error())
}
