// Package fs manages the profile directories inside the cargo target directory.
package fs

import (
	"os"
	"path/filepath"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"go.trai.ch/zerr"
)

// ProjectContext implements ports.Workspace for a single cargo target directory.
type ProjectContext struct {
	targetDir string
}

// NewProjectContext creates a ProjectContext rooted at targetDir.
func NewProjectContext(targetDir string) *ProjectContext {
	return &ProjectContext{targetDir: targetDir}
}

// TargetDirectory returns the cargo target directory.
func (p *ProjectContext) TargetDirectory() string {
	return p.targetDir
}

// ProfileDirectory returns <target>/<pgo|bolt>-profiles, creating it when missing.
func (p *ProjectContext) ProfileDirectory(kind domain.ProfileKind) (string, error) {
	path := filepath.Join(p.targetDir, kind.DirName())
	if err := ensureDirectory(path); err != nil {
		return "", err
	}
	return path, nil
}

// Clear removes path with all its contents and recreates it empty.
// A missing path is not an error.
func (p *ProjectContext) Clear(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryClearFailed.Error()), "path", path)
	}
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryClearFailed.Error()), "path", path)
	}
	return nil
}

func ensureDirectory(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryCreateFailed.Error()), "path", path)
	}
	return nil
}
