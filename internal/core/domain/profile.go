package domain

import "path/filepath"

// ProfileKind selects a profile data directory inside the target directory.
type ProfileKind int

const (
	// ProfilePGO holds LLVM .profraw files produced by instrumented artifacts.
	ProfilePGO ProfileKind = iota
	// ProfileBOLT holds BOLT profiles.
	ProfileBOLT
)

// DirName returns the directory name of the profile kind.
func (k ProfileKind) DirName() string {
	if k == ProfileBOLT {
		return BOLTDirName
	}
	return PGODirName
}

// String returns a short human readable name.
func (k ProfileKind) String() string {
	if k == ProfileBOLT {
		return "BOLT"
	}
	return "PGO"
}

const (
	// ProfileFileEnv is read by instrumented artifacts to decide where profiles are written.
	ProfileFileEnv = "LLVM_PROFILE_FILE"

	// profileFileSuffix uses the LLVM placeholders %m (module signature) and %p (process id).
	profileFileSuffix = "_%m_%p.profraw"
)

// ProfileGenerateFlag returns the rustc flag instrumenting code to write profiles into dir.
func ProfileGenerateFlag(dir string) string {
	return "-Cprofile-generate=" + dir
}

// ProfileFileTemplate returns the LLVM_PROFILE_FILE value for the artifact named name.
func ProfileFileTemplate(dir, name string) string {
	return filepath.Join(dir, name+profileFileSuffix)
}
