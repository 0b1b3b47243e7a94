package cargo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/cargo"
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript writes an executable shell script into a temporary directory.
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)) //nolint:gosec // test executable
	return path
}

const rustcScript = `case "$1" in
-vV)
  printf 'rustc 1.79.0 (129f3b996 2024-06-10)\nbinary: rustc\ncommit-hash: 129f3b9964af4d4a709d1383930ade12dfe7c081\nhost: x86_64-unknown-linux-gnu\nrelease: 1.79.0\nLLVM version: 18.1.7\n'
  ;;
--print)
  printf '/home/user/.rustup/toolchains/stable-x86_64-unknown-linux-gnu\n'
  ;;
*)
  echo "unexpected $*" >&2
  exit 1
  ;;
esac`

func TestToolchain_Describe(t *testing.T) {
	tc := &cargo.Toolchain{Rustc: writeScript(t, "rustc", rustcScript)}

	info, err := tc.Describe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "x86_64-unknown-linux-gnu", info.Host)
	assert.Equal(t, "1.79.0", info.Release)
	assert.Equal(t, "18.1.7", info.LLVMVersion)
}

func TestToolchain_Sysroot(t *testing.T) {
	tc := &cargo.Toolchain{Rustc: writeScript(t, "rustc", rustcScript)}

	sysroot, err := tc.Sysroot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/user/.rustup/toolchains/stable-x86_64-unknown-linux-gnu", sysroot)
}

func TestToolchain_CargoVersion(t *testing.T) {
	tc := cargo.NewToolchain(&domain.Config{
		Cargo: writeScript(t, "cargo", `echo "cargo 1.79.0 (ffa9cf99a 2024-06-03)"`),
		Rustc: "rustc",
	})

	version, err := tc.CargoVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cargo 1.79.0 (ffa9cf99a 2024-06-03)", version)
}

func TestToolchain_Describe_Failure(t *testing.T) {
	tc := &cargo.Toolchain{Rustc: writeScript(t, "rustc", `echo "toolchain not installed" >&2; exit 1`)}

	_, err := tc.Describe(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrToolchainQueryFailed.Error())
}

func TestToolchain_Describe_MissingProgram(t *testing.T) {
	tc := &cargo.Toolchain{Rustc: filepath.Join(t.TempDir(), "missing-rustc")}

	_, err := tc.Describe(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrToolchainQueryFailed.Error())
}
