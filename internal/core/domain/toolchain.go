package domain

import (
	"bufio"
	"strings"
)

// ToolchainInfo is the parsed output of `rustc -vV`.
type ToolchainInfo struct {
	// Version is the first line, e.g. "rustc 1.75.0 (82e1608df 2023-12-21)".
	Version     string
	Release     string
	Host        string
	CommitHash  string
	LLVMVersion string
}

// ParseVersionVerbose parses the key/value output of `rustc -vV`.
// Unknown keys are ignored; missing keys are left empty.
func ParseVersionVerbose(out string) ToolchainInfo {
	var info ToolchainInfo

	scanner := bufio.NewScanner(strings.NewReader(out))
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			info.Version = line
			first = false
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "host":
			info.Host = value
		case "release":
			info.Release = value
		case "commit-hash":
			info.CommitHash = value
		case "LLVM version":
			info.LLVMVersion = value
		}
	}

	return info
}
