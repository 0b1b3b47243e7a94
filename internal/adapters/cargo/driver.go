package cargo

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"os/exec"
	"strings"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Driver implements ports.BuildDriver using os/exec.
type Driver struct {
	environ func() []string
}

// NewDriver creates a Driver that layers invocations on top of the process environment.
func NewDriver() *Driver {
	return &Driver{environ: os.Environ}
}

// Start spawns the invocation.
// Only stdout can be captured; other captured streams are left unconnected.
func (d *Driver) Start(ctx context.Context, inv domain.BuildInvocation) (ports.BuildSession, error) {
	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...) //nolint:gosec // program comes from configuration
	cmd.Env = mergeEnvironment(d.environ(), inv.Env)

	if inv.Stdin == domain.StreamInherit {
		cmd.Stdin = os.Stdin
	}
	if inv.Stderr == domain.StreamInherit {
		cmd.Stderr = os.Stderr
	}

	s := &session{cmd: cmd}
	if inv.Stdout == domain.StreamCapture {
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSpawnFailed.Error()), "program", inv.Program)
		}
		s.reader = bufio.NewReader(stdout)
	} else {
		cmd.Stdout = os.Stdout
	}

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSpawnFailed.Error()), "program", inv.Program)
	}

	return s, nil
}

type session struct {
	cmd      *exec.Cmd
	reader   *bufio.Reader
	consumed bool
	line     int
}

func (s *session) Events() iter.Seq2[domain.BuildEvent, error] {
	return func(yield func(domain.BuildEvent, error) bool) {
		if s.consumed {
			yield(nil, domain.ErrSessionConsumed)
			return
		}
		s.consumed = true

		if s.reader == nil {
			return
		}

		for {
			raw, readErr := s.reader.ReadBytes('\n')
			if len(raw) > 0 {
				s.line++
				if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 {
					event, err := decodeEvent(trimmed)
					if err != nil {
						yield(nil, zerr.With(err, "line", s.line))
						return
					}
					if !yield(event, nil) {
						return
					}
				}
			}

			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					yield(nil, zerr.Wrap(readErr, domain.ErrEventStreamFailed.Error()))
				}
				return
			}
		}
	}
}

func (s *session) Wait() error {
	// The pipe is closed by cmd.Wait, so unread output has to be drained first.
	if s.reader != nil {
		_, _ = io.Copy(io.Discard, s.reader)
	}

	if err := s.cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "exit_code", exitCode)
	}

	return nil
}

// mergeEnvironment applies overlay entries on top of sysEnv.
// Existing keys keep their position, new keys are appended in overlay order.
func mergeEnvironment(sysEnv, overlay []string) []string {
	result := make([]string, 0, len(sysEnv)+len(overlay))
	index := make(map[string]int, len(sysEnv))

	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, exists := index[k]; exists {
			result[i] = entry
			continue
		}
		index[k] = len(result)
		result = append(result, entry)
	}

	for _, entry := range overlay {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, exists := index[k]; exists {
			result[i] = entry
			continue
		}
		index[k] = len(result)
		result = append(result, entry)
	}

	return result
}
