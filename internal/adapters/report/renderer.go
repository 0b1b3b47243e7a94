// Package report prints instrumented artifacts and forwarded compiler output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/ui/output"
	"github.com/Kingbultsea/cargo-pgo/internal/ui/style"
	"github.com/muesli/termenv"
)

// Renderer implements ports.Reporter.
// Artifact reports go to stdout, forwarded diagnostics to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer, profileFn func() termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stdout, profileFn),
	}
}

// ReportArtifact prints where an instrumented artifact is and how to run it.
func (r *Renderer) ReportArtifact(report domain.ArtifactReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	check := r.output.String(style.Check).Foreground(r.output.Color(string(style.Green))).String()
	name := r.output.String(report.Name).Foreground(r.output.Color(string(style.Iris))).Bold().String()
	faint := func(s string) string {
		return r.output.String(s).Faint().String()
	}

	_, _ = fmt.Fprintf(r.stdout, "%s Instrumented %s %s\n", check, report.Category, name)
	_, _ = fmt.Fprintf(r.stdout, "  %s %s\n", faint("path:"), report.Executable)
	_, _ = fmt.Fprintf(r.stdout, "  %s %s=%s %s\n",
		faint("run: "), report.EnvVar, report.ProfileTemplate, report.Executable)
}

type compilerMessage struct {
	Message struct {
		Rendered string `json:"rendered"`
	} `json:"message"`
}

// Forward prints the rendered diagnostic of compiler-message events.
// Other events are ignored.
func (r *Renderer) Forward(event domain.OtherEvent) {
	if event.Kind != domain.ReasonCompilerMessage {
		return
	}

	var msg compilerMessage
	if err := json.Unmarshal(event.Raw, &msg); err != nil || msg.Message.Rendered == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rendered := msg.Message.Rendered
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	_, _ = io.WriteString(r.stderr, rendered)
}
