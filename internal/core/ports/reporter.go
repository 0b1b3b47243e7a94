package ports

import "github.com/Kingbultsea/cargo-pgo/internal/core/domain"

// Reporter presents the outcome of an instrumented build to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// ReportArtifact announces an instrumented artifact and how to collect its profiles.
	ReportArtifact(report domain.ArtifactReport)

	// Forward passes an event the orchestrator does not interpret to the console.
	// It must not block on user interaction.
	Forward(event domain.OtherEvent)
}
