package instrument

import (
	"iter"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports"
)

// Consumer drains a build event stream and reports instrumented artifacts.
type Consumer struct {
	reporter ports.Reporter
	logger   ports.Logger
}

// NewConsumer creates a new Consumer.
func NewConsumer(reporter ports.Reporter, logger ports.Logger) *Consumer {
	return &Consumer{
		reporter: reporter,
		logger:   logger,
	}
}

// Consume pulls events in order until the stream ends or fails.
// The first stream error stops consumption and is returned unchanged.
func (c *Consumer) Consume(
	kind domain.CommandKind,
	profileDir string,
	events iter.Seq2[domain.BuildEvent, error],
) error {
	for event, err := range events {
		if err != nil {
			return err
		}

		switch ev := event.(type) {
		case domain.ArtifactProduced:
			if ev.Executable == "" || !kind.ReportsArtifacts() {
				continue
			}
			c.reporter.ReportArtifact(domain.NewArtifactReport(ev, profileDir))

		case domain.BuildFinished:
			if ev.Success {
				c.logger.Info("PGO instrumentation build finished successfully")
			} else {
				c.logger.Warn("PGO instrumentation build finished with errors")
			}

		case domain.OtherEvent:
			c.reporter.Forward(ev)
		}
	}

	return nil
}
