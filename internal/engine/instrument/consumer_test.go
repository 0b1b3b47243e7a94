package instrument_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports/mocks"
	"github.com/Kingbultsea/cargo-pgo/internal/engine/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type streamItem struct {
	event domain.BuildEvent
	err   error
}

func stream(items ...streamItem) iter.Seq2[domain.BuildEvent, error] {
	return func(yield func(domain.BuildEvent, error) bool) {
		for _, item := range items {
			if !yield(item.event, item.err) {
				return
			}
		}
	}
}

func setupConsumer(t *testing.T) (*instrument.Consumer, *mocks.MockReporter, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	log := mocks.NewMockLogger(ctrl)
	return instrument.NewConsumer(reporter, log), reporter, log
}

var binaryArtifact = domain.ArtifactProduced{
	TargetName: "app",
	Executable: "/t/x86_64-unknown-linux-gnu/release/app",
	Kinds:      []string{"bin"},
}

func TestConsumer_Consume_BuildReportsArtifact(t *testing.T) {
	consumer, reporter, log := setupConsumer(t)

	var reports []domain.ArtifactReport
	reporter.EXPECT().ReportArtifact(gomock.Any()).Do(func(r domain.ArtifactReport) {
		reports = append(reports, r)
	}).Times(1)
	log.EXPECT().Info(gomock.Any()).Times(1)

	err := consumer.Consume(domain.CommandBuild, "/t/pgo-profiles", stream(
		streamItem{event: binaryArtifact},
		streamItem{event: domain.BuildFinished{Success: true}},
	))
	require.NoError(t, err)

	require.Len(t, reports, 1)
	assert.Equal(t, domain.CategoryBinary, reports[0].Category)
	assert.Equal(t, "app", reports[0].Name)
	assert.Equal(t, binaryArtifact.Executable, reports[0].Executable)
	assert.Equal(t, "LLVM_PROFILE_FILE", reports[0].EnvVar)
	assert.Contains(t, reports[0].ProfileTemplate, "/t/pgo-profiles")
	assert.Contains(t, reports[0].ProfileTemplate, "app")
}

func TestConsumer_Consume_BenchDoesNotReport(t *testing.T) {
	consumer, reporter, log := setupConsumer(t)

	reporter.EXPECT().ReportArtifact(gomock.Any()).Times(0)
	log.EXPECT().Info(gomock.Any()).Times(1)

	err := consumer.Consume(domain.CommandBench, "/t/pgo-profiles", stream(
		streamItem{event: binaryArtifact},
		streamItem{event: domain.BuildFinished{Success: true}},
	))
	require.NoError(t, err)
}

func TestConsumer_Consume_SkipsLibraries(t *testing.T) {
	consumer, reporter, _ := setupConsumer(t)

	reporter.EXPECT().ReportArtifact(gomock.Any()).Times(0)

	err := consumer.Consume(domain.CommandBuild, "/t/pgo-profiles", stream(
		streamItem{event: domain.ArtifactProduced{TargetName: "core", Kinds: []string{"lib"}}},
	))
	require.NoError(t, err)
}

func TestConsumer_Consume_ForwardsOtherEvents(t *testing.T) {
	consumer, reporter, log := setupConsumer(t)

	message := domain.OtherEvent{Kind: domain.ReasonCompilerMessage, Raw: []byte(`{"reason":"compiler-message"}`)}
	reporter.EXPECT().Forward(message).Times(1)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	err := consumer.Consume(domain.CommandBuild, "/t/pgo-profiles", stream(
		streamItem{event: message},
		streamItem{event: domain.BuildFinished{Success: false}},
	))
	require.NoError(t, err)
}

func TestConsumer_Consume_StopsOnError(t *testing.T) {
	consumer, reporter, _ := setupConsumer(t)

	streamErr := errors.New("malformed build event")
	reporter.EXPECT().ReportArtifact(gomock.Any()).Times(0)

	err := consumer.Consume(domain.CommandBuild, "/t/pgo-profiles", stream(
		streamItem{err: streamErr},
		streamItem{event: binaryArtifact},
	))
	require.ErrorIs(t, err, streamErr)
}

func TestConsumer_Consume_EmptyStream(t *testing.T) {
	consumer, _, _ := setupConsumer(t)

	require.NoError(t, consumer.Consume(domain.CommandBuild, "/t/pgo-profiles", stream()))
}
