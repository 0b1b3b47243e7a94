package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Kingbultsea/cargo-pgo/internal/adapters/detector"
	"github.com/Kingbultsea/cargo-pgo/internal/app"
	"github.com/Kingbultsea/cargo-pgo/internal/core/domain"
	"github.com/Kingbultsea/cargo-pgo/internal/core/ports/mocks"
	"github.com/Kingbultsea/cargo-pgo/internal/engine/instrument"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	resolver  *mocks.MockWorkspaceResolver
	toolchain *mocks.MockToolchain
	logger    *mocks.MockLogger
}

func newTestProvider(t *testing.T) (ComponentProvider, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		resolver:  mocks.NewMockWorkspaceResolver(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	reporter := mocks.NewMockReporter(ctrl)

	application := app.New(
		domain.DefaultConfig(),
		m.resolver,
		m.toolchain,
		mocks.NewMockBuildDriver(ctrl),
		instrument.NewBuilder("cargo", m.toolchain, func(string) (string, bool) { return "", false }),
		instrument.NewConsumer(reporter, m.logger),
		m.logger,
		detector.ModeLinear,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(application, m.logger), func() {}, nil
	}
	return provider, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newTestProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_StripsCargoSubcommandName verifies the invocation through `cargo pgoe`.
func TestRun_StripsCargoSubcommandName(t *testing.T) {
	provider, _ := newTestProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"pgoe", "version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, m := newTestProvider(t)

	m.resolver.EXPECT().Resolve(gomock.Any()).Return(nil, domain.ErrMetadataFailed)
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"pgoe", "instrument", "build"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_UnknownCommandKind verifies that an unsupported cargo command fails.
func TestRun_UnknownCommandKind(t *testing.T) {
	provider, m := newTestProvider(t)

	m.resolver.EXPECT().Resolve(gomock.Any()).Times(0)
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"instrument", "run"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

func TestStripSubcommand(t *testing.T) {
	assert.Equal(t, []string{"instrument", "build"}, stripSubcommand([]string{"pgoe", "instrument", "build"}))
	assert.Equal(t, []string{"info"}, stripSubcommand([]string{"info"}))
	assert.Equal(t, []string{"instrument", "pgoe"}, stripSubcommand([]string{"instrument", "pgoe"}))
	assert.Empty(t, stripSubcommand(nil))
}
