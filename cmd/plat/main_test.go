package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/plat/internal/adapters/telemetry"
	"go.trai.ch/plat/internal/app"
	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports/mocks"
	"go.trai.ch/plat/internal/engine/platform"
	"go.uber.org/mock/gomock"
)

func newTestComponents(t *testing.T) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger, *mocks.MockPlatform) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockPlatform := mocks.NewMockPlatform(ctrl)
	mockPlatform.EXPECT().Name().Return("ruby").AnyTimes()

	registry := platform.NewRegistry()
	if err := registry.Register(mockPlatform); err != nil {
		t.Fatal(err)
	}

	application := app.New(mockLoader, registry, mocks.NewMockVersionCatalog(ctrl), mockLogger)
	return app.NewComponents(application, mockLogger, nil), mockLoader, mockLogger, mockPlatform
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _, _, _ := newTestComponents(t)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "plat version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_UnsupportedVersion verifies that a rejected version fails the run and is logged verbatim.
func TestRun_UnsupportedVersion(t *testing.T) {
	components, mockLoader, mockLogger, mockPlatform := newTestComponents(t)
	dir := t.TempDir()

	mockLoader.EXPECT().Load(dir).Return(domain.Options{}, nil)
	mockPlatform.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, &domain.UnsupportedVersionError{
		Platform:  "ruby",
		Version:   "0",
		Supported: []string{"2.7.1"},
	})

	var logged error
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"detect", dir}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
	assert.EqualError(t, logged, "Platform 'ruby' version '0' is unsupported. Supported versions: 2.7.1")
}

// TestRun_CleanupCalled verifies that the provider cleanup runs after execution.
func TestRun_CleanupCalled(t *testing.T) {
	components, _, mockLogger, _ := newTestComponents(t)
	mockLogger.EXPECT().Error(gomock.Any())

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	missing := filepath.Join(t.TempDir(), "missing")
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr))

	exitCode := run(context.Background(), []string{"detect", missing}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}

// TestRun_RecordsSpans verifies that a detect run reports its spans to the registered tracer provider and
// that the provider is shut down when the run ends.
func TestRun_RecordsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	sr := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	provider := telemetry.NewProvider(sr)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockDetector := mocks.NewMockVersionDetector(ctrl)
	mockCatalog := mocks.NewMockVersionCatalog(ctrl)

	mockLoader.EXPECT().Load(dir).Return(domain.Options{}, nil)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockDetector.EXPECT().Detect(gomock.Any(), gomock.Any()).
		Return(&domain.DetectorResult{Platform: "ruby"}, nil)
	mockCatalog.EXPECT().SupportedVersions(gomock.Any(), "ruby").
		Return(domain.SupportedVersions{Versions: []string{"2.7.1"}, Default: "2.7.1"}, nil)

	registry := platform.NewRegistry()
	require.NoError(t, registry.Register(platform.New(
		"ruby",
		mockDetector,
		mockCatalog,
		mocks.NewMockInstallProbe(ctrl),
		mocks.NewMockScriptRenderer(ctrl),
		mockLogger,
		provider.Tracer(telemetry.InstrumentationName),
	)))

	shutDown := false
	components := app.NewComponents(
		app.New(mockLoader, registry, mockCatalog, mockLogger),
		mockLogger,
		func(ctx context.Context) error {
			shutDown = true
			return provider.Shutdown(ctx)
		},
	)
	componentProvider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { _ = components.Close(context.Background()) }, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"detect", dir}, stdout, new(bytes.Buffer), componentProvider)
	require.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "ruby 2.7.1 (default)")
	assert.True(t, shutDown)

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "platform.detect", ended[0].Name())

	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "ruby", attrs["platform"])
	assert.Equal(t, "2.7.1", attrs["version"])
	assert.Equal(t, "default", attrs["source"])
}
