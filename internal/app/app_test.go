package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plat/internal/app"
	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports/mocks"
	"go.trai.ch/plat/internal/engine/platform"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	loader  *mocks.MockConfigLoader
	catalog *mocks.MockVersionCatalog
	logger  *mocks.MockLogger
	ruby    *mocks.MockPlatform
	python  *mocks.MockPlatform
}

func setupAppTest(t *testing.T) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		loader:  mocks.NewMockConfigLoader(ctrl),
		catalog: mocks.NewMockVersionCatalog(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		ruby:    mocks.NewMockPlatform(ctrl),
		python:  mocks.NewMockPlatform(ctrl),
	}
	m.ruby.EXPECT().Name().Return("ruby").AnyTimes()
	m.python.EXPECT().Name().Return("python").AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	registry := platform.NewRegistry()
	require.NoError(t, registry.Register(m.ruby))
	require.NoError(t, registry.Register(m.python))

	return app.New(m.loader, registry, m.catalog, m.logger), m
}

func detection(name, version string, source domain.VersionSource) *domain.DetectionResult {
	return &domain.DetectionResult{Platform: name, PlatformVersion: version, Source: source}
}

func TestApp_Detect(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()

	m.loader.EXPECT().Load(dir).Return(domain.NewOptions(false, map[string]string{"ruby": "2.7.1"}), nil)
	m.ruby.EXPECT().Detect(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bc *domain.BuildContext) (*domain.DetectionResult, error) {
			assert.Equal(t, dir, bc.SourceDir)
			assert.Equal(t, "2.7.1", bc.Options.Version("ruby"))
			return detection("ruby", "2.7.1", domain.SourceExplicit), nil
		},
	)
	m.python.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, nil)

	results, err := a.Detect(context.Background(), app.RunOptions{Dir: dir})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, *detection("ruby", "2.7.1", domain.SourceExplicit), results[0])
}

func TestApp_Detect_SortedByPlatform(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()

	m.loader.EXPECT().Load(dir).Return(domain.Options{}, nil)
	m.ruby.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(detection("ruby", "2.7.1", domain.SourceDefault), nil)
	m.python.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(detection("python", "3.11.4", domain.SourceDetected), nil)

	results, err := a.Detect(context.Background(), app.RunOptions{Dir: dir})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "python", results[0].Platform)
	assert.Equal(t, "ruby", results[1].Platform)
}

func TestApp_Detect_OverridesWinOverConfig(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()
	enabled := true

	m.loader.EXPECT().Load(dir).Return(domain.NewOptions(false, map[string]string{"ruby": "2.6.6"}), nil)
	m.ruby.EXPECT().Detect(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bc *domain.BuildContext) (*domain.DetectionResult, error) {
			assert.True(t, bc.Options.DynamicInstall)
			assert.Equal(t, "2.7.1", bc.Options.Version("ruby"))
			return nil, nil
		},
	)

	_, err := a.Detect(context.Background(), app.RunOptions{
		Dir:            dir,
		Platforms:      []string{"ruby", "ruby"},
		DynamicInstall: &enabled,
		Versions:       map[string]string{"ruby": "2.7.1"},
	})
	require.NoError(t, err)
}

func TestApp_Detect_UnsupportedVersionAborts(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()
	unsupported := &domain.UnsupportedVersionError{Platform: "ruby", Version: "0", Supported: []string{"2.7.1"}}

	m.loader.EXPECT().Load(dir).Return(domain.Options{}, nil)
	m.ruby.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, unsupported)
	m.python.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	results, err := a.Detect(context.Background(), app.RunOptions{Dir: dir})
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Equal(t, "Platform 'ruby' version '0' is unsupported. Supported versions: 2.7.1", err.Error())
	assert.True(t, errors.Is(err, domain.ErrUnsupportedVersion))
}

func TestApp_Detect_UnknownPlatform(t *testing.T) {
	a, _ := setupAppTest(t)

	_, err := a.Detect(context.Background(), app.RunOptions{Dir: t.TempDir(), Platforms: []string{"php"}})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrPlatformNotFound.Error())
}

func TestApp_Detect_InvalidDir(t *testing.T) {
	a, _ := setupAppTest(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "Gemfile")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	_, err := a.Detect(context.Background(), app.RunOptions{Dir: file})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrSourceDirInvalid.Error())

	_, err = a.Detect(context.Background(), app.RunOptions{Dir: filepath.Join(dir, "missing")})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrSourceDirInvalid.Error())
}

func TestApp_Detect_ConfigFailure(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()

	m.loader.EXPECT().Load(dir).Return(domain.Options{}, domain.ErrConfigParseFailed)

	_, err := a.Detect(context.Background(), app.RunOptions{Dir: dir})
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Plan(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()
	rubyDetection := detection("ruby", "2.7.1", domain.SourceDefault)

	m.loader.EXPECT().Load(dir).Return(domain.NewOptions(true, nil), nil)
	m.ruby.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(rubyDetection, nil)
	m.ruby.EXPECT().InstallerScriptSnippet(gomock.Any(), gomock.Any(), rubyDetection).
		Return(domain.InstallDecision{ShouldInstall: true, Snippet: "test-script"}, nil)
	m.python.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.python.EXPECT().InstallerScriptSnippet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	plans, err := a.Plan(context.Background(), app.RunOptions{Dir: dir})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "ruby", plans[0].Detection.Platform)
	assert.True(t, plans[0].Install.ShouldInstall)
	assert.Equal(t, "test-script", plans[0].Install.Snippet)
}

func TestApp_Plan_InstallFailure(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()
	rubyDetection := detection("ruby", "2.7.1", domain.SourceDefault)

	m.loader.EXPECT().Load(dir).Return(domain.NewOptions(true, nil), nil)
	m.ruby.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(rubyDetection, nil)
	m.ruby.EXPECT().InstallerScriptSnippet(gomock.Any(), gomock.Any(), rubyDetection).
		Return(domain.InstallDecision{}, domain.ErrInstallProbeFailed)

	_, err := a.Plan(context.Background(), app.RunOptions{Dir: dir, Platforms: []string{"ruby"}})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrInstallProbeFailed.Error())
}

func TestApp_Snippet(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()
	rubyDetection := detection("ruby", "2.7.1", domain.SourceDetected)

	m.loader.EXPECT().Load(dir).Return(domain.NewOptions(true, nil), nil)
	m.ruby.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(rubyDetection, nil)
	m.ruby.EXPECT().InstallerScriptSnippet(gomock.Any(), gomock.Any(), rubyDetection).
		Return(domain.InstallDecision{ShouldInstall: true, Snippet: "test-script"}, nil)

	decision, err := a.Snippet(context.Background(), "ruby", app.RunOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "test-script", decision.Snippet)
}

func TestApp_Snippet_NotDetected(t *testing.T) {
	a, m := setupAppTest(t)
	dir := t.TempDir()

	m.loader.EXPECT().Load(dir).Return(domain.Options{}, nil)
	m.python.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := a.Snippet(context.Background(), "python", app.RunOptions{Dir: dir})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrPlatformNotDetected.Error())
}

func TestApp_Snippet_UnknownPlatform(t *testing.T) {
	a, _ := setupAppTest(t)

	_, err := a.Snippet(context.Background(), "php", app.RunOptions{Dir: t.TempDir()})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrPlatformNotFound.Error())
}

func TestApp_Platforms(t *testing.T) {
	a, m := setupAppTest(t)

	m.catalog.EXPECT().SupportedVersions(gomock.Any(), "python").
		Return(domain.SupportedVersions{Versions: []string{"3.11.4"}, Default: "3.11.4"}, nil)
	m.catalog.EXPECT().SupportedVersions(gomock.Any(), "ruby").
		Return(domain.SupportedVersions{Versions: []string{"2.6.6", "2.7.1"}, Default: "2.7.1"}, nil)

	infos, err := a.Platforms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []app.PlatformInfo{
		{Name: "python", Default: "3.11.4", Versions: []string{"3.11.4"}},
		{Name: "ruby", Default: "2.7.1", Versions: []string{"2.6.6", "2.7.1"}},
	}, infos)
}

func TestApp_Platforms_CatalogFailure(t *testing.T) {
	a, m := setupAppTest(t)

	m.catalog.EXPECT().SupportedVersions(gomock.Any(), "python").
		Return(domain.SupportedVersions{}, domain.ErrCatalogPlatformNotFound)

	_, err := a.Platforms(context.Background())
	require.Error(t, err)
}
