package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plat/internal/adapters/config"
	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const root = "/src/app"

func newTestLoader(t *testing.T, files fstest.MapFS, env map[string]string) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return &config.Loader{
		Logger: log,
		FS:     config.NewMapFSAdapter(root, files),
		Getenv: func(key string) string { return env[key] },
	}, log
}

func TestLoad_Success(t *testing.T) {
	content := `
dynamicInstall: true
platforms:
  ruby:
    version: "2.7.1"
  python:
    version: "3.11.4"
`
	loader, _ := newTestLoader(t, fstest.MapFS{"plat.yaml": {Data: []byte(content)}}, nil)

	opts, err := loader.Load(root)
	require.NoError(t, err)
	assert.True(t, opts.DynamicInstall)
	assert.Equal(t, "2.7.1", opts.Version("ruby"))
	assert.Equal(t, "3.11.4", opts.Version("python"))
	assert.Empty(t, opts.Version("nodejs"))
}

func TestLoad_MissingFile(t *testing.T) {
	loader, _ := newTestLoader(t, fstest.MapFS{}, nil)

	opts, err := loader.Load(root)
	require.NoError(t, err)
	assert.False(t, opts.DynamicInstall)
	assert.Empty(t, opts.Versions)
}

func TestLoad_EmptyVersionWarns(t *testing.T) {
	content := "platforms:\n  ruby: {}\n"
	loader, log := newTestLoader(t, fstest.MapFS{"plat.yaml": {Data: []byte(content)}}, nil)
	log.EXPECT().Warn("platform 'ruby' in plat.yaml sets no version")

	opts, err := loader.Load(root)
	require.NoError(t, err)
	assert.Empty(t, opts.Version("ruby"))
}

func TestLoad_EnvOverrides(t *testing.T) {
	content := `
dynamicInstall: true
platforms:
  ruby:
    version: "2.6.6"
  php:
    version: "8.1.0"
`
	env := map[string]string{
		"ENABLE_DYNAMIC_INSTALL": "false",
		"RUBY_VERSION":           "2.7.1",
		"NODE_VERSION":           "18.17.0",
		"PHP_VERSION":            " 8.2.0 ",
	}
	loader, _ := newTestLoader(t, fstest.MapFS{"plat.yaml": {Data: []byte(content)}}, env)

	opts, err := loader.Load(root)
	require.NoError(t, err)
	assert.False(t, opts.DynamicInstall)
	assert.Equal(t, "2.7.1", opts.Version("ruby"))
	assert.Equal(t, "18.17.0", opts.Version("nodejs"))
	assert.Equal(t, "8.2.0", opts.Version("php"))
}

func TestLoad_CanonicalEnvBeatsAlias(t *testing.T) {
	env := map[string]string{
		"NODEJS_VERSION": "20.10.0",
		"NODE_VERSION":   "18.17.0",
	}
	loader, _ := newTestLoader(t, fstest.MapFS{}, env)

	opts, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "20.10.0", opts.Version("nodejs"))
}

func TestLoad_InvalidDynamicInstall(t *testing.T) {
	loader, _ := newTestLoader(t, fstest.MapFS{}, map[string]string{"ENABLE_DYNAMIC_INSTALL": "maybe"})

	_, err := loader.Load(root)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrInvalidDynamicInstall.Error())
}

func TestLoad_InvalidYAML(t *testing.T) {
	loader, _ := newTestLoader(t, fstest.MapFS{"plat.yaml": {Data: []byte("platforms: [\n")}}, nil)

	_, err := loader.Load(root)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoad_ReadFailure(t *testing.T) {
	loader, _ := newTestLoader(t, fstest.MapFS{"plat.yaml/nested": {Data: []byte("")}}, nil)

	_, err := loader.Load(root)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestNewLoader_ReadsRealFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("dynamicInstall: true\n"), domain.FilePerm))
	t.Setenv(domain.EnvDynamicInstall, "")

	ctrl := gomock.NewController(t)
	opts, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(dir)
	require.NoError(t, err)
	assert.True(t, opts.DynamicInstall)
}

func TestVersionEnvVar(t *testing.T) {
	assert.Equal(t, "RUBY_VERSION", config.VersionEnvVar("ruby"))
	assert.Equal(t, "NODEJS_VERSION", config.VersionEnvVar("nodejs"))
	assert.Equal(t, "DOT_NET_VERSION", config.VersionEnvVar("dot-net"))
}
