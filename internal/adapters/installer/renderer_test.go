package installer_test

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plat/internal/adapters/installer"
	"go.trai.ch/plat/internal/core/domain"
)

func TestRenderer_Golden(t *testing.T) {
	tests := []struct {
		platform string
		version  string
	}{
		{platform: "ruby", version: "2.7.1"},
		{platform: "nodejs", version: "18.17.0"},
		{platform: "python", version: "3.11.4"},
	}

	r, err := installer.NewRenderer(domain.DefaultSettings())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			script, err := r.RenderInstallScript(context.Background(), tt.platform, tt.version)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.platform, []byte(script))
		})
	}
}

func TestRenderer_CustomSettings(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.DynamicInstallRoot = "/var/plat"
	settings.SDKStorageURL = "https://mirror.example.com/sdks/"

	r, err := installer.NewRenderer(settings)
	require.NoError(t, err)

	script, err := r.RenderInstallScript(context.Background(), "ruby", "3.2.2")
	require.NoError(t, err)
	assert.Contains(t, script, `PLATFORM_DIR="/var/plat/ruby/3.2.2"`)
	assert.Contains(t, script, "https://mirror.example.com/sdks/ruby/ruby-3.2.2.tar.gz")
}

func TestRenderer_UnknownPlatform(t *testing.T) {
	r, err := installer.NewRenderer(domain.DefaultSettings())
	require.NoError(t, err)

	_, err = r.RenderInstallScript(context.Background(), "php", "8.2.0")
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrNoInstallTemplate.Error())
}
