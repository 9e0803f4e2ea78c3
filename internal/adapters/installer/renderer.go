package installer

import (
	"bytes"
	"context"
	"embed"
	"net/url"
	"text/template"

	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed templates/*.sh.tmpl
var templateFS embed.FS

// ScriptData is the input of an install snippet template.
type ScriptData struct {
	Platform     string
	Version      string
	InstallDir   string
	SentinelFile string
	DownloadURL  string
	ArchiveName  string
}

// Renderer implements ports.ScriptRenderer with one embedded template per platform.
type Renderer struct {
	tmpl        *template.Template
	installRoot string
	storageURL  string
}

// NewRenderer parses the embedded templates.
func NewRenderer(settings domain.Settings) (*Renderer, error) {
	tmpl, err := template.New("install").Option("missingkey=error").ParseFS(templateFS, "templates/*.sh.tmpl")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrScriptRenderFailed.Error())
	}
	return &Renderer{
		tmpl:        tmpl,
		installRoot: settings.DynamicInstallRoot,
		storageURL:  settings.SDKStorageURL,
	}, nil
}

// RenderInstallScript returns the snippet that downloads version of platform into the dynamic install root.
func (r *Renderer) RenderInstallScript(_ context.Context, platform, version string) (string, error) {
	t := r.tmpl.Lookup(platform + ".sh.tmpl")
	if t == nil {
		return "", zerr.With(domain.ErrNoInstallTemplate, "platform", platform)
	}

	archive := platform + "-" + version + ".tar.gz"
	downloadURL, err := url.JoinPath(r.storageURL, platform, archive)
	if err != nil {
		return "", zerr.With(err, "sdk_storage_url", r.storageURL)
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, ScriptData{
		Platform:     platform,
		Version:      version,
		InstallDir:   domain.InstallDir(r.installRoot, platform, version),
		SentinelFile: domain.SentinelFileName,
		DownloadURL:  downloadURL,
		ArchiveName:  archive,
	})
	if err != nil {
		return "", zerr.With(err, "platform", platform)
	}
	return buf.String(), nil
}
