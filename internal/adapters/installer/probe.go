// Package installer inspects the build image for installed runtimes and renders the snippets that install
// missing ones.
package installer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Probe implements ports.InstallProbe against the local filesystem.
//
// A version counts as installed when <root>/<platform>/<version> is a directory below one of the built-in
// roots, or when the dynamic install root holds the sentinel file left by a completed install snippet.
type Probe struct {
	builtinRoots []string
	dynamicRoot  string
}

// NewProbe creates a Probe from the adapter settings.
func NewProbe(settings domain.Settings) *Probe {
	return &Probe{
		builtinRoots: append([]string(nil), settings.BuiltinRoots...),
		dynamicRoot:  settings.DynamicInstallRoot,
	}
}

// IsVersionInstalled reports whether version of platform is present on the image.
func (p *Probe) IsVersionInstalled(ctx context.Context, platform, version string) (bool, error) {
	for _, root := range p.builtinRoots {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		ok, err := isDir(domain.InstallDir(root, platform, version))
		if err != nil || ok {
			return ok, err
		}
	}

	if p.dynamicRoot == "" {
		return false, nil
	}
	sentinel := filepath.Join(domain.InstallDir(p.dynamicRoot, platform, version), domain.SentinelFileName)
	info, err := os.Stat(sentinel)
	switch {
	case err == nil:
		return info.Mode().IsRegular(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(err, "path", sentinel)
	}
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(err, "path", path)
	}
	return info.IsDir(), nil
}
