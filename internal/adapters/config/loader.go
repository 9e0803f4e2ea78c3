// Package config provides the configuration loader for plat.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// versionEnvAliases lists extra environment variables accepted for a platform version, after the canonical
// <PLATFORM>_VERSION one.
var versionEnvAliases = map[string][]string{
	domain.PlatformNodeJS: {"NODE_VERSION"},
}

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger reading the real filesystem and environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger: logger,
		FS:     NewOSFS(),
		Getenv: os.Getenv,
	}
}

// Load reads plat.yaml from dir, when present, then applies environment overrides.
func (l *Loader) Load(dir string) (domain.Options, error) {
	configPath := filepath.Join(dir, domain.ConfigFileName)

	var platfile Platfile
	if err := l.readPlatfile(configPath, &platfile); err != nil {
		return domain.Options{}, zerr.With(err, "path", configPath)
	}

	dynamicInstall := false
	if platfile.DynamicInstall != nil {
		dynamicInstall = *platfile.DynamicInstall
	}

	versions := make(map[string]string, len(platfile.Platforms))
	for name, dto := range platfile.Platforms {
		if dto == nil || dto.Version == "" {
			l.Logger.Warn(fmt.Sprintf("platform '%s' in %s sets no version", name, domain.ConfigFileName))
			continue
		}
		versions[name] = dto.Version
	}

	if raw := l.Getenv(domain.EnvDynamicInstall); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.Options{}, zerr.With(domain.ErrInvalidDynamicInstall, "value", raw)
		}
		dynamicInstall = v
	}

	for _, name := range l.envPlatforms(platfile) {
		if v := l.envVersion(name); v != "" {
			versions[name] = v
		}
	}

	return domain.NewOptions(dynamicInstall, versions), nil
}

// readPlatfile decodes configPath into target. A missing file leaves target untouched.
func (l *Loader) readPlatfile(configPath string, target *Platfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

// envPlatforms returns the built-in platforms plus any platform named in the configuration file.
func (l *Loader) envPlatforms(platfile Platfile) []string {
	names := []string{domain.PlatformNodeJS, domain.PlatformPython, domain.PlatformRuby}
	for name := range platfile.Platforms {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (l *Loader) envVersion(platform string) string {
	keys := append([]string{VersionEnvVar(platform)}, versionEnvAliases[platform]...)
	for _, key := range keys {
		if v := strings.TrimSpace(l.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// VersionEnvVar returns the environment variable holding the explicit version of platform.
func VersionEnvVar(platform string) string {
	return strings.ToUpper(strings.ReplaceAll(platform, "-", "_")) + "_VERSION"
}
