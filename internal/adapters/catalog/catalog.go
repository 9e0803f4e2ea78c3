// Package catalog provides the supported-version catalog for each platform.
package catalog

import (
	"context"
	_ "embed"
	"os"
	"slices"

	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed versions.yaml
var defaultCatalog []byte

// File is the structure of a versions catalog file.
type File struct {
	Platforms map[string]EntryDTO `yaml:"platforms"`
}

// EntryDTO is the catalog entry of one platform.
type EntryDTO struct {
	Default  string   `yaml:"default"`
	Versions []string `yaml:"versions"`
}

// Catalog implements ports.VersionCatalog from a parsed catalog file. It is read-only after construction.
type Catalog struct {
	entries map[string]domain.SupportedVersions
}

// Load builds the embedded catalog and, when path is set, replaces its entries with the ones found in path.
func Load(path string) (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}

	// #nosec G304 -- path comes from operator configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogReadFailed.Error()), "path", path)
	}
	override, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	for name, entry := range override.entries {
		c.entries[name] = entry
	}
	return c, nil
}

// Parse builds a Catalog from YAML data.
// An entry without a default uses its last listed version.
func Parse(data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogParseFailed.Error())
	}

	c := &Catalog{entries: make(map[string]domain.SupportedVersions, len(file.Platforms))}
	for name, dto := range file.Platforms {
		if len(dto.Versions) == 0 {
			return nil, zerr.With(domain.ErrCatalogEmptyPlatform, "platform", name)
		}
		def := dto.Default
		if def == "" {
			def = dto.Versions[len(dto.Versions)-1]
		}
		c.entries[name] = domain.SupportedVersions{
			Versions: slices.Clone(dto.Versions),
			Default:  def,
		}
	}
	return c, nil
}

// SupportedVersions returns the catalog entry for platform.
func (c *Catalog) SupportedVersions(_ context.Context, platform string) (domain.SupportedVersions, error) {
	entry, ok := c.entries[platform]
	if !ok {
		return domain.SupportedVersions{}, zerr.With(domain.ErrCatalogPlatformNotFound, "platform", platform)
	}
	return domain.SupportedVersions{
		Versions: slices.Clone(entry.Versions),
		Default:  entry.Default,
	}, nil
}
