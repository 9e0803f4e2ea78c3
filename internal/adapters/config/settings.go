package config

import (
	"path/filepath"
	"strconv"

	"go.trai.ch/plat/internal/core/domain"
)

// LoadSettings builds the adapter settings from the environment.
func LoadSettings(getenv func(string) string) domain.Settings {
	s := domain.DefaultSettings()
	s.CatalogFile = getenv(domain.EnvCatalogFile)

	if raw := getenv(domain.EnvBuiltinRoots); raw != "" {
		var roots []string
		for _, root := range filepath.SplitList(raw) {
			if root != "" {
				roots = append(roots, root)
			}
		}
		s.BuiltinRoots = roots
	}
	if v := getenv(domain.EnvDynamicInstallRoot); v != "" {
		s.DynamicInstallRoot = v
	}
	if v := getenv(domain.EnvSDKStorageURL); v != "" {
		s.SDKStorageURL = v
	}
	// An unparsable value leaves tracing off.
	s.TraceSpans, _ = strconv.ParseBool(getenv(domain.EnvTrace))
	return s
}
