package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the per-repository configuration file.
	ConfigFileName = "plat.yaml"

	// DefaultBuiltinRoot is where build images keep preinstalled runtimes, as <root>/<platform>/<version>.
	DefaultBuiltinRoot = "/opt"

	// DefaultDynamicInstallRoot is where install snippets place runtimes, as <root>/<platform>/<version>.
	DefaultDynamicInstallRoot = "/tmp/plat/platforms"

	// DefaultSDKStorageURL is the base URL install snippets download runtime archives from.
	DefaultSDKStorageURL = "https://oryx-cdn.microsoft.io"

	// SentinelFileName marks a dynamically installed runtime whose download completed.
	SentinelFileName = ".plat-sdk-sentinel"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Environment variables read by plat.
const (
	// EnvDynamicInstall enables dynamic install for a request.
	EnvDynamicInstall = "ENABLE_DYNAMIC_INSTALL"
	// EnvCatalogFile points at a versions catalog replacing the embedded one.
	EnvCatalogFile = "PLAT_CATALOG_FILE"
	// EnvBuiltinRoots lists directories of preinstalled runtimes, separated by the OS path list separator.
	EnvBuiltinRoots = "PLAT_INSTALL_ROOTS"
	// EnvDynamicInstallRoot overrides DefaultDynamicInstallRoot.
	EnvDynamicInstallRoot = "PLAT_DYNAMIC_INSTALL_ROOT"
	// EnvSDKStorageURL overrides DefaultSDKStorageURL.
	EnvSDKStorageURL = "PLAT_SDK_STORAGE_URL"
	// EnvTrace logs every finished span when set to a true boolean.
	EnvTrace = "PLAT_TRACE"
)

// Settings configures the production adapters. Unlike Options they are fixed for the process lifetime.
type Settings struct {
	CatalogFile        string
	BuiltinRoots       []string
	DynamicInstallRoot string
	SDKStorageURL      string
	TraceSpans         bool
}

// DefaultSettings returns the settings used when no environment overrides are present.
func DefaultSettings() Settings {
	return Settings{
		BuiltinRoots:       []string{DefaultBuiltinRoot},
		DynamicInstallRoot: DefaultDynamicInstallRoot,
		SDKStorageURL:      DefaultSDKStorageURL,
	}
}

// InstallDir returns the directory a runtime version occupies below root.
func InstallDir(root, platform, version string) string {
	return filepath.Join(root, platform, version)
}
