package config

// Platfile represents the structure of the plat.yaml configuration file.
type Platfile struct {
	DynamicInstall *bool                   `yaml:"dynamicInstall"`
	Platforms      map[string]*PlatformDTO `yaml:"platforms"`
}

// PlatformDTO represents the settings of one platform in the configuration.
type PlatformDTO struct {
	Version string `yaml:"version"`
}
