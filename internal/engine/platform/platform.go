// Package platform composes version resolution, validation and the install decision for one language
// platform on top of injected collaborators.
package platform

import (
	"context"
	"fmt"

	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Platform implements ports.Platform for a single platform name.
type Platform struct {
	name     string
	detector ports.VersionDetector
	catalog  ports.VersionCatalog
	probe    ports.InstallProbe
	renderer ports.ScriptRenderer
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a Platform named name from its collaborators.
func New(
	name string,
	detector ports.VersionDetector,
	catalog ports.VersionCatalog,
	probe ports.InstallProbe,
	renderer ports.ScriptRenderer,
	logger ports.Logger,
	tracer ports.Tracer,
) *Platform {
	return &Platform{
		name:     name,
		detector: detector,
		catalog:  catalog,
		probe:    probe,
		renderer: renderer,
		logger:   logger,
		tracer:   tracer,
	}
}

// Name returns the platform name.
func (p *Platform) Name() string {
	return p.name
}

// Detect returns the platform and its effective version for the source tree, or nil when the detector does
// not find the platform's marker artifact.
func (p *Platform) Detect(ctx context.Context, bc *domain.BuildContext) (*domain.DetectionResult, error) {
	ctx, span := p.tracer.Start(ctx, "platform.detect")
	defer span.End()
	span.SetAttribute("platform", p.name)

	result, err := p.detect(ctx, bc)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("detected", result != nil)
	if result != nil {
		span.SetAttribute("version", result.PlatformVersion)
		span.SetAttribute("source", string(result.Source))
	}
	return result, nil
}

func (p *Platform) detect(ctx context.Context, bc *domain.BuildContext) (*domain.DetectionResult, error) {
	found, err := p.detector.Detect(ctx, bc.Source)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDetectionFailed.Error()), "platform", p.name)
	}
	if found == nil {
		return nil, nil
	}

	supported, err := p.catalog.SupportedVersions(ctx, p.name)
	if err != nil {
		return nil, zerr.With(err, "platform", p.name)
	}

	resolved := domain.ResolveVersion(bc.Options.Version(p.name), found.PlatformVersion, supported.Default)
	if resolved.Source == domain.SourceDefault {
		p.logger.Info(fmt.Sprintf("%s: no version found in %s, using default %s", p.name, bc.SourceDir, resolved.Version))
	}

	version, err := domain.ValidateVersion(p.name, resolved.Version, supported)
	if err != nil {
		return nil, err
	}

	return &domain.DetectionResult{
		Platform:        p.name,
		PlatformVersion: version,
		Source:          resolved.Source,
	}, nil
}

// InstallerScriptSnippet decides whether the detected version must be installed before the build.
func (p *Platform) InstallerScriptSnippet(
	ctx context.Context,
	bc *domain.BuildContext,
	detection *domain.DetectionResult,
) (domain.InstallDecision, error) {
	if detection == nil {
		return domain.InstallDecision{}, nil
	}

	ctx, span := p.tracer.Start(ctx, "platform.install_decision")
	defer span.End()
	span.SetAttribute("platform", p.name)
	span.SetAttribute("version", detection.PlatformVersion)
	span.SetAttribute("dynamic_install", bc.Options.DynamicInstall)

	decision, err := domain.DecideInstall(
		detection.PlatformVersion,
		bc.Options.DynamicInstall,
		func(version string) (bool, error) {
			return p.probe.IsVersionInstalled(ctx, p.name, version)
		},
		func(version string) (string, error) {
			return p.renderer.RenderInstallScript(ctx, p.name, version)
		},
	)
	if err != nil {
		err = zerr.With(err, "platform", p.name)
		span.RecordError(err)
		return domain.InstallDecision{}, err
	}

	span.SetAttribute("should_install", decision.ShouldInstall)
	return decision, nil
}
