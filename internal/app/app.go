// Package app implements the application layer for plat.
package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
	"go.trai.ch/plat/internal/engine/platform"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     *platform.Registry
	catalog      ports.VersionCatalog
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	registry *platform.Registry,
	catalog ports.VersionCatalog,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		registry:     registry,
		catalog:      catalog,
		logger:       log,
	}
}

// RunOptions configures one request.
type RunOptions struct {
	// Dir is the source directory. Defaults to the working directory.
	Dir string
	// Platforms restricts the request to the named platforms. Empty means all registered platforms.
	Platforms []string
	// DynamicInstall overrides the configured dynamic install setting when non-nil.
	DynamicInstall *bool
	// Versions overrides configured explicit versions per platform.
	Versions map[string]string
}

// PlatformInfo describes a registered platform and its catalog entry.
type PlatformInfo struct {
	Name     string   `json:"name"`
	Default  string   `json:"default"`
	Versions []string `json:"versions"`
}

// Detect detects every selected platform in the source directory concurrently.
// Results are ordered by platform name. The first failure aborts the request.
func (a *App) Detect(ctx context.Context, opts RunOptions) ([]domain.DetectionResult, error) {
	plans, err := a.run(ctx, opts, false)
	if err != nil {
		return nil, err
	}

	results := make([]domain.DetectionResult, 0, len(plans))
	for _, plan := range plans {
		results = append(results, plan.Detection)
	}
	return results, nil
}

// Plan detects every selected platform and decides whether each detected runtime must be installed.
func (a *App) Plan(ctx context.Context, opts RunOptions) ([]domain.PlatformPlan, error) {
	return a.run(ctx, opts, true)
}

// Snippet returns the install decision for one platform, which must be detected in the source directory.
func (a *App) Snippet(ctx context.Context, name string, opts RunOptions) (domain.InstallDecision, error) {
	p, err := a.registry.Get(name)
	if err != nil {
		return domain.InstallDecision{}, err
	}

	bc, err := a.buildContext(opts)
	if err != nil {
		return domain.InstallDecision{}, err
	}

	detection, err := p.Detect(ctx, bc)
	if err != nil {
		return domain.InstallDecision{}, annotate(err, name)
	}
	if detection == nil {
		err := zerr.With(domain.ErrPlatformNotDetected, "platform", name)
		return domain.InstallDecision{}, zerr.With(err, "dir", bc.SourceDir)
	}

	decision, err := p.InstallerScriptSnippet(ctx, bc, detection)
	if err != nil {
		return domain.InstallDecision{}, annotate(err, name)
	}
	return decision, nil
}

// Platforms lists the registered platforms with their supported versions.
func (a *App) Platforms(ctx context.Context) ([]PlatformInfo, error) {
	names := a.registry.Names()
	infos := make([]PlatformInfo, 0, len(names))
	for _, name := range names {
		supported, err := a.catalog.SupportedVersions(ctx, name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, PlatformInfo{
			Name:     name,
			Default:  supported.Default,
			Versions: supported.Versions,
		})
	}
	return infos, nil
}

func (a *App) run(ctx context.Context, opts RunOptions, decide bool) ([]domain.PlatformPlan, error) {
	platforms, err := a.selectPlatforms(opts.Platforms)
	if err != nil {
		return nil, err
	}

	bc, err := a.buildContext(opts)
	if err != nil {
		return nil, err
	}

	plans := make([]*domain.PlatformPlan, len(platforms))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range platforms {
		g.Go(func() error {
			plan, err := planPlatform(gctx, p, bc, decide)
			if err != nil {
				return annotate(err, p.Name())
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.PlatformPlan, 0, len(plans))
	for _, plan := range plans {
		if plan != nil {
			out = append(out, *plan)
		}
	}
	if len(out) == 0 {
		a.logger.Info(fmt.Sprintf("no platform detected in %s", bc.SourceDir))
	}
	return out, nil
}

func planPlatform(
	ctx context.Context,
	p ports.Platform,
	bc *domain.BuildContext,
	decide bool,
) (*domain.PlatformPlan, error) {
	detection, err := p.Detect(ctx, bc)
	if err != nil || detection == nil {
		return nil, err
	}

	plan := &domain.PlatformPlan{Detection: *detection}
	if !decide {
		return plan, nil
	}

	plan.Install, err = p.InstallerScriptSnippet(ctx, bc, detection)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (a *App) selectPlatforms(names []string) ([]ports.Platform, error) {
	if len(names) == 0 {
		return a.registry.Platforms(), nil
	}

	sorted := slices.Sorted(slices.Values(names))
	sorted = slices.Compact(sorted)

	out := make([]ports.Platform, 0, len(sorted))
	for _, name := range sorted {
		p, err := a.registry.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// buildContext resolves the source directory and merges configured options with request overrides.
func (a *App) buildContext(opts RunOptions) (*domain.BuildContext, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceDirInvalid.Error()), "dir", dir)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceDirInvalid.Error()), "dir", abs)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrSourceDirInvalid, "dir", abs)
	}

	configured, err := a.configLoader.Load(abs)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	dynamicInstall := configured.DynamicInstall
	if opts.DynamicInstall != nil {
		dynamicInstall = *opts.DynamicInstall
	}
	versions := maps.Clone(configured.Versions)
	if versions == nil {
		versions = make(map[string]string, len(opts.Versions))
	}
	maps.Copy(versions, opts.Versions)

	return &domain.BuildContext{
		SourceDir: abs,
		Source:    os.DirFS(abs),
		Options:   domain.NewOptions(dynamicInstall, versions),
	}, nil
}

// annotate attaches the platform name to err. Unsupported version errors already name their platform and
// stay untouched so their message reaches the operator verbatim.
func annotate(err error, platformName string) error {
	var unsupported *domain.UnsupportedVersionError
	if errors.As(err, &unsupported) {
		return err
	}
	return zerr.With(err, "platform", platformName)
}
