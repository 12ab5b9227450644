// Package app implements the application layer for intersense.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/intersense/internal/engine/detector"
	"go.trai.ch/intersense/internal/engine/staleness"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	catalogue ports.CatalogueLoader
	store     ports.CacheStore
	hasher    ports.StructuralHasher
	detector  *detector.Detector
	checker   *staleness.Checker
	watcher   ports.Watcher
	logger    ports.Logger
	tracer    ports.Tracer
	settings  domain.Settings
	now       func() time.Time
}

// New creates a new App instance.
func New(
	catalogue ports.CatalogueLoader,
	store ports.CacheStore,
	hasher ports.StructuralHasher,
	det *detector.Detector,
	checker *staleness.Checker,
	watcher ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
	settings domain.Settings,
) *App {
	a := &App{
		catalogue: catalogue,
		store:     store,
		hasher:    hasher,
		detector:  det,
		checker:   checker,
		watcher:   watcher,
		logger:    log,
		tracer:    tracer,
		settings:  settings,
		now:       time.Now,
	}
	a.applyLogFormat()
	return a
}

func (a *App) applyLogFormat() {
	type jsonSwitcher interface{ SetJSON(bool) }

	if j, ok := a.logger.(jsonSwitcher); ok {
		j.SetJSON(a.settings.LogFormat == domain.LogFormatJSON)
	}
}

// WithClock replaces the clock used to stamp new artifacts.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// SetVerbose enables debug logging and the staleness trace.
func (a *App) SetVerbose(verbose bool) {
	type verboser interface{ SetVerbose(bool) }

	if v, ok := a.logger.(verboser); ok {
		v.SetVerbose(verbose)
	}
	if v, ok := a.tracer.(verboser); ok {
		v.SetVerbose(verbose)
	}
}

// DetectOptions configures the Detect method.
type DetectOptions struct {
	// Root is the project directory. Empty means the working directory.
	Root string
	// Catalogue overrides the configured catalogue path.
	Catalogue string
	// CachePath overrides <root>/.intersense/domains.yaml.
	CachePath string
	// NoCache re-runs detection even when a cache exists, unless it is overridden.
	NoCache bool
	// JSON renders indented JSON instead of YAML.
	JSON bool
}

// Detect prints the project's domains to out. A readable cache is printed as
// is; otherwise detection runs and its result is cached. It returns
// domain.ErrNoDomainsDetected when no domain reaches its threshold.
func (a *App) Detect(ctx context.Context, out io.Writer, opts DetectOptions) error {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return err
	}
	cachePath := a.cachePath(root, opts.CachePath)

	catalogue, err := a.catalogue.Load(a.cataloguePath(opts.Catalogue))
	if err != nil {
		return zerr.Wrap(err, "failed to load domain catalogue")
	}

	if cached := a.readCache(cachePath); cached != nil {
		if cached.CatalogueHash != "" && cached.CatalogueHash != catalogue.Fingerprint {
			a.logger.Debug("catalogue changed since detection",
				"stored", cached.CatalogueHash,
				"current", catalogue.Fingerprint,
			)
		}

		switch {
		case !opts.NoCache:
			a.logger.Debug("using cached detection", "path", cachePath)
			return render(out, cached, opts.JSON)
		case cached.Override:
			a.logger.Debug("cache is overridden, ignoring --no-cache", "path", cachePath)
			return render(out, cached, opts.JSON)
		}
	}

	artifact, err := a.detectAndStore(ctx, root, cachePath, catalogue)
	if err != nil {
		return err
	}
	return render(out, artifact, opts.JSON)
}

// CheckOptions configures the CheckStale method.
type CheckOptions struct {
	Root      string
	CachePath string
}

// CheckStale runs the staleness cascade against the cache without detecting.
// It returns nil when fresh, domain.ErrCacheStale or domain.ErrNoCache otherwise.
func (a *App) CheckStale(ctx context.Context, opts CheckOptions) error {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return err
	}

	decision := a.checker.Check(ctx, root, a.cachePath(root, opts.CachePath))
	return decision.Verdict.Err()
}

func (a *App) detectAndStore(
	ctx context.Context,
	root, cachePath string,
	catalogue *ports.Catalogue,
) (*domain.CacheArtifact, error) {
	results, err := a.detector.Detect(ctx, root, catalogue.Domains)
	if err != nil {
		return nil, zerr.Wrap(err, "detection failed")
	}
	if len(results) == 0 {
		return nil, domain.ErrNoDomainsDetected
	}

	artifact := &domain.CacheArtifact{
		CacheVersion:   domain.CacheVersion,
		Domains:        results,
		DetectedAt:     domain.FormatDetectedAt(a.now()),
		StructuralHash: a.hasher.Hash(root),
		CatalogueHash:  catalogue.Fingerprint,
	}
	if err := a.store.Write(cachePath, artifact); err != nil {
		return nil, err
	}

	a.logger.Debug("cache written", "path", cachePath, "domains", len(results))
	return artifact, nil
}

func (a *App) readCache(path string) *domain.CacheArtifact {
	artifact, err := a.store.Read(path)
	if err != nil {
		a.logger.Debug("cache unreadable, treating as absent", "path", path, "error", err)
		return nil
	}
	return artifact
}

func (a *App) cachePath(root, override string) string {
	if override == "" {
		return domain.DefaultCachePath(root)
	}
	if abs, err := filepath.Abs(override); err == nil {
		return abs
	}
	return override
}

func (a *App) cataloguePath(override string) string {
	if override != "" {
		return override
	}
	return a.settings.Catalogue
}

// resolveRoot returns the absolute project directory, or ErrInvalidProjectPath.
func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidProjectPath.Error()), "path", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidProjectPath.Error()), "path", abs)
	}
	if !info.IsDir() {
		return "", zerr.With(domain.ErrInvalidProjectPath, "path", abs)
	}
	return abs, nil
}
