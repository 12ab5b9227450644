package app

import (
	"context"
	"errors"

	"go.trai.ch/intersense/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configures the Watch method.
type WatchOptions struct {
	Root      string
	Catalogue string
	CachePath string
}

// Watch keeps the cache fresh until ctx is cancelled. Every debounced burst of
// changes runs the staleness check, and a stale or missing cache is
// re-detected.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return err
	}
	cachePath := a.cachePath(root, opts.CachePath)

	catalogue, err := a.catalogue.Load(a.cataloguePath(opts.Catalogue))
	if err != nil {
		return zerr.Wrap(err, "failed to load domain catalogue")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching for changes", "root", root)
	a.refresh(ctx, root, cachePath, catalogue, nil)

	// One pending burst is enough: a re-check always looks at the whole tree.
	triggers := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.settings.DebounceWindow, func(paths []string) {
		select {
		case triggers <- paths:
		default:
		}
	})

	g, gctx := errgroup.WithContext(ctx)

	// Event loop
	g.Go(func() error {
		defer cancel()
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Re-check loop
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-triggers:
				a.refresh(gctx, root, cachePath, catalogue, paths)
			}
		}
	})

	return g.Wait()
}

func (a *App) refresh(
	ctx context.Context,
	root, cachePath string,
	catalogue *ports.Catalogue,
	changed []string,
) {
	if len(changed) > 0 {
		a.logger.Debug("changes detected", "paths", changed)
	}

	decision := a.checker.Check(ctx, root, cachePath)
	if decision.Verdict == domain.VerdictFresh {
		a.logger.Debug("cache is fresh", "tier", decision.Tier)
		return
	}

	a.logger.Info("re-detecting domains", "verdict", decision.Verdict.String(), "reason", decision.Reason)

	artifact, err := a.detectAndStore(ctx, root, cachePath, catalogue)
	switch {
	case ctx.Err() != nil:
		return
	case errors.Is(err, domain.ErrNoDomainsDetected):
		a.logger.Warn("no domains detected")
	case err != nil:
		a.logger.Error(err)
	default:
		a.logger.Info("domains updated", "primary", artifact.Domains[0].Name, "count", len(artifact.Domains))
	}
}
