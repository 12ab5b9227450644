package staleness

import (
	"context"
	"fmt"
	"path"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

// Tier names reported in decisions and trace spans.
const (
	TierCache    = "cache"
	TierOverride = "override"
	TierVersion  = "version"
	TierHash     = "hash"
	TierGit      = "git"
	TierMtime    = "mtime"
)

// input is what every check sees. The artifact is nil when none could be read.
type input struct {
	root     string
	artifact *domain.CacheArtifact
}

// check returns a verdict, or VerdictDefer to hand over to the next check.
type check struct {
	tier string
	run  func(ctx context.Context, in *input, span ports.Span) domain.Decision
}

func decide(tier string, v domain.Verdict, reason string) domain.Decision {
	return domain.Decision{Verdict: v, Tier: tier, Reason: reason}
}

func checkPresence(_ context.Context, in *input, _ ports.Span) domain.Decision {
	if in.artifact == nil {
		return decide(TierCache, domain.VerdictNoCache, "no readable cache artifact")
	}
	return decide(TierCache, domain.VerdictDefer, "")
}

func checkOverride(_ context.Context, in *input, _ ports.Span) domain.Decision {
	if in.artifact.Override {
		return decide(TierOverride, domain.VerdictFresh, "override is set")
	}
	return decide(TierOverride, domain.VerdictDefer, "")
}

func checkVersion(_ context.Context, in *input, span ports.Span) domain.Decision {
	if raw := in.artifact.RawVersion; raw != "" {
		span.SetAttribute("stored", raw)
		span.SetAttribute("current", domain.CacheVersion)
		return decide(TierVersion, domain.VerdictStale, fmt.Sprintf("cache_version %q is not an integer", raw))
	}
	span.SetAttribute("stored", in.artifact.CacheVersion)
	span.SetAttribute("current", domain.CacheVersion)

	switch v := in.artifact.CacheVersion; {
	case v == domain.CacheVersion:
		return decide(TierVersion, domain.VerdictDefer, "")
	case v < domain.CacheVersion:
		return decide(TierVersion, domain.VerdictStale, fmt.Sprintf("cache_version %d is older than %d", v, domain.CacheVersion))
	default:
		return decide(TierVersion, domain.VerdictStale, fmt.Sprintf("cache_version %d is newer than %d", v, domain.CacheVersion))
	}
}

func (c *Checker) checkHash(_ context.Context, in *input, span ports.Span) domain.Decision {
	stored := in.artifact.StructuralHash
	if stored == "" {
		return decide(TierHash, domain.VerdictDefer, "no stored structural hash")
	}

	current := c.hasher.Hash(in.root)
	span.SetAttribute("stored", stored)
	span.SetAttribute("current", current)

	if current == stored {
		return decide(TierHash, domain.VerdictFresh, "structural hash unchanged")
	}
	return decide(TierHash, domain.VerdictStale, "structural hash changed")
}

func (c *Checker) checkHistory(ctx context.Context, in *input, span ports.Span) domain.Decision {
	if !c.history.IsRepository(in.root) {
		return decide(TierGit, domain.VerdictDefer, "not a git repository")
	}

	shallow, err := c.history.IsShallow(ctx, in.root)
	if err != nil {
		c.logger.Debug("shallow probe failed, continuing with history", "error", err)
	} else if shallow {
		return decide(TierGit, domain.VerdictDefer, "shallow clone")
	}

	since, err := domain.ParseDetectedAt(in.artifact.DetectedAt)
	if err != nil {
		return decide(TierGit, domain.VerdictStale, "unparseable detected_at")
	}
	span.SetAttribute("since", domain.FormatDetectedAt(since))

	changed, err := c.history.ChangedSince(ctx, in.root, since)
	if err != nil {
		span.RecordError(err)
		c.logger.Debug("git log failed, falling back to modification times", "error", err)
		return decide(TierGit, domain.VerdictDefer, "git log failed")
	}
	span.SetAttribute("changed", len(changed))

	var triggers []string
	for _, p := range changed {
		if domain.IsStructuralPath(p) {
			triggers = append(triggers, p)
		}
	}

	renames, err := c.history.RenamedSince(ctx, in.root, since)
	if err != nil {
		c.logger.Debug("rename query failed, ignoring renames", "error", err)
	}
	for _, r := range renames {
		if domain.IsStructuralName(path.Base(r.From)) != domain.IsStructuralName(path.Base(r.To)) {
			triggers = append(triggers, r.From+" -> "+r.To)
		}
	}

	if len(triggers) > 0 {
		span.SetAttribute("triggers", triggers)
		return decide(TierGit, domain.VerdictStale, "structural change: "+triggers[0])
	}
	return decide(TierGit, domain.VerdictFresh, "no structural changes committed")
}

func (c *Checker) checkMtime(_ context.Context, in *input, span ports.Span) domain.Decision {
	since, err := domain.ParseDetectedAt(in.artifact.DetectedAt)
	if err != nil {
		return decide(TierMtime, domain.VerdictStale, "unparseable detected_at")
	}
	span.SetAttribute("since", domain.FormatDetectedAt(since))

	if newer := c.hasher.ModifiedAfter(in.root, since); len(newer) > 0 {
		span.SetAttribute("newer", newer)
		return decide(TierMtime, domain.VerdictStale, newer[0]+" modified after detection")
	}
	return decide(TierMtime, domain.VerdictFresh, "no structural file modified after detection")
}
