// Package staleness decides whether a cached detection still describes the
// project, without re-running detection.
package staleness

import (
	"context"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

// VerdictAttribute is the span attribute carrying a check's verdict.
const VerdictAttribute = "verdict"

// Checker runs the staleness cascade: cache presence, override, schema
// version, structural hash, git history and finally modification times.
type Checker struct {
	store   ports.CacheStore
	hasher  ports.StructuralHasher
	history ports.History
	tracer  ports.Tracer
	logger  ports.Logger

	checks []check
}

// NewChecker creates a Checker.
func NewChecker(
	store ports.CacheStore,
	hasher ports.StructuralHasher,
	history ports.History,
	tracer ports.Tracer,
	logger ports.Logger,
) *Checker {
	c := &Checker{
		store:   store,
		hasher:  hasher,
		history: history,
		tracer:  tracer,
		logger:  logger,
	}
	c.checks = []check{
		{tier: TierCache, run: checkPresence},
		{tier: TierOverride, run: checkOverride},
		{tier: TierVersion, run: checkVersion},
		{tier: TierHash, run: c.checkHash},
		{tier: TierGit, run: c.checkHistory},
		{tier: TierMtime, run: c.checkMtime},
	}
	return c
}

// Check reads the artifact at cachePath and evaluates it against root.
// A read failure is treated like a missing artifact.
func (c *Checker) Check(ctx context.Context, root, cachePath string) domain.Decision {
	artifact, err := c.store.Read(cachePath)
	if err != nil {
		c.logger.Debug("cache unreadable, treating as absent", "path", cachePath, "error", err)
		artifact = nil
	}
	return c.Evaluate(ctx, root, artifact)
}

// Evaluate runs the cascade over an already loaded artifact, stopping at the
// first check that returns a verdict.
func (c *Checker) Evaluate(ctx context.Context, root string, artifact *domain.CacheArtifact) domain.Decision {
	ctx, span := c.tracer.Start(ctx, "staleness.check", ports.WithAttribute("root", root))
	defer span.End()

	in := &input{root: root, artifact: artifact}

	decision := domain.Decision{Verdict: domain.VerdictFresh, Tier: TierMtime}
	for _, chk := range c.checks {
		d := c.runCheck(ctx, chk, in)
		if d.Verdict != domain.VerdictDefer {
			decision = d
			break
		}
	}

	span.SetAttribute("tier", decision.Tier)
	span.SetAttribute(VerdictAttribute, decision.Verdict)
	c.logger.Debug("staleness decided",
		"verdict", decision.Verdict.String(),
		"tier", decision.Tier,
		"reason", decision.Reason,
	)

	return decision
}

func (c *Checker) runCheck(ctx context.Context, chk check, in *input) domain.Decision {
	ctx, span := c.tracer.Start(ctx, "staleness.tier."+chk.tier)
	defer span.End()

	d := chk.run(ctx, in, span)
	if d.Reason != "" {
		span.SetAttribute("reason", d.Reason)
	}
	span.SetAttribute(VerdictAttribute, d.Verdict)

	return d
}
