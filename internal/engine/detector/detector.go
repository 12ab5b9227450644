// Package detector scores a project against the domain catalogue.
package detector

import (
	"context"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

// Detector gathers signals once per project and scores every catalogue entry.
type Detector struct {
	scanner     ports.ProjectScanner
	extractor   ports.DependencyExtractor
	tracer      ports.Tracer
	logger      ports.Logger
	weights     domain.Weights
	sampleLimit int
}

// New creates a Detector. Weights and the keyword sample limit come from settings.
func New(
	scanner ports.ProjectScanner,
	extractor ports.DependencyExtractor,
	tracer ports.Tracer,
	logger ports.Logger,
	settings domain.Settings,
) *Detector {
	return &Detector{
		scanner:     scanner,
		extractor:   extractor,
		tracer:      tracer,
		logger:      logger,
		weights:     settings.Weights,
		sampleLimit: settings.KeywordSampleLimit,
	}
}

// project is the per-run view of the tree shared by all domains. The source
// sample is read on first use, since the shortcut often makes it unnecessary.
type project struct {
	root    string
	scanner ports.ProjectScanner
	layout  *ports.ProjectLayout
	deps    ports.DependencySet
	limit   int

	sampled bool
	sample  string
}

func (p *project) keywordSample() string {
	if !p.sampled {
		p.sample = p.scanner.SampleSources(p.root, p.limit)
		p.sampled = true
	}
	return p.sample
}

// Detect returns the domains whose confidence reaches their threshold, ranked
// by descending confidence with the first marked primary.
func (d *Detector) Detect(ctx context.Context, root string, specs []domain.DomainSpec) ([]domain.DetectionResult, error) {
	ctx, span := d.tracer.Start(ctx, "detect", ports.WithAttribute("domains", len(specs)))
	defer span.End()

	layout, err := d.scanner.Layout(root)
	if err != nil {
		d.logger.Debug("project listing failed, directory and file signals are empty", "error", err)
		layout = &ports.ProjectLayout{Dirs: map[string]struct{}{}, Files: map[string]struct{}{}}
	}

	p := &project{
		root:    root,
		scanner: d.scanner,
		layout:  layout,
		deps:    d.extractor.Extract(root),
		limit:   d.sampleLimit,
	}

	results := make([]domain.DetectionResult, 0, len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return nil, err
		}

		score := d.score(p, spec)
		confidence := score.Confidence(d.weights)
		d.traceDomain(ctx, spec, score, confidence)

		if confidence >= spec.MinConfidence {
			results = append(results, domain.DetectionResult{
				Name:       spec.Profile,
				Confidence: domain.RoundConfidence(confidence),
			})
		}
	}

	span.SetAttribute("detected", len(results))
	return domain.RankResults(results), nil
}

// score gathers the four signal fractions. Keywords are skipped when the
// structural signals alone already reach the domain's threshold.
func (d *Detector) score(p *project, spec domain.DomainSpec) domain.SignalScore {
	score := domain.SignalScore{
		Directories: matchDirectories(p, spec.Signals.Directories),
		Files:       matchFiles(p.layout, spec.Signals.Files),
		Frameworks:  matchFrameworks(p.deps, spec.Signals.Frameworks),
	}

	if score.Preliminary(d.weights) >= spec.MinConfidence {
		score.KeywordsSkipped = true
		return score
	}
	if len(spec.Signals.Keywords) > 0 {
		score.Keywords = matchKeywords(p.keywordSample(), spec.Signals.Keywords)
	}
	return score
}

func (d *Detector) traceDomain(ctx context.Context, spec domain.DomainSpec, score domain.SignalScore, confidence float64) {
	_, span := d.tracer.Start(ctx, "detect.domain",
		ports.WithAttribute("profile", spec.Profile),
	)
	span.SetAttribute("directories", score.Directories)
	span.SetAttribute("files", score.Files)
	span.SetAttribute("frameworks", score.Frameworks)
	span.SetAttribute("keywords", score.Keywords)
	span.SetAttribute("keywords_skipped", score.KeywordsSkipped)
	span.SetAttribute("confidence", domain.RoundConfidence(confidence))
	span.SetAttribute("min_confidence", spec.MinConfidence)
	span.End()

	d.logger.Debug("scored domain",
		"profile", spec.Profile,
		"confidence", confidence,
		"keywords_skipped", score.KeywordsSkipped,
	)
}
