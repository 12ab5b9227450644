package detector

import (
	"path"
	"strings"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

// fraction is matches/total, or 0 for a signal kind the domain does not use.
func fraction(matches, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total)
}

// matchDirectories counts plain names against top-level directories and
// slash-separated signals against nested paths under the root.
func matchDirectories(p *project, signals []string) float64 {
	matches := 0
	for _, sig := range signals {
		if strings.Contains(sig, "/") {
			if p.scanner.DirExists(p.root, sig) {
				matches++
			}
			continue
		}
		if _, ok := p.layout.Dirs[sig]; ok {
			matches++
		}
	}
	return fraction(matches, len(signals))
}

// matchFiles counts patterns that match at least one nearby file name.
// Malformed patterns never match.
func matchFiles(layout *ports.ProjectLayout, patterns []string) float64 {
	matches := 0
	for _, pattern := range patterns {
		if _, err := path.Match(pattern, ""); err != nil {
			continue
		}
		for name := range layout.Files {
			if ok, _ := path.Match(pattern, name); ok {
				matches++
				break
			}
		}
	}
	return fraction(matches, len(patterns))
}

func matchFrameworks(deps ports.DependencySet, signals []string) float64 {
	matches := 0
	for _, sig := range signals {
		if deps.Has(domain.NormalizeDependency(sig)) {
			matches++
		}
	}
	return fraction(matches, len(signals))
}

// matchKeywords searches the lower-cased source sample. An empty sample
// scores 0 for every keyword.
func matchKeywords(sample string, keywords []string) float64 {
	if sample == "" {
		return 0
	}
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(sample, strings.ToLower(kw)) {
			matches++
		}
	}
	return fraction(matches, len(keywords))
}
