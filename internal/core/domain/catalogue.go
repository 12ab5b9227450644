package domain

import "strings"

const (
	// DefaultMinConfidence applies to catalogue entries that omit min_confidence.
	DefaultMinConfidence = 0.3

	// DefaultKeywordSampleLimit is the number of source files searched for keywords.
	DefaultKeywordSampleLimit = 5
)

// Signals lists the evidence a domain is recognised by.
type Signals struct {
	// Directories are top-level directory names, or nested paths when they contain a slash.
	Directories []string
	// Files are glob patterns matched against file names near the project root.
	Files []string
	// Frameworks are dependency names looked up in the project's build manifests.
	Frameworks []string
	// Keywords are case-insensitive substrings searched for in sampled source files.
	Keywords []string
}

// DomainSpec is one catalogue entry.
type DomainSpec struct {
	Profile       string
	MinConfidence float64
	Signals       Signals
}

// NormalizeDependency folds a dependency or framework name for comparison:
// lower-cased, with hyphens and underscores removed.
func NormalizeDependency(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "").Replace(name)
}
