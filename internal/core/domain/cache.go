package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// CacheVersion is the artifact schema version this build reads and writes.
const CacheVersion = 1

// CacheArtifact is the persisted detection result.
type CacheArtifact struct {
	CacheVersion   int               `yaml:"cache_version"`
	Domains        []DetectionResult `yaml:"domains"`
	DetectedAt     string            `yaml:"detected_at"`
	StructuralHash string            `yaml:"structural_hash,omitempty"`
	CatalogueHash  string            `yaml:"catalogue_hash,omitempty"`
	Override       bool              `yaml:"override,omitempty"`

	// RawVersion holds a stored cache_version that is not an integer.
	// CacheVersion is zero whenever it is set.
	RawVersion string `yaml:"-"`
}

var detectedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// FormatDetectedAt renders t the way new artifacts store it.
func FormatDetectedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseDetectedAt parses an artifact timestamp. Values without a zone are taken as UTC.
func ParseDetectedAt(s string) (time.Time, error) {
	for _, layout := range detectedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, zerr.With(ErrInvalidTimestamp, "detected_at", s)
}
