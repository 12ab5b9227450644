package app

import (
	"encoding/json"
	"io"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// document is the printed form of a detection: the artifact without its
// bookkeeping fields.
type document struct {
	Domains    []domain.DetectionResult `yaml:"domains" json:"domains"`
	DetectedAt string                   `yaml:"detected_at" json:"detected_at"`
}

func render(w io.Writer, artifact *domain.CacheArtifact, asJSON bool) error {
	doc := document{
		Domains:    artifact.Domains,
		DetectedAt: artifact.DetectedAt,
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, "failed to write JSON output")
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, "failed to write YAML output")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to write YAML output")
	}
	return nil
}
