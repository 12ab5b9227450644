// Package manifest extracts dependency names from build manifests.
package manifest

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

// Parser returns the raw dependency names declared in a manifest's contents.
type Parser func(data []byte) ([]string, error)

// DefaultParsers maps each recognised manifest file name to its parser.
func DefaultParsers() map[string]Parser {
	return map[string]Parser{
		"Cargo.toml":       parseCargo,
		"go.mod":           parseGoMod,
		"package.json":     parsePackageJSON,
		"pyproject.toml":   parsePyProject,
		"requirements.txt": parseRequirements,
	}
}

// Extractor implements ports.DependencyExtractor over a set of manifest parsers.
type Extractor struct {
	parsers map[string]Parser
	logger  ports.Logger
}

// New creates an Extractor for the default manifest formats.
func New(logger ports.Logger) *Extractor {
	return NewWithParsers(logger, DefaultParsers())
}

// NewWithParsers creates an Extractor for an explicit file name to parser map.
func NewWithParsers(logger ports.Logger, parsers map[string]Parser) *Extractor {
	return &Extractor{parsers: parsers, logger: logger}
}

// Extract returns the normalised union of every manifest's dependencies.
func (e *Extractor) Extract(root string) ports.DependencySet {
	deps := make(ports.DependencySet)
	for _, name := range slices.Sorted(maps.Keys(e.parsers)) {
		//nolint:gosec // Manifest names are fixed; root is the project under inspection.
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				e.logger.Debug("skipping unreadable manifest", "manifest", name, "error", err)
			}
			continue
		}

		names, err := e.parsers[name](data)
		if err != nil {
			e.logger.Debug("skipping malformed manifest", "manifest", name, "error", err)
			continue
		}

		for _, n := range names {
			if norm := domain.NormalizeDependency(n); norm != "" {
				deps[norm] = struct{}{}
			}
		}
	}
	return deps
}

// requirementName strips a version specifier, extras or environment marker from a PEP 508 requirement.
func requirementName(req string) string {
	if i := strings.IndexAny(req, "><=![; "); i >= 0 {
		req = req[:i]
	}
	return strings.TrimSpace(req)
}
