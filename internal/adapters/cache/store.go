// Package cache persists detection results as a versioned YAML artifact.
package cache

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.CacheStore = (*Store)(nil)

// Header is written above the YAML document of every artifact.
const Header = "# Auto-detected by intersense. Edit to override.\n"

// Store implements ports.CacheStore with one YAML file per project.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// rawArtifact is the on-disk shape read back. Everything except domains is
// decoded loosely so a hand-edited field of the wrong type reaches the
// staleness cascade instead of discarding the artifact.
type rawArtifact struct {
	CacheVersion   yaml.Node                `yaml:"cache_version"`
	Domains        []domain.DetectionResult `yaml:"domains"`
	DetectedAt     yaml.Node                `yaml:"detected_at"`
	StructuralHash yaml.Node                `yaml:"structural_hash"`
	CatalogueHash  yaml.Node                `yaml:"catalogue_hash"`
	Override       yaml.Node                `yaml:"override"`
}

// Read loads the artifact at path. Absent files, YAML that does not parse and
// artifacts without domains yield nil, nil. Other I/O failures are returned.
func (s *Store) Read(path string) (*domain.CacheArtifact, error) {
	//nolint:gosec // Path is the configured cache location
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache artifact"), "path", path)
	}

	var raw rawArtifact
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil
	}
	if len(raw.Domains) == 0 {
		return nil, nil
	}

	artifact := &domain.CacheArtifact{
		Domains:        raw.Domains,
		DetectedAt:     scalar(&raw.DetectedAt),
		StructuralHash: scalar(&raw.StructuralHash),
		CatalogueHash:  scalar(&raw.CatalogueHash),
		Override:       truthy(&raw.Override),
	}
	decodeVersion(&raw.CacheVersion, artifact)
	return artifact, nil
}

// decodeVersion leaves CacheVersion at zero for an absent or null version and
// records anything that is not an integer in RawVersion.
func decodeVersion(n *yaml.Node, artifact *domain.CacheArtifact) {
	if n.Kind == 0 {
		return
	}

	var v int
	if err := n.Decode(&v); err != nil {
		artifact.RawVersion = n.Value
		if artifact.RawVersion == "" {
			artifact.RawVersion = n.ShortTag()
		}
		return
	}
	artifact.CacheVersion = v
}

func scalar(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return ""
	}
	return n.Value
}

// truthy follows YAML booleans, then treats non-zero numbers and non-empty
// strings or collections as set.
func truthy(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.ScalarNode:
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
		switch n.ShortTag() {
		case "!!null":
			return false
		case "!!int", "!!float":
			var f float64
			return n.Decode(&f) == nil && f != 0
		}
		return n.Value != ""
	case yaml.SequenceNode, yaml.MappingNode:
		return len(n.Content) > 0
	case yaml.AliasNode:
		return n.Alias != nil && truthy(n.Alias)
	}
	return false
}

// Write marshals the artifact and atomically replaces path with it.
// On failure the previous artifact is left untouched.
func (s *Store) Write(path string, artifact *domain.CacheArtifact) error {
	data, err := marshal(artifact)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := writeAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	return nil
}

func marshal(artifact *domain.CacheArtifact) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(artifact); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAtomic writes data to a temp file beside path, syncs it and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp cache file")
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write temp cache file")
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to sync temp cache file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp cache file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set cache file permissions")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp cache file")
	}
	return nil
}
