package ports

import "go.trai.ch/intersense/internal/core/domain"

// CacheStore defines the interface for persisting detection results.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Read loads the artifact at path.
	// Returns nil, nil if the file is absent, unparseable or lists no domains.
	Read(path string) (*domain.CacheArtifact, error)

	// Write replaces the artifact at path atomically.
	Write(path string, artifact *domain.CacheArtifact) error
}
