package ports

import "go.trai.ch/intersense/internal/core/domain"

// Catalogue is a loaded domain catalogue together with a fingerprint of its source bytes.
type Catalogue struct {
	Domains     []domain.DomainSpec
	Fingerprint string
}

// CatalogueLoader defines the interface for loading the domain catalogue.
//
//go:generate mockgen -source=catalogue.go -destination=mocks/mock_catalogue.go -package=mocks
type CatalogueLoader interface {
	// Load reads and validates the catalogue at path.
	Load(path string) (*Catalogue, error)
}
