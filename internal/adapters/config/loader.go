// Package config loads the domain catalogue and the tool settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.CatalogueLoader = (*Loader)(nil)

// Loader implements ports.CatalogueLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the catalogue at path and converts it into domain specs in file order.
func (l *Loader) Load(path string) (*ports.Catalogue, error) {
	//nolint:gosec // Path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrCatalogueNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogueReadFailed.Error()), "path", path)
	}

	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogueParseFailed.Error()), "path", path)
	}
	if file.Domains == nil {
		return nil, zerr.With(zerr.With(domain.ErrCatalogueParseFailed, "reason", "missing domains key"), "path", path)
	}

	specs := make([]domain.DomainSpec, 0, len(*file.Domains))
	for i, dto := range *file.Domains {
		spec, err := toDomainSpec(dto)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "index", i), "path", path)
		}
		specs = append(specs, spec)
	}

	l.Logger.Debug("loaded domain catalogue", "path", path, "domains", len(specs))

	return &ports.Catalogue{
		Domains:     specs,
		Fingerprint: Fingerprint(data),
	}, nil
}

// Fingerprint returns the xxhash64 of the catalogue bytes as 16 hex digits.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func toDomainSpec(dto domainDTO) (domain.DomainSpec, error) {
	if dto.Profile == "" {
		return domain.DomainSpec{}, domain.ErrMissingProfile
	}

	minConfidence := domain.DefaultMinConfidence
	if dto.MinConfidence != nil {
		minConfidence = *dto.MinConfidence
	}
	if minConfidence < 0 || minConfidence > 1 {
		return domain.DomainSpec{}, zerr.With(domain.ErrInvalidMinConfidence, "profile", dto.Profile)
	}

	return domain.DomainSpec{
		Profile:       dto.Profile,
		MinConfidence: minConfidence,
		Signals: domain.Signals{
			Directories: dto.Signals.Directories,
			Files:       dto.Signals.Files,
			Frameworks:  dto.Signals.Frameworks,
			Keywords:    dto.Signals.Keywords,
		},
	}, nil
}
