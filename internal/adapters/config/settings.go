package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix namespaces the environment variables that override settings.
const EnvPrefix = "INTERSENSE"

// LoadSettings resolves settings from defaults, an optional intersense.yaml in dir,
// and INTERSENSE_* environment variables, in increasing order of precedence.
func LoadSettings(dir string) (*domain.Settings, error) {
	v := viper.New()

	defaults := domain.DefaultSettings()
	v.SetDefault("catalogue", defaults.Catalogue)
	v.SetDefault("git_timeout", defaults.GitTimeout)
	v.SetDefault("keyword_sample_limit", defaults.KeywordSampleLimit)
	v.SetDefault("debounce_window", defaults.DebounceWindow)
	v.SetDefault("weights.directories", defaults.Weights.Directories)
	v.SetDefault("weights.files", defaults.Weights.Files)
	v.SetDefault("weights.frameworks", defaults.Weights.Frameworks)
	v.SetDefault("weights.keywords", defaults.Weights.Keywords)
	v.SetDefault("log_format", defaults.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := filepath.Join(dir, domain.SettingsFileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", path)
		}
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}

	if err := validate(&settings); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}
	return &settings, nil
}

func validate(s *domain.Settings) error {
	if err := s.Weights.Validate(); err != nil {
		return zerr.With(err, "weights", s.Weights)
	}
	if s.KeywordSampleLimit < 0 {
		return zerr.With(zerr.New("keyword_sample_limit must not be negative"), "value", s.KeywordSampleLimit)
	}
	if s.GitTimeout <= 0 {
		return zerr.With(zerr.New("git_timeout must be positive"), "value", s.GitTimeout)
	}
	if s.DebounceWindow <= 0 {
		return zerr.With(zerr.New("debounce_window must be positive"), "value", s.DebounceWindow)
	}
	switch s.LogFormat {
	case domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return zerr.With(zerr.New("log_format must be pretty or json"), "value", s.LogFormat)
	}
	return nil
}
