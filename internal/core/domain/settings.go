package domain

import "time"

const (
	// DefaultGitTimeout bounds each git invocation.
	DefaultGitTimeout = 5 * time.Second

	// DefaultDebounceWindow is the quiet period watch mode waits for before re-checking.
	DefaultDebounceWindow = 250 * time.Millisecond

	// LogFormatPretty renders log records for a terminal.
	LogFormatPretty = "pretty"
	// LogFormatJSON renders one JSON object per log record.
	LogFormatJSON = "json"
)

// Settings are the tunables read from the settings file and environment.
type Settings struct {
	// Catalogue is the path of the domain catalogue.
	Catalogue string `mapstructure:"catalogue"`
	// GitTimeout bounds each git invocation in the history tier.
	GitTimeout time.Duration `mapstructure:"git_timeout"`
	// KeywordSampleLimit caps the number of source files searched for keywords.
	KeywordSampleLimit int `mapstructure:"keyword_sample_limit"`
	// DebounceWindow is the quiet period watch mode waits for before re-checking.
	DebounceWindow time.Duration `mapstructure:"debounce_window"`
	// Weights are the signal weights used by the scorer.
	Weights Weights `mapstructure:"weights"`
	// LogFormat is either LogFormatPretty or LogFormatJSON.
	LogFormat string `mapstructure:"log_format"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Catalogue:          DefaultCataloguePath(),
		GitTimeout:         DefaultGitTimeout,
		KeywordSampleLimit: DefaultKeywordSampleLimit,
		DebounceWindow:     DefaultDebounceWindow,
		Weights:            DefaultWeights(),
		LogFormat:          LogFormatPretty,
	}
}
