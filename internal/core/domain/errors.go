package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidProjectPath is returned when the project argument is not an existing directory.
	ErrInvalidProjectPath = zerr.New("invalid project path")

	// ErrCatalogueNotFound is returned when the domain catalogue file does not exist.
	ErrCatalogueNotFound = zerr.New("domain catalogue not found")

	// ErrCatalogueReadFailed is returned when the domain catalogue cannot be read.
	ErrCatalogueReadFailed = zerr.New("failed to read domain catalogue")

	// ErrCatalogueParseFailed is returned when the domain catalogue is not valid YAML.
	ErrCatalogueParseFailed = zerr.New("failed to parse domain catalogue")

	// ErrMissingProfile is returned when a catalogue entry has no profile name.
	ErrMissingProfile = zerr.New("catalogue entry is missing a profile name")

	// ErrInvalidMinConfidence is returned when a catalogue entry's min_confidence is outside [0, 1].
	ErrInvalidMinConfidence = zerr.New("min_confidence must be between 0 and 1")

	// ErrInvalidWeights is returned when signal weights are negative or do not sum to 1.
	ErrInvalidWeights = zerr.New("signal weights must be non-negative and sum to 1")

	// ErrConfigLoadFailed is returned when the settings file or environment cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")

	// ErrCacheMarshalFailed is returned when the cache artifact cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache artifact")

	// ErrCacheWriteFailed is returned when the cache artifact cannot be written atomically.
	ErrCacheWriteFailed = zerr.New("failed to write cache artifact")

	// ErrInvalidTimestamp is returned when detected_at matches none of the accepted layouts.
	ErrInvalidTimestamp = zerr.New("invalid detected_at timestamp")

	// ErrGitCommandFailed is returned when a git invocation exits non-zero.
	ErrGitCommandFailed = zerr.New("git command failed")

	// ErrGitTimeout is returned when a git invocation exceeds its deadline.
	ErrGitTimeout = zerr.New("git command timed out")

	// ErrWatcherStartFailed is returned when the filesystem watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrWatcherNotStarted is returned when the watcher is used before Start.
	ErrWatcherNotStarted = zerr.New("watcher not started")
)

// Outcome sentinels. They are not failures; the CLI maps them to exit codes.
var (
	// ErrNoDomainsDetected is returned when no domain reaches its minimum confidence.
	ErrNoDomainsDetected = zerr.New("no domains detected")

	// ErrCacheStale is returned by a staleness check when the cache must be regenerated.
	ErrCacheStale = zerr.New("cache is stale")

	// ErrNoCache is returned by a staleness check when no usable cache exists.
	ErrNoCache = zerr.New("no cache")
)
