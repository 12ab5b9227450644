package domain

// Verdict is the outcome of a staleness check.
type Verdict int

const (
	// VerdictDefer means a tier could not decide and the next tier should run.
	VerdictDefer Verdict = iota
	// VerdictFresh means the cached detection is still valid.
	VerdictFresh
	// VerdictStale means the cache must be regenerated.
	VerdictStale
	// VerdictNoCache means there is no usable cache artifact.
	VerdictNoCache
)

func (v Verdict) String() string {
	switch v {
	case VerdictFresh:
		return "fresh"
	case VerdictStale:
		return "stale"
	case VerdictNoCache:
		return "no_cache"
	default:
		return "defer"
	}
}

// Err maps a final verdict to its outcome sentinel; Fresh maps to nil.
func (v Verdict) Err() error {
	switch v {
	case VerdictStale:
		return ErrCacheStale
	case VerdictNoCache:
		return ErrNoCache
	default:
		return nil
	}
}

// Decision is a verdict together with the tier that produced it and a short reason.
type Decision struct {
	Verdict Verdict
	Tier    string
	Reason  string
}
