// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the color profile to use for interactive environments.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it detects the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// IsTerminal reports whether w is a file attached to a terminal.
// Writers that are not files report false.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// ProfileFor returns Ascii for files that are not terminals (pipes, redirects)
// and ColorProfile otherwise.
func ProfileFor(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && !IsTerminal(f) {
		return termenv.Ascii
	}
	return ColorProfile()
}

// New creates a new termenv.Output whose profile follows ProfileFor.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ProfileFor(w)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
