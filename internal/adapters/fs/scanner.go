package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectScanner = (*Scanner)(nil)

// sourceExtensions are the file types sampled for keyword signals.
var sourceExtensions = []string{
	".c", ".cpp", ".dart", ".gd", ".go", ".h", ".java", ".js", ".kt", ".py", ".rs", ".swift", ".ts",
}

// Scanner implements ports.ProjectScanner on top of a Walker.
type Scanner struct {
	walker *Walker
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Layout collects top-level directory names and the names of files in the root
// and one level into non-hidden directories.
func (s *Scanner) Layout(root string) (*ports.ProjectLayout, error) {
	entries, err := s.walker.WalkShallow(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list project"), "path", root)
	}

	layout := &ports.ProjectLayout{
		Dirs:  make(map[string]struct{}),
		Files: make(map[string]struct{}),
	}
	for e := range entries {
		switch {
		case e.Dir && e.Depth == 0:
			layout.Dirs[e.Name] = struct{}{}
		case !e.Dir:
			layout.Files[e.Name] = struct{}{}
		}
	}
	return layout, nil
}

// DirExists reports whether rel names a directory under root.
func (s *Scanner) DirExists(root, rel string) bool {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil && info.IsDir()
}

// SampleSources concatenates up to limit source files, newline-terminated, and lower-cases the result.
// Invalid UTF-8 is dropped and unreadable files are skipped.
func (s *Scanner) SampleSources(root string, limit int) string {
	if limit <= 0 {
		return ""
	}
	entries, err := s.walker.WalkShallow(root)
	if err != nil {
		return ""
	}

	var sampled []string
	for e := range entries {
		if e.Dir || !slices.Contains(sourceExtensions, filepath.Ext(e.Name)) {
			continue
		}
		sampled = append(sampled, e.Rel)
		if len(sampled) == limit {
			break
		}
	}

	var b strings.Builder
	for _, rel := range sampled {
		//nolint:gosec // Paths come from listing the project root.
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			continue
		}
		b.WriteString(strings.ToValidUTF8(string(data), ""))
		b.WriteByte('\n')
	}
	return strings.ToLower(b.String())
}
