// Package fs provides file system adapters for scanning and hashing projects.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Entry is a file or directory found near a project root.
type Entry struct {
	// Rel is the slash-separated path relative to the root.
	Rel string
	// Name is the base name.
	Name string
	// Dir reports whether the entry (or its symlink target) is a directory.
	Dir bool
	// Depth is 0 for root entries and 1 for entries of a top-level directory.
	Depth int
}

// Walker lists the shallow neighbourhood of a project root.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkShallow yields every root entry, then the entries of each non-hidden top-level
// directory. Names are visited in byte-wise order at both levels. Unreadable
// subdirectories are skipped; an unreadable root is an error.
func (w *Walker) WalkShallow(root string) (iter.Seq[Entry], error) {
	top, err := w.readDir(root, "", 0)
	if err != nil {
		return nil, err
	}

	return func(yield func(Entry) bool) {
		for _, e := range top {
			if !yield(e) {
				return
			}
		}
		for _, dir := range top {
			if !dir.Dir || isHidden(dir.Name) {
				continue
			}
			children, err := w.readDir(filepath.Join(root, dir.Name), dir.Name, 1)
			if err != nil {
				continue
			}
			for _, e := range children {
				if !yield(e) {
					return
				}
			}
		}
	}, nil
}

func (w *Walker) readDir(dir, relDir string, depth int) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, d := range des {
		isDir, ok := resolveKind(dir, d)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Rel:   path.Join(relDir, d.Name()),
			Name:  d.Name(),
			Dir:   isDir,
			Depth: depth,
		})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return entries, nil
}

// resolveKind follows symlinks and reports whether the entry is a directory.
// Entries that are neither regular files nor directories are dropped.
func resolveKind(dir string, d fs.DirEntry) (isDir, ok bool) {
	mode := d.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, d.Name()))
		if err != nil {
			return false, false
		}
		mode = info.Mode()
	}
	switch {
	case mode.IsDir():
		return true, true
	case mode.IsRegular():
		return false, true
	default:
		return false, false
	}
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
