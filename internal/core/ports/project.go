package ports

import "time"

//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks

// DependencySet is a set of normalised dependency names.
type DependencySet map[string]struct{}

// Has reports whether name is in the set.
func (s DependencySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// DependencyExtractor collects dependency names from a project's build manifests.
type DependencyExtractor interface {
	// Extract returns the union of dependencies declared by every recognised manifest under root.
	// Missing or malformed manifests contribute nothing.
	Extract(root string) DependencySet
}

// ProjectLayout is the shallow view of a project that directory and file signals are matched against.
type ProjectLayout struct {
	// Dirs holds the names of top-level directories.
	Dirs map[string]struct{}
	// Files holds the names of regular files in the root and one level into non-hidden subdirectories.
	Files map[string]struct{}
}

// ProjectScanner reads the parts of a project tree that detection needs.
type ProjectScanner interface {
	// Layout lists top-level directories and nearby file names.
	Layout(root string) (*ProjectLayout, error)
	// DirExists reports whether the slash-separated relative path is a directory under root.
	DirExists(root, rel string) bool
	// SampleSources returns the lower-cased text of up to limit source files, sampled breadth-first.
	SampleSources(root string, limit int) string
}

// StructuralHasher fingerprints the files whose change invalidates a detection.
type StructuralHasher interface {
	// Hash returns "sha256:<hex>" over the structural file set of root.
	// Missing or unreadable files hash as a fixed sentinel.
	Hash(root string) string
	// ModifiedAfter lists structural files in root modified strictly after t.
	ModifiedAfter(root string, t time.Time) []string
}
