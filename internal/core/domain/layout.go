package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-project metadata directory.
	StateDirName = ".intersense"

	// CacheFileName is the name of the cached detection result.
	CacheFileName = "domains.yaml"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "intersense.yaml"

	// DefaultCatalogueFile is the catalogue path used when none is configured.
	DefaultCatalogueFile = "domains/index.yaml"

	// GitDirName marks the root of a git work tree.
	GitDirName = ".git"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the cache artifact location for a project root.
// It joins the root, .intersense and domains.yaml.
func DefaultCachePath(root string) string {
	return filepath.Join(root, StateDirName, CacheFileName)
}

// DefaultCataloguePath returns the default catalogue location relative to the working directory.
func DefaultCataloguePath() string {
	return filepath.FromSlash(DefaultCatalogueFile)
}
