package domain

import (
	"path"
	"slices"
)

// structuralFiles is kept sorted; the structural hash iterates it in this order.
var structuralFiles = []string{
	"CMakeLists.txt",
	"Cargo.toml",
	"Gemfile",
	"Makefile",
	"build.gradle",
	"build.gradle.kts",
	"go.mod",
	"package.json",
	"pom.xml",
	"project.godot",
	"pyproject.toml",
	"requirements.txt",
}

var structuralExtensions = []string{".gd", ".tscn", ".unity", ".uproject"}

// StructuralFiles returns the byte-wise sorted list of files whose change invalidates a detection.
func StructuralFiles() []string {
	return slices.Clone(structuralFiles)
}

// IsStructuralName reports whether a base name is one of the structural files.
func IsStructuralName(name string) bool {
	_, found := slices.BinarySearch(structuralFiles, name)
	return found
}

// IsStructuralPath reports whether a slash-separated repository path is structural,
// either by base name or by extension. Both comparisons are case-sensitive.
func IsStructuralPath(p string) bool {
	base := path.Base(p)
	if IsStructuralName(base) {
		return true
	}
	return slices.Contains(structuralExtensions, path.Ext(base))
}
