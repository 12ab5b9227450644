package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

var _ ports.StructuralHasher = (*Hasher)(nil)

// AbsentSentinel stands in for the digest of a structural file that is missing or unreadable.
const AbsentSentinel = "__absent__"

const hashPrefix = "sha256:"

// Hasher computes the structural hash of a project.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash digests "name:filehash\n" for every structural file in sorted order.
func (h *Hasher) Hash(root string) string {
	var b strings.Builder
	for _, name := range domain.StructuralFiles() {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(h.fileDigest(filepath.Join(root, name)))
		b.WriteByte('\n')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hashPrefix + hex.EncodeToString(sum[:])
}

// ModifiedAfter lists the structural files in root whose modification time is
// strictly later than t. Missing files and non-regular entries are ignored.
func (h *Hasher) ModifiedAfter(root string, t time.Time) []string {
	var newer []string
	for _, name := range domain.StructuralFiles() {
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if info.ModTime().After(t) {
			newer = append(newer, name)
		}
	}
	return newer
}

// fileDigest returns the hex sha256 of a regular file, or AbsentSentinel.
func (h *Hasher) fileDigest(path string) string {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return AbsentSentinel
	}

	f, err := os.Open(path) //nolint:gosec // Path is a fixed structural file name under the project root
	if err != nil {
		return AbsentSentinel
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return AbsentSentinel
	}
	return hex.EncodeToString(digest.Sum(nil))
}
