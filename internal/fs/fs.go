// Package fs provides the filesystem seam for jsoncheck and the candidate
// filter that decides which paths are handed to the checker.
package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// FS is the subset of filesystem operations the checker needs.
type FS interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (os.FileInfo, error)
}

// RealFS implements FS on the host filesystem.
type RealFS struct{}

// NewRealFS returns the host filesystem.
func NewRealFS() RealFS {
	return RealFS{}
}

func (RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat follows symlinks, so a link to a regular file counts as a regular file.
func (RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Filter selects candidate paths.
type Filter struct {
	// Extensions lists accepted extensions including the dot, e.g. ".json".
	// Matching is case-sensitive.
	Extensions []string

	// Exclude lists filepath.Match globs, tried against the whole path and the
	// base name, or directories whose contents are skipped.
	Exclude []string
}

// IsCandidate reports whether path is an existing regular file with an
// accepted extension that is not excluded. Stat failures mean "not a candidate".
func IsCandidate(fsys FS, path string, f Filter) bool {
	if path == "" || !f.hasExtension(path) || f.Excluded(path) {
		return false
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func (f Filter) hasExtension(path string) bool {
	ext := Extension(path)
	if ext == "" {
		return false
	}
	for _, want := range f.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// Excluded reports whether path matches any exclude entry.
func (f Filter) Excluded(path string) bool {
	clean := filepath.Clean(path)
	base := filepath.Base(clean)
	for _, pattern := range f.Exclude {
		if ok, _ := filepath.Match(pattern, clean); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if IsSubpath(clean, filepath.Clean(pattern)) {
			return true
		}
	}
	return false
}

// Extension returns the extension of the final path element including the
// dot. A dotfile such as ".json" has no extension.
func Extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}

// IsSubpath returns true if target is a proper subpath of prefix.
// Both paths should already be cleaned.
// Returns false if target equals prefix or is outside prefix.
func IsSubpath(target, prefix string) bool {
	prefixWithSep := prefix
	if !strings.HasSuffix(prefixWithSep, string(filepath.Separator)) {
		prefixWithSep = prefix + string(filepath.Separator)
	}
	return strings.HasPrefix(target, prefixWithSep) && len(target) > len(prefix)
}
