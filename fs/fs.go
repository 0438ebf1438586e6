// Package fs reads source documents from and writes the search index to
// the local filesystem.
package fs

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/docindex"
)

// ValidatePattern rejects patterns that are malformed, absolute, or that
// reach outside the root with "..".
func ValidatePattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return docindex.Errorf(docindex.EINVALID, "invalid pattern: %s", pattern)
	}
	clean := path.Clean(strings.ReplaceAll(pattern, "\\", "/"))
	if path.IsAbs(clean) {
		return docindex.Errorf(docindex.EINVALID, "absolute patterns not allowed: %s", pattern)
	}
	if slices.Contains(strings.Split(clean, "/"), "..") {
		return docindex.Errorf(docindex.EINVALID, "parent directory references not allowed: %s", pattern)
	}
	return nil
}

// matchAny reports whether rel matches any of patterns. Patterns without
// a slash also match against the base name.
func matchAny(patterns []string, rel string) bool {
	base := path.Base(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if strings.Contains(pattern, "/") {
			continue
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// safeJoin joins rel onto root, rejecting paths that escape root.
func safeJoin(root, rel string) (string, error) {
	slashed := strings.ReplaceAll(rel, "\\", "/")
	if slices.Contains(strings.Split(slashed, "/"), "..") {
		return "", docindex.Errorf(docindex.EINVALID, "invalid output path (path traversal): %s", rel)
	}
	clean := path.Clean("/" + slashed)
	if clean == "/" {
		return "", docindex.Errorf(docindex.EINVALID, "output path required")
	}
	return filepath.Join(root, filepath.FromSlash(clean)), nil
}
