package walker

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/snipcore/internal/config"
)

// matchesIgnorePattern reports whether relPath (forward-slash separated,
// relative to the walk root) matches any of patterns. Each pattern is
// tried both against the full relative path and against each individual
// path segment, so a bare segment pattern like "node_modules" excludes
// the directory at any depth without requiring "**/node_modules/**"
// (spec.md §6: "matched against path segments and relative paths").
// This replaces the teacher's hand-rolled matchDoubleGlob
// (internal/indexing/pipeline_scanner.go) with the doublestar dependency
// the pack already carries but under-uses for this exact purpose.
func matchesIgnorePattern(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	segments := strings.Split(relPath, "/")

	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
		for _, seg := range segments {
			if ok, _ := doublestar.Match(pattern, seg); ok {
				return true
			}
		}
	}
	return false
}

// matchesOnlyExtensions reports whether path survives the
// only_extensions whitelist. An empty whitelist admits everything
// (spec.md §6: "if non-empty, a file survives only if its extension is
// in the set").
func matchesOnlyExtensions(path string, only []string) bool {
	if len(only) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, o := range only {
		if strings.ToLower(o) == ext {
			return true
		}
	}
	return false
}

// surviveFilters applies both of spec.md §4.3's independent filters.
func surviveFilters(relPath string, cfg config.DirectoryConfig) bool {
	if matchesIgnorePattern(relPath, cfg.IgnorePatterns) {
		return false
	}
	return matchesOnlyExtensions(relPath, cfg.OnlyExtensions)
}
