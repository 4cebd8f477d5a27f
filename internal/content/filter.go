package content

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude selects the content files read from a content directory.
var DefaultInclude = []string{"**/*.yaml", "**/*.yml"}

// skipDirs are never descended into when reading a content directory.
var skipDirs = []string{".git", "node_modules", "drafts"}

func shouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	for _, d := range skipDirs {
		if strings.EqualFold(name, d) {
			return true
		}
	}
	return false
}

// matchesInclude reports whether relPath (slash separated) matches any of the
// patterns, either as a whole path or by its base name. An empty pattern list
// falls back to DefaultInclude.
func matchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		patterns = DefaultInclude
	}
	base := path.Base(relPath)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
