package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobPattern is a comma-separated list of doublestar patterns.
// Patterns starting with '!' are negative and veto a positive match.
type GlobPattern struct {
	positivePatterns []string
	negativePatterns []string
}

// ParseGlobPattern splits globPattern on commas and validates every element
func ParseGlobPattern(globPattern string) (*GlobPattern, error) {
	gp := &GlobPattern{}

	for _, pattern := range strings.Split(globPattern, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		negative := strings.HasPrefix(pattern, "!")
		pattern = strings.TrimPrefix(pattern, "!")
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern '%s'", pattern)
		}
		if negative {
			gp.negativePatterns = append(gp.negativePatterns, pattern)
		} else {
			gp.positivePatterns = append(gp.positivePatterns, pattern)
		}
	}

	return gp, nil
}

// Empty reports whether the pattern list holds no patterns at all
func (gp *GlobPattern) Empty() bool {
	return len(gp.positivePatterns) == 0 && len(gp.negativePatterns) == 0
}

// Match reports whether path matches a positive pattern and no negative one.
// With no positive patterns every path is a positive match.
func (gp *GlobPattern) Match(path string) bool {
	path = filepath.ToSlash(path)

	matchesPositive := len(gp.positivePatterns) == 0
	for _, pattern := range gp.positivePatterns {
		if doublestar.MatchUnvalidated(pattern, path) {
			matchesPositive = true
			break
		}
	}
	if !matchesPositive {
		return false
	}

	for _, pattern := range gp.negativePatterns {
		if doublestar.MatchUnvalidated(pattern, path) {
			return false
		}
	}
	return true
}

// ExcludePaths drops every path matched by the exclude pattern list, keeping order
func ExcludePaths(paths []string, exclude *GlobPattern) []string {
	if exclude == nil || exclude.Empty() {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if !exclude.Match(path) {
			kept = append(kept, path)
		}
	}
	return kept
}
