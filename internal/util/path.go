package util

import (
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const globMeta = "*?[{"

// HasGlobMeta reports whether arg contains doublestar metacharacters
func HasGlobMeta(arg string) bool {
	return strings.ContainsAny(arg, globMeta)
}

// ExpandPaths replaces glob arguments with the regular files they match, in sorted order.
// Arguments that exist literally, contain no metacharacters, are invalid patterns or
// match nothing are passed through unchanged, so the caller reports them as missing.
func ExpandPaths(args []string) []string {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if !HasGlobMeta(arg) {
			expanded = append(expanded, arg)
			continue
		}
		if _, err := os.Lstat(arg); err == nil {
			expanded = append(expanded, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil || len(matches) == 0 {
			expanded = append(expanded, arg)
			continue
		}
		slices.Sort(matches)
		expanded = append(expanded, matches...)
	}
	return expanded
}
