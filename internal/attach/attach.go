// Package attach expands attachment arguments into file paths.
package attach

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoMatches is returned when a glob pattern matches no files.
var ErrNoMatches = errors.New("pattern matched no files")

// Resolve expands patterns into a de-duplicated list of regular files.
// Literal paths must exist. Glob patterns (doublestar syntax, e.g.
// "shots/**/*.png") are expanded in sorted order and must match at least
// one file. Order follows the patterns.
func Resolve(patterns []string) ([]string, error) {
	var (
		files []string
		seen  = make(map[string]struct{})
	)

	for _, pattern := range patterns {
		matches, err := expand(pattern)
		if err != nil {
			return nil, err
		}

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	return files, nil
}

func expand(pattern string) ([]string, error) {
	if !isGlob(pattern) {
		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("attachment %q: %w", pattern, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("attachment %q is a directory", pattern)
		}
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("attachment pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("attachment pattern %q: %w", pattern, ErrNoMatches)
	}

	slices.Sort(matches)
	return matches, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
