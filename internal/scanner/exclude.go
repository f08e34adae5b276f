package scanner

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"
)

// excludeMatcher evaluates ScanOptions.ExcludePatterns against a path
// relative to the scan root. Patterns containing "**" are matched with
// doublestar (gitignore's own ** support is line-oriented and does not
// cover every glob shape callers may pass); everything else goes
// through a compiled gitignore engine so "target/", "!keep.txt"-style
// negation, and plain basenames behave the way users expect from a
// .gitignore file.
type excludeMatcher struct {
	doublestarPatterns []string
	engine             *gitignore.GitIgnore
}

func newExcludeMatcher(patterns []string) *excludeMatcher {
	if len(patterns) == 0 {
		return &excludeMatcher{}
	}

	var doubleStar, lines []string
	for _, p := range patterns {
		if strings.Contains(p, "**") {
			doubleStar = append(doubleStar, p)
			continue
		}
		lines = append(lines, p)
	}

	m := &excludeMatcher{doublestarPatterns: doubleStar}
	if len(lines) > 0 {
		m.engine = gitignore.CompileIgnoreLines(lines...)
	}
	return m
}

// Matches reports whether relPath (slash-separated, relative to the
// scan root) should be excluded.
func (m *excludeMatcher) Matches(relPath string) bool {
	if m == nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range m.doublestarPatterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, filepath.Base(relPath)); ok {
			return true
		}
	}

	if m.engine != nil && m.engine.MatchesPath(relPath) {
		return true
	}

	return false
}
