package tui

import (
	"strings"

	"rusty-sweeper/internal/disktree"
)

// rebuildFlat recomputes the flattened, currently-visible list per
// §4.6's flattening rule, then clamps the cursor into its bounds.
func (m *Model) rebuildFlat() {
	m.flat = nil
	if m.tree != nil {
		m.appendVisible(m.tree, 0, true)
	}
	m.clampCursor()
}

func (m *Model) appendVisible(e *disktree.Entry, depth int, isLast bool) {
	if !m.matchesFilters(e) {
		return
	}

	m.flat = append(m.flat, flatItem{entry: e, depth: depth, isLast: isLast})

	if e.IsDir && m.expanded[e.Path] {
		for i, child := range e.Children {
			if !m.subtreeMatches(child) {
				continue
			}
			m.appendVisible(child, depth+1, i == len(e.Children)-1)
		}
	}
}

// matchesFilters applies the hidden filter to this node and the
// search filter to this node or any descendant.
func (m *Model) matchesFilters(e *disktree.Entry) bool {
	if !m.showHidden && isHidden(e.Name) && e.Path != m.rootPath {
		return false
	}
	if m.searchQuery == "" {
		return true
	}
	return m.subtreeMatches(e)
}

// subtreeMatches reports whether e's name, or any descendant's name,
// contains the search query case-insensitively.
func (m *Model) subtreeMatches(e *disktree.Entry) bool {
	if m.searchQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Name), strings.ToLower(m.searchQuery)) {
		return true
	}
	for _, c := range e.Children {
		if m.subtreeMatches(c) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
