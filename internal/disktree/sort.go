package disktree

import "sort"

// SortKey selects one of the three tree orderings the TUI cycles
// through.
type SortKey int

const (
	SortBySize SortKey = iota
	SortByName
	SortByMTime
)

// Next returns the following key in the size -> name -> mtime -> size
// cycle.
func (k SortKey) Next() SortKey {
	switch k {
	case SortBySize:
		return SortByName
	case SortByName:
		return SortByMTime
	default:
		return SortBySize
	}
}

func (k SortKey) String() string {
	switch k {
	case SortBySize:
		return "size"
	case SortByName:
		return "name"
	case SortByMTime:
		return "mtime"
	default:
		return "size"
	}
}

// Sort mutates e's children (and all descendants) in place according
// to key. Sorting never changes the totals computed by
// RecalculateTotals.
func (e *Entry) Sort(key SortKey) {
	if !e.IsDir {
		return
	}

	switch key {
	case SortBySize:
		sortBySize(e.Children)
	case SortByName:
		sortByName(e.Children)
	case SortByMTime:
		sortByMTime(e.Children)
	}

	for _, c := range e.Children {
		c.Sort(key)
	}
}

func sortBySize(children []*Entry) {
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].Size != children[j].Size {
			return children[i].Size > children[j].Size
		}
		return children[i].Name < children[j].Name
	})
}

func sortByName(children []*Entry) {
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})
}

func sortByMTime(children []*Entry) {
	sort.SliceStable(children, func(i, j int) bool {
		a, b := children[i], children[j]
		if a.HasModTime != b.HasModTime {
			// missing mtimes sort last
			return a.HasModTime
		}
		if !a.HasModTime && !b.HasModTime {
			return a.Name < b.Name
		}
		if !a.ModTime.Equal(b.ModTime) {
			return a.ModTime.After(b.ModTime)
		}
		return a.Name < b.Name
	})
}
