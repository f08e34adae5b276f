// Package disktree models a sized directory tree: one node per file or
// directory, annotated with apparent size, on-disk usage, and recursive
// file/dir counts.
package disktree

import "time"

// Entry is one file-or-directory node in a scanned tree.
type Entry struct {
	Path      string
	Name      string
	IsDir     bool
	Size      int64
	DiskUsage int64
	FileCount int64
	DirCount  int64
	ModTime   time.Time
	HasModTime bool
	Children  []*Entry
	Parent    *Entry
	Error     string
}

// NewFile builds a leaf entry for a regular file (or a non-directory
// entry such as a symlink contributing its own metadata).
func NewFile(path, name string, size, diskUsage int64, modTime time.Time) *Entry {
	return &Entry{
		Path:       path,
		Name:       name,
		IsDir:      false,
		Size:       size,
		DiskUsage:  diskUsage,
		FileCount:  1,
		ModTime:    modTime,
		HasModTime: true,
	}
}

// NewDir builds a directory entry with no children yet; call
// RecalculateTotals after attaching children.
func NewDir(path, name string) *Entry {
	return &Entry{
		Path:  path,
		Name:  name,
		IsDir: true,
	}
}

// NewErrorLeaf builds an entry representing a path that could not be
// read. Error leaves contribute zero to all totals.
func NewErrorLeaf(path, name, cause string) *Entry {
	return &Entry{
		Path:  path,
		Name:  name,
		Error: cause,
	}
}

// AddChild appends c as a child of e and sets c's parent pointer. It
// does not recompute totals; call RecalculateTotals afterward.
func (e *Entry) AddChild(c *Entry) {
	c.Parent = e
	e.Children = append(e.Children, c)
}

// RecalculateTotals recomputes size, disk usage, and counts from the
// current children. It does not recurse: callers are expected to
// recurse bottom-up, calling this once per directory after its
// children are finalized.
func (e *Entry) RecalculateTotals() {
	if !e.IsDir {
		return
	}

	var size, diskUsage, fileCount, dirCount int64
	for _, c := range e.Children {
		size += c.Size
		diskUsage += c.DiskUsage
		fileCount += c.FileCount
		if c.IsDir {
			dirCount += 1 + c.DirCount
		}
	}
	e.Size = size
	e.DiskUsage = diskUsage
	e.FileCount = fileCount
	e.DirCount = dirCount
}

// IsError reports whether e is an error leaf.
func (e *Entry) IsError() bool {
	return e.Error != ""
}
