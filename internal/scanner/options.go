package scanner

import "runtime"

// Options controls a single scan's traversal behavior.
type Options struct {
	// MaxDepth is the deepest directory level descended into. Zero
	// means unlimited. A directory sitting exactly at MaxDepth is
	// returned as a childless stub.
	MaxDepth int

	// IncludeHidden, when false (default), skips entries whose final
	// path component begins with ".".
	IncludeHidden bool

	// OneFileSystem, when set, skips child directories whose device id
	// differs from the root's.
	OneFileSystem bool

	// Workers bounds the directory-read worker pool. Zero selects
	// runtime.NumCPU().
	Workers int

	// ExcludePatterns are gitignore/doublestar-style globs matched
	// against the path relative to the scan root.
	ExcludePatterns []string

	// FollowSymlinks, when true, descends into symlinked directories,
	// guarding against cycles via device+inode tracking on the current
	// descent path. Default false: symlinks contribute only their own
	// link metadata.
	FollowSymlinks bool
}

// DefaultOptions returns the zero-value-safe defaults: unlimited depth,
// hidden entries skipped, platform-default worker count.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
	}
}

func (o Options) workerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) depthExceeded(depth int) bool {
	return o.MaxDepth > 0 && depth > o.MaxDepth
}

func (o Options) atMaxDepth(depth int) bool {
	return o.MaxDepth > 0 && depth == o.MaxDepth
}
