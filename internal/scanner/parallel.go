package scanner

import (
	"context"

	"rusty-sweeper/internal/disktree"
)

// ParallelScanner walks a tree with a per-directory goroutine fan-out
// bounded by Options.Workers.
type ParallelScanner struct{}

// NewParallelScanner returns the default, concurrent Scanner
// implementation used by the scan and clean commands.
func NewParallelScanner() *ParallelScanner {
	return &ParallelScanner{}
}

func (s *ParallelScanner) Scan(ctx context.Context, root string, opts Options, progress ProgressFunc) (*disktree.Entry, error) {
	e := newEngine(ctx, opts, progress, true)
	return e.run(root)
}
