package scanner

import (
	"context"

	"rusty-sweeper/internal/disktree"
)

// SequentialScanner is the single-threaded depth-first reference
// implementation used to verify the parallel scanner produces an
// equivalent tree.
type SequentialScanner struct{}

// NewSequentialScanner returns the reference Scanner implementation.
func NewSequentialScanner() *SequentialScanner {
	return &SequentialScanner{}
}

func (s *SequentialScanner) Scan(ctx context.Context, root string, opts Options, progress ProgressFunc) (*disktree.Entry, error) {
	e := newEngine(ctx, opts, progress, false)
	return e.run(root)
}
