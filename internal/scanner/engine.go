// Package scanner walks a directory tree into a sized disktree.Entry,
// either with a bounded-worker parallel recursion or a single-threaded
// sequential reference implementation used to verify the two agree.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"rusty-sweeper/internal/disktree"
)

// Scanner produces a sized tree rooted at a path.
type Scanner interface {
	Scan(ctx context.Context, root string, opts Options, progress ProgressFunc) (*disktree.Entry, error)
}

type engine struct {
	ctx      context.Context
	opts     Options
	exclude  *excludeMatcher
	rootDev  uint64
	rootPath string
	progress *progressReporter
	sem      chan struct{} // nil => sequential, no bound
}

func newEngine(ctx context.Context, opts Options, progress ProgressFunc, parallel bool) *engine {
	e := &engine{
		ctx:      ctx,
		opts:     opts,
		exclude:  newExcludeMatcher(opts.ExcludePatterns),
		progress: newProgressReporter(progress),
	}
	if parallel {
		e.sem = make(chan struct{}, opts.workerCount())
	}
	return e
}

func (e *engine) run(root string) (*disktree.Entry, error) {
	info, err := lstat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root %s: %w", root, err)
	}
	e.rootDev = info.dev
	e.rootPath = root

	name := filepath.Base(root)
	if name == "." || name == string(filepath.Separator) {
		name = root
	}

	if !info.isDir {
		e.progress.tick(root)
		leaf := disktree.NewFile(root, name, info.size, info.diskUsage(), info.mtime)
		e.progress.final(root)
		return leaf, nil
	}

	entry, _ := e.scanDir(root, name, 0, info, nil)
	e.progress.final(root)
	return entry, nil
}

// scanNode dispatches a single path to the right handling branch. The
// second return value reports whether the caller should omit this
// entry from its parent entirely (used for the one-file-system
// boundary, which excludes rather than stubs).
func (e *engine) scanNode(path, name string, depth int, ancestors map[string]bool) (*disktree.Entry, bool) {
	if e.ctx != nil && e.ctx.Err() != nil {
		return disktree.NewErrorLeaf(path, name, e.ctx.Err().Error()), false
	}

	info, err := lstat(path)
	if err != nil {
		e.progress.tick(path)
		return disktree.NewErrorLeaf(path, name, err.Error()), false
	}

	if info.isSymlink {
		return e.scanSymlink(path, name, depth, info, ancestors)
	}

	if info.isDir {
		return e.scanDir(path, name, depth, info, ancestors)
	}

	e.progress.tick(path)
	return disktree.NewFile(path, name, info.size, info.diskUsage(), info.mtime), false
}

func (e *engine) scanSymlink(path, name string, depth int, info statInfo, ancestors map[string]bool) (*disktree.Entry, bool) {
	if !e.opts.FollowSymlinks {
		e.progress.tick(path)
		return disktree.NewFile(path, name, info.size, info.diskUsage(), info.mtime), false
	}

	target, err := statFollow(path)
	if err != nil {
		e.progress.tick(path)
		return disktree.NewErrorLeaf(path, name, err.Error()), false
	}

	if !target.isDir {
		e.progress.tick(path)
		return disktree.NewFile(path, name, target.size, target.diskUsage(), target.mtime), false
	}

	id := target.identity()
	if ancestors != nil && ancestors[id] {
		e.progress.tick(path)
		return disktree.NewErrorLeaf(path, name, "symlink cycle detected"), false
	}

	return e.scanDir(path, name, depth, target, withAncestor(ancestors, id))
}

func (e *engine) scanDir(path, name string, depth int, info statInfo, ancestors map[string]bool) (*disktree.Entry, bool) {
	if e.opts.OneFileSystem && depth > 0 && info.dev != e.rootDev {
		return nil, true
	}

	if e.opts.atMaxDepth(depth) {
		e.progress.tick(path)
		return disktree.NewDir(path, name), false
	}

	rawEntries, err := os.ReadDir(path)
	if err != nil {
		e.progress.tick(path)
		return disktree.NewErrorLeaf(path, name, err.Error()), false
	}

	type candidate struct {
		childPath string
		childName string
	}
	var candidates []candidate
	for _, de := range rawEntries {
		childName := de.Name()
		if !e.opts.IncludeHidden && strings.HasPrefix(childName, ".") {
			continue
		}
		childPath := filepath.Join(path, childName)
		relPath, relErr := filepath.Rel(e.rootPath, childPath)
		if relErr == nil && e.exclude.Matches(relPath) {
			continue
		}
		candidates = append(candidates, candidate{childPath: childPath, childName: childName})
	}

	results := make([]*disktree.Entry, len(candidates))
	skip := make([]bool, len(candidates))

	if e.sem == nil {
		for i, c := range candidates {
			results[i], skip[i] = e.scanNode(c.childPath, c.childName, depth+1, ancestors)
		}
	} else {
		var wg sync.WaitGroup
		for i, c := range candidates {
			i, c := i, c
			// A goroutine that holds a slot must not block waiting for
			// another, or deep trees deadlock; with no free slot the
			// child is scanned inline.
			select {
			case e.sem <- struct{}{}:
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer func() { <-e.sem }()
					results[i], skip[i] = e.scanNode(c.childPath, c.childName, depth+1, ancestors)
				}()
			default:
				results[i], skip[i] = e.scanNode(c.childPath, c.childName, depth+1, ancestors)
			}
		}
		wg.Wait()
	}

	dir := disktree.NewDir(path, name)
	for i, child := range results {
		if skip[i] || child == nil {
			continue
		}
		dir.AddChild(child)
	}
	dir.RecalculateTotals()
	dir.Sort(disktree.SortBySize)

	e.progress.tick(path)
	return dir, false
}

func withAncestor(ancestors map[string]bool, id string) map[string]bool {
	next := make(map[string]bool, len(ancestors)+1)
	for k, v := range ancestors {
		next[k] = v
	}
	next[id] = true
	return next
}
