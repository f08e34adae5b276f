package clean

import (
	"context"
	"sync"

	"rusty-sweeper/internal/project"
)

// Progress holds a completion counter and the current project path,
// both guarded by one mutex, so Snapshot is safe from any goroutine.
type Progress struct {
	mu        sync.Mutex
	completed int
	total     int
	current   string
}

func newProgress(total int) *Progress {
	return &Progress{total: total}
}

func (p *Progress) setCurrent(path string) {
	p.mu.Lock()
	p.current = path
	p.mu.Unlock()
}

func (p *Progress) increment() {
	p.mu.Lock()
	p.completed++
	p.mu.Unlock()
}

// Snapshot is a point-in-time read of Progress, safe to copy.
type Snapshot struct {
	Completed int
	Total     int
	Current   string
}

// Snapshot returns the current progress state.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{Completed: p.completed, Total: p.total, Current: p.current}
}

// Orchestrator runs an Executor over many projects in parallel, bounded
// by a job count.
type Orchestrator struct {
	executor *Executor
	jobs     int
}

// NewOrchestrator returns an Orchestrator that runs at most jobs
// clean attempts concurrently (at least 1).
func NewOrchestrator(executor *Executor, jobs int) *Orchestrator {
	if jobs < 1 {
		jobs = 1
	}
	return &Orchestrator{executor: executor, jobs: jobs}
}

// Run cleans every project in projects per opts, returning one Result
// per project and the run's Progress. Run blocks until every project
// is done, so the Progress is handed back only after the run finishes;
// it is not reachable by another goroutine while the run is in flight.
func (o *Orchestrator) Run(ctx context.Context, projects []project.DetectedProject, opts Options) ([]Result, *Progress) {
	progress := newProgress(len(projects))
	results := make([]Result, len(projects))

	sem := make(chan struct{}, o.jobs)
	var wg sync.WaitGroup

	for i, proj := range projects {
		wg.Add(1)
		i, proj := i, proj
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			progress.setCurrent(proj.Path)
			results[i] = o.executor.Clean(ctx, proj, opts)
			progress.increment()
		}()
	}
	wg.Wait()

	return results, progress
}
