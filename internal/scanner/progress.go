package scanner

import "sync/atomic"

// ProgressFunc is invoked with a monotonically increasing counter and
// the path currently being examined. Implementations MUST be safe to
// call from multiple goroutines concurrently and MUST NOT block
// meaningfully.
type ProgressFunc func(current int64, path string)

// progressReporter samples calls to ProgressFunc every 100 entries,
// matching the spec's "encouraged to sample" guidance.
type progressReporter struct {
	counter int64
	report  ProgressFunc
}

func newProgressReporter(fn ProgressFunc) *progressReporter {
	return &progressReporter{report: fn}
}

func (p *progressReporter) tick(path string) {
	n := atomic.AddInt64(&p.counter, 1)
	if p.report == nil {
		return
	}
	if n%100 == 0 {
		p.report(n, path)
	}
}

func (p *progressReporter) final(path string) {
	if p.report == nil {
		return
	}
	p.report(atomic.LoadInt64(&p.counter), path)
}
