// Package clean reclaims a detected project's build artifacts: either
// by running the project's native clean command, or by deleting the
// artifact directories directly when no command exists or the command
// fails.
package clean

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"rusty-sweeper/internal/fsutil"
	"rusty-sweeper/internal/project"
)

// Options controls a single project's clean attempt.
type Options struct {
	DryRun                bool
	NativeCommandsEnabled bool
	CommandTimeout        time.Duration
}

// Logger is the minimal interface the executor needs for failure
// reporting. *zerolog.Logger does not satisfy it directly (its Warn
// returns an event); cmd wraps zerolog in a small adapter.
type Logger interface {
	Warn(msg string, keyvals ...any)
}

// Executor runs a single project's clean attempt. Native commands are
// wrapped in a per-detector circuit breaker: a detector whose command
// keeps failing (e.g. a missing gradlew wrapper) trips open and every
// later project of that type falls straight to direct deletion instead
// of paying the process-spawn cost and timeout again.
type Executor struct {
	log      Logger
	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewExecutor returns an Executor that logs native-command failures to
// log (nil is accepted and silently discards them).
func NewExecutor(log Logger) *Executor {
	return &Executor{
		log:      log,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Clean reclaims proj's artifacts per opts.
func (e *Executor) Clean(ctx context.Context, proj project.DetectedProject, opts Options) Result {
	if opts.DryRun {
		return Result{
			ProjectPath: proj.Path,
			DetectorID:  proj.DetectorID,
			Outcome:     Success,
			FreedBytes:  proj.ArtifactSize,
			Message:     "dry run: would be freed",
		}
	}

	if proj.CleanCommand != "" && opts.NativeCommandsEnabled {
		if err := e.runNativeCommand(ctx, proj, opts); err == nil {
			return Result{
				ProjectPath: proj.Path,
				DetectorID:  proj.DetectorID,
				Outcome:     Success,
				FreedBytes:  proj.ArtifactSize,
				Message:     fmt.Sprintf("ran %q", proj.CleanCommand),
			}
		} else if e.log != nil {
			e.log.Warn("native clean command failed, falling back to direct deletion",
				"project", proj.Path, "command", proj.CleanCommand, "error", err)
		}
	}

	return e.directDelete(proj)
}

func (e *Executor) runNativeCommand(ctx context.Context, proj project.DetectedProject, opts Options) error {
	breaker := e.breakerFor(proj.DetectorID)

	_, err := breaker.Execute(func() (any, error) {
		runCtx := ctx
		var cancel context.CancelFunc
		if opts.CommandTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, opts.CommandTimeout)
			defer cancel()
		}

		argv := strings.Fields(proj.CleanCommand)
		if len(argv) == 0 {
			return nil, fmt.Errorf("empty clean command")
		}

		cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
		cmd.Dir = proj.Path
		cmd.Env = minimalEnv()
		return nil, cmd.Run()
	})
	return err
}

func (e *Executor) breakerFor(detectorID string) *gobreaker.CircuitBreaker {
	e.mu.Lock()
	defer e.mu.Unlock()

	if b, ok := e.breakers[detectorID]; ok {
		return b
	}

	b := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "clean-command:" + detectorID,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	e.breakers[detectorID] = b
	return b
}

// directDelete measures each artifact path's current on-disk size,
// then removes it recursively, summing the measured sizes as the freed
// byte count.
func (e *Executor) directDelete(proj project.DetectedProject) Result {
	var freed int64
	for _, path := range proj.ArtifactPaths {
		size, err := fsutil.DirSize(path)
		if err != nil {
			return Result{
				ProjectPath: proj.Path,
				DetectorID:  proj.DetectorID,
				Outcome:     Failed,
				Message:     fmt.Sprintf("measure %s: %v", path, err),
			}
		}
		if err := fsutil.RemoveAll(path); err != nil {
			return Result{
				ProjectPath: proj.Path,
				DetectorID:  proj.DetectorID,
				Outcome:     Failed,
				Message:     fmt.Sprintf("delete %s: %v", path, err),
			}
		}
		freed += size
	}

	return Result{
		ProjectPath: proj.Path,
		DetectorID:  proj.DetectorID,
		Outcome:     Success,
		FreedBytes:  freed,
		Message:     "deleted directly",
	}
}

func minimalEnv() []string {
	return []string{"PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"}
}
