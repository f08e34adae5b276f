// Package monitor implements the long-running poll loop that watches
// mounted filesystems for disk-space pressure and dispatches alerts
// through internal/notify, with hysteresis so a mount sitting at a
// steady severity doesn't re-alert every tick.
package monitor

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"rusty-sweeper/internal/alert"
	"rusty-sweeper/internal/diskstatus"
	"rusty-sweeper/internal/notify"
)

// Tick is one observed (mount, status, level, notified) outcome,
// returned from Monitor.tick for logging and testing.
type Tick struct {
	Mount    string
	Status   diskstatus.Status
	Level    alert.Level
	Notified bool
}

// Monitor runs the poll loop described in §4.9.
type Monitor struct {
	cfg   Config
	chain *notify.Chain

	mu         sync.Mutex
	lastAlerts map[string]alert.Level

	running atomic.Bool
	reload  atomic.Bool

	// checkPacer bounds how fast successive per-mount statvfs checks
	// fire within a single tick, so a host with many mounts doesn't
	// burst dozens of syscalls back to back.
	checkPacer *rate.Limiter
}

// New builds a Monitor. chain may be nil in tests that only exercise
// tick() classification logic without sending notifications.
func New(cfg Config, chain *notify.Chain) *Monitor {
	m := &Monitor{
		cfg:        cfg,
		chain:      chain,
		lastAlerts: make(map[string]alert.Level),
		checkPacer: rate.NewLimiter(rate.Limit(20), 5),
	}
	m.running.Store(true)
	return m
}

// Stop clears the running flag; the loop observes it within one
// second (sleep is chunked into 1-second waits per §4.9/§5).
func (m *Monitor) Stop() { m.running.Store(false) }

// RequestReload sets the reload flag, sampled and cleared at the top
// of the next tick.
func (m *Monitor) RequestReload() { m.reload.Store(true) }

// Flags exposes the running/reload atomics so daemon.WireSignals can
// wire OS signals directly into this monitor's termination and
// reload predicates.
func (m *Monitor) Flags() (running, reload *atomic.Bool) {
	return &m.running, &m.reload
}

// Run executes the poll loop until Stop is called, ctx is canceled,
// or (with Once set) after a single tick.
func (m *Monitor) Run(ctx context.Context) error {
	for m.running.Load() {
		start := time.Now()

		if m.reload.CompareAndSwap(true, false) && m.cfg.ConfigPath != "" {
			if cfg, err := reloadScopedConfig(m.cfg.ConfigPath); err == nil {
				mounts := m.cfg.MountPoints
				cfg.Once = m.cfg.Once
				cfg.ConfigPath = m.cfg.ConfigPath
				if len(cfg.MountPoints) == 0 {
					cfg.MountPoints = mounts
				}
				m.cfg = cfg
			}
		}

		mounts, err := m.resolveMounts()
		if err != nil {
			return err
		}

		for _, mnt := range mounts {
			if !m.running.Load() {
				break
			}
			if err := m.checkPacer.Wait(ctx); err != nil {
				return err
			}
			m.tickOne(mnt)
		}

		if m.cfg.Once {
			return nil
		}

		if err := m.sleepRemaining(ctx, start); err != nil {
			return err
		}
	}
	return nil
}

func (m *Monitor) resolveMounts() ([]string, error) {
	if len(m.cfg.MountPoints) > 0 {
		return m.cfg.MountPoints, nil
	}
	mounts, err := diskstatus.Enumerate()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(mounts))
	for _, mnt := range mounts {
		paths = append(paths, mnt.MountPoint)
	}
	return paths, nil
}

// tickOne computes status for a single mount, classifies it, applies
// hysteresis, and notifies when warranted.
func (m *Monitor) tickOne(mountPath string) Tick {
	status, err := diskstatus.Check(mountPath)
	if err != nil {
		return Tick{Mount: mountPath}
	}

	level := alert.FromPercent(status.Percent, int(m.cfg.WarnPercent), int(m.cfg.CriticalPercent))
	notified := m.classifyAndNotify(mountPath, level, status)

	return Tick{Mount: mountPath, Status: status, Level: level, Notified: notified}
}

// classifyAndNotify implements the exact hysteresis rule from §4.9:
// notify iff level is Emergency (always) or strictly worse than the
// last recorded level for this mount; last_alerts is then updated
// unconditionally regardless of whether a notification was sent.
func (m *Monitor) classifyAndNotify(mountPath string, level alert.Level, status diskstatus.Status) bool {
	m.mu.Lock()
	last := m.lastAlerts[mountPath]
	shouldNotify := level == alert.Emergency || level > last
	m.lastAlerts[mountPath] = level
	m.mu.Unlock()

	if shouldNotify && m.chain != nil {
		_ = m.chain.SendAlert(level, status)
	}
	return shouldNotify
}

func (m *Monitor) sleepRemaining(ctx context.Context, tickStart time.Time) error {
	elapsed := time.Since(tickStart)
	remaining := m.cfg.Interval - elapsed
	if remaining <= 0 {
		return nil
	}

	deadline := time.Now().Add(remaining)
	for time.Now().Before(deadline) {
		if !m.running.Load() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return nil
}
