package monitor

import (
	"context"
	"testing"

	"rusty-sweeper/internal/alert"
	"rusty-sweeper/internal/diskstatus"
)

// TestHysteresisScenario reproduces the monitor hysteresis example
// literally: ticks at 85/85/92/85/96/96 with warn=80, critical=90.
func TestHysteresisScenario(t *testing.T) {
	m := New(Config{WarnPercent: 80, CriticalPercent: 90}, nil)
	mount := "/home"

	percents := []float64{85, 85, 92, 85, 96, 96}
	wantNotify := []bool{true, false, true, false, true, true}
	wantLevel := []alert.Level{
		alert.Warning, alert.Warning, alert.Critical,
		alert.Warning, alert.Emergency, alert.Emergency,
	}

	for i, pct := range percents {
		status := diskstatus.Status{MountPoint: mount, Percent: pct}
		level := alert.FromPercent(pct, int(m.cfg.WarnPercent), int(m.cfg.CriticalPercent))
		notified := m.classifyAndNotify(mount, level, status)

		if level != wantLevel[i] {
			t.Errorf("tick %d: level = %v, want %v", i+1, level, wantLevel[i])
		}
		if notified != wantNotify[i] {
			t.Errorf("tick %d: notified = %v, want %v", i+1, notified, wantNotify[i])
		}
	}
}

func TestClassifyAndNotifyUpdatesLastAlertUnconditionally(t *testing.T) {
	m := New(Config{WarnPercent: 80, CriticalPercent: 90}, nil)
	mount := "/data"

	m.classifyAndNotify(mount, alert.Critical, diskstatus.Status{MountPoint: mount, Percent: 92})
	m.mu.Lock()
	last := m.lastAlerts[mount]
	m.mu.Unlock()
	if last != alert.Critical {
		t.Fatalf("last alert = %v, want Critical", last)
	}

	// De-escalation: no notify, but last_alerts still updates downward.
	notified := m.classifyAndNotify(mount, alert.Warning, diskstatus.Status{MountPoint: mount, Percent: 85})
	if notified {
		t.Fatal("de-escalation must not notify")
	}
	m.mu.Lock()
	last = m.lastAlerts[mount]
	m.mu.Unlock()
	if last != alert.Warning {
		t.Fatalf("last alert after de-escalation = %v, want Warning (updated unconditionally)", last)
	}
}

func TestEmergencyAlwaysNotifiesEvenRepeated(t *testing.T) {
	m := New(Config{WarnPercent: 80, CriticalPercent: 90}, nil)
	mount := "/root"
	status := diskstatus.Status{MountPoint: mount, Percent: 97}

	for i := 0; i < 3; i++ {
		if notified := m.classifyAndNotify(mount, alert.Emergency, status); !notified {
			t.Fatalf("tick %d: Emergency must always notify", i+1)
		}
	}
}

func TestRunOnceExecutesSingleTick(t *testing.T) {
	m := New(Config{
		WarnPercent:     80,
		CriticalPercent: 90,
		MountPoints:     []string{"/"},
		Once:            true,
	}, nil)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
