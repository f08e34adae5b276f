package monitor

import (
	"time"

	"rusty-sweeper/internal/notify"
)

// Config holds the tunables for a monitor run. MountPoints empty means
// "enumerate all non-virtual mounts at the top of every tick".
type Config struct {
	Interval        time.Duration
	WarnPercent     float64
	CriticalPercent float64
	MountPoints     []string
	NotifyPref      notify.Preference
	Once            bool

	// ConfigPath, when non-empty, is re-read (monitor.* keys only) on
	// SIGHUP via reloadScopedConfig, called from Monitor.Run.
	ConfigPath string
}

// DefaultConfig mirrors the CLI's documented flag defaults (§6).
func DefaultConfig() Config {
	return Config{
		Interval:        300 * time.Second,
		WarnPercent:     80,
		CriticalPercent: 90,
		NotifyPref:      notify.Auto,
	}
}
