// Package notify sends disk-usage alerts through whichever desktop
// notification backend is actually available: D-Bus, notify-send,
// i3-nagbar, or a stderr banner as the universal fallback.
package notify

import (
	"fmt"

	"rusty-sweeper/internal/alert"
	"rusty-sweeper/internal/diskstatus"
	"rusty-sweeper/internal/sizefmt"
)

// Urgency mirrors the freedesktop notification urgency levels.
type Urgency int

const (
	Low Urgency = iota
	NormalUrgency
	CriticalUrgency
)

// Notifier is implemented by every notification backend.
type Notifier interface {
	Name() string
	Available() bool
	SendAlert(level alert.Level, status diskstatus.Status) error
	Send(title, body string, urgency Urgency) error
}

// Preference selects which backend (or "auto") the caller wants.
type Preference string

const (
	Auto            Preference = "auto"
	PreferDBus      Preference = "dbus"
	PreferNotifySend Preference = "notify-send"
	PreferI3Nagbar  Preference = "i3-nagbar"
	PreferStderr    Preference = "stderr"
)

func urgencyFor(level alert.Level) Urgency {
	switch level {
	case alert.Normal:
		return Low
	case alert.Warning:
		return NormalUrgency
	default:
		return CriticalUrgency
	}
}

func titleFor(level alert.Level) string {
	switch level {
	case alert.Normal:
		return "Disk Usage Normal"
	case alert.Warning:
		return "⚠️ Disk Usage Warning"
	case alert.Critical:
		return "\U0001f534 Disk Usage Critical"
	default:
		return "\U0001f6a8 DISK SPACE EMERGENCY"
	}
}

func bodyFor(status diskstatus.Status) string {
	return fmt.Sprintf("%s is %.0f%% full\nUsed: %s of %s\nAvailable: %s",
		status.MountPoint, status.Percent,
		sizefmt.FormatSize(int64(status.Used)), sizefmt.FormatSize(int64(status.Total)),
		sizefmt.FormatSize(int64(status.Available)))
}

func bodyOneLine(status diskstatus.Status) string {
	return fmt.Sprintf("%s is %.0f%% full, %s available",
		status.MountPoint, status.Percent, sizefmt.FormatSize(int64(status.Available)))
}
