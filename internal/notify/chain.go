package notify

import (
	"rusty-sweeper/internal/alert"
	"rusty-sweeper/internal/diskstatus"
)

// Chain selects a primary notifier per the configured preference and
// always dispatches i3-nagbar as a secondary channel for Critical and
// Emergency alerts, independent of the primary choice.
type Chain struct {
	primary Notifier
	nagbar  *I3NagbarNotifier
}

// NewChain builds a chain from the candidate backends. dbusN,
// notifySendN and stderrN are tried in that order under Auto; an
// explicit preference picks the matching backend directly, falling
// back to stderr if that backend is unavailable.
func NewChain(pref Preference, dbusN, notifySendN, stderrN Notifier, nagbarN *I3NagbarNotifier) *Chain {
	return &Chain{
		primary: selectPrimary(pref, dbusN, notifySendN, stderrN),
		nagbar:  nagbarN,
	}
}

// NewDefaultChain wires the real backend implementations.
func NewDefaultChain(pref Preference) *Chain {
	return NewChain(pref, NewDBusNotifier(), NewNotifySendNotifier(), NewStderrNotifier(), NewI3NagbarNotifier())
}

func selectPrimary(pref Preference, dbusN, notifySendN, stderrN Notifier) Notifier {
	switch pref {
	case PreferDBus:
		if dbusN.Available() {
			return dbusN
		}
		return stderrN
	case PreferNotifySend:
		if notifySendN.Available() {
			return notifySendN
		}
		return stderrN
	case PreferStderr:
		return stderrN
	case PreferI3Nagbar:
		// i3-nagbar cannot serve as a primary channel on its own terms
		// (it is silent below Critical), so Auto selection backs it
		// with the usual chain and it is additionally driven as the
		// secondary channel below.
		return selectPrimary(Auto, dbusN, notifySendN, stderrN)
	default: // Auto
		for _, n := range []Notifier{dbusN, notifySendN} {
			if n.Available() {
				return n
			}
		}
		return stderrN
	}
}

// Primary reports the chosen primary backend's name, for logging.
func (c *Chain) Primary() string {
	return c.primary.Name()
}

// SendAlert dispatches to the primary backend, and additionally to
// i3-nagbar when the level is Critical or Emergency and i3-nagbar is
// available.
func (c *Chain) SendAlert(level alert.Level, status diskstatus.Status) error {
	err := c.primary.SendAlert(level, status)

	if level >= alert.Critical && c.nagbar != nil && c.nagbar.Available() && c.primary.Name() != c.nagbar.Name() {
		if nagErr := c.nagbar.SendAlert(level, status); nagErr != nil && err == nil {
			err = nagErr
		}
	}

	return err
}
