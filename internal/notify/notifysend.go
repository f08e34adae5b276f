package notify

import (
	"os"
	"os/exec"

	"rusty-sweeper/internal/alert"
	"rusty-sweeper/internal/diskstatus"
)

// NotifySendNotifier shells out to the notify-send binary.
type NotifySendNotifier struct{}

func NewNotifySendNotifier() *NotifySendNotifier { return &NotifySendNotifier{} }

func (n *NotifySendNotifier) Name() string { return "notify-send" }

// Available requires the binary on PATH or in a well-known location.
func (n *NotifySendNotifier) Available() bool {
	if _, err := exec.LookPath("notify-send"); err == nil {
		return true
	}
	for _, p := range []string{"/usr/bin/notify-send", "/bin/notify-send"} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

func (n *NotifySendNotifier) SendAlert(level alert.Level, status diskstatus.Status) error {
	return n.Send(titleFor(level), bodyFor(status), urgencyFor(level))
}

func (n *NotifySendNotifier) Send(title, body string, urgency Urgency) error {
	args := []string{
		"--urgency=" + urgencyName(urgency),
		"--app-name=Rusty Sweeper",
		"--icon", "drive-harddisk",
	}
	if urgency == CriticalUrgency {
		args = append(args, "--expire-time=0")
	}
	args = append(args, title, body)

	return exec.Command("notify-send", args...).Run()
}

func urgencyName(u Urgency) string {
	switch u {
	case Low:
		return "low"
	case NormalUrgency:
		return "normal"
	default:
		return "critical"
	}
}
