package notify

import (
	"fmt"
	"os"
	"os/exec"

	"rusty-sweeper/internal/alert"
	"rusty-sweeper/internal/diskstatus"
)

// I3NagbarNotifier spawns i3-nagbar as a secondary channel for
// Critical/Emergency alerts under i3 or sway.
type I3NagbarNotifier struct{}

func NewI3NagbarNotifier() *I3NagbarNotifier { return &I3NagbarNotifier{} }

func (n *I3NagbarNotifier) Name() string { return "i3-nagbar" }

func (n *I3NagbarNotifier) Available() bool {
	return os.Getenv("I3SOCK") != "" || os.Getenv("SWAYSOCK") != ""
}

// SendAlert only emits for Critical or Emergency; lower levels are a
// silent no-op for this backend.
func (n *I3NagbarNotifier) SendAlert(level alert.Level, status diskstatus.Status) error {
	if level < alert.Critical {
		return nil
	}

	nagType := "warning"
	if level == alert.Emergency {
		nagType = "error"
	}

	message := fmt.Sprintf("%s: %s", titleFor(level), bodyOneLine(status))
	cmd := exec.Command("i3-nagbar",
		"-t", nagType,
		"-m", message,
		"-B", "Open TUI", "rusty-sweeper tui",
		"-B", "Dismiss", "true",
	)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck // fire-and-forget, non-blocking per spec
	return nil
}

// Send implements Notifier for completeness; i3-nagbar is only ever
// driven through SendAlert in practice.
func (n *I3NagbarNotifier) Send(title, body string, urgency Urgency) error {
	nagType := "warning"
	if urgency == CriticalUrgency {
		nagType = "error"
	}
	cmd := exec.Command("i3-nagbar", "-t", nagType, "-m", fmt.Sprintf("%s: %s", title, body))
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
