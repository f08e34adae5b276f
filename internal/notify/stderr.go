package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"rusty-sweeper/internal/alert"
	"rusty-sweeper/internal/diskstatus"
)

// StderrNotifier writes a plain-text banner to a writer (stderr by
// default). It is always available and is the terminal fallback of
// the selection chain.
type StderrNotifier struct {
	out io.Writer
}

func NewStderrNotifier() *StderrNotifier {
	return &StderrNotifier{out: os.Stderr}
}

func (s *StderrNotifier) Name() string      { return "stderr" }
func (s *StderrNotifier) Available() bool   { return true }

func (s *StderrNotifier) SendAlert(level alert.Level, status diskstatus.Status) error {
	return s.Send(titleFor(level), bodyFor(status), urgencyFor(level))
}

func (s *StderrNotifier) Send(title, body string, urgency Urgency) error {
	banner := bannerFor(urgency)
	fmt.Fprintf(s.out, "[%s] %s\n", banner, title)
	fmt.Fprintln(s.out, strings.Repeat("-", 60))
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(s.out, "  %s\n", line)
	}
	return nil
}

func bannerFor(u Urgency) string {
	switch u {
	case CriticalUrgency:
		return "CRITICAL"
	case NormalUrgency:
		return "WARNING"
	default:
		return "INFO"
	}
}
