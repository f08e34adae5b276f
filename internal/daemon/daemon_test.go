package daemon

import (
	"os"
	"strconv"
	"testing"

	"github.com/adrg/xdg"
)

func TestReadPIDMissingFileIsNotAnError(t *testing.T) {
	pid, ok, err := readPID("/nonexistent/path/to/a.pid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("ok should be false for a missing file")
	}
	if pid != 0 {
		t.Fatalf("pid = %d, want 0", pid)
	}
}

func TestReadPIDCorruptFileErrors(t *testing.T) {
	path := t.TempDir() + "/bad.pid"
	if err := os.WriteFile(path, []byte("not-a-number"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := readPID(path); err == nil {
		t.Fatal("expected an error for a corrupt pid file")
	}
}

func TestReadPIDRoundTrip(t *testing.T) {
	path := t.TempDir() + "/ok.pid"
	if err := os.WriteFile(path, []byte(strconv.Itoa(12345)), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	pid, ok, err := readPID(path)
	if err != nil {
		t.Fatalf("readPID: %v", err)
	}
	if !ok || pid != 12345 {
		t.Fatalf("pid=%d ok=%v, want 12345/true", pid, ok)
	}
}

func TestIsLiveForCurrentProcess(t *testing.T) {
	if !isLive(os.Getpid()) {
		t.Fatal("current process should be reported live")
	}
}

func TestIsLiveForImplausiblePID(t *testing.T) {
	// PID 1<<30 is implausibly large for any real process in test
	// environments and should not be live.
	if isLive(1 << 30) {
		t.Fatal("implausible pid should not be reported live")
	}
}

func TestStopWithNoPIDFileReportsNotStopped(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	stopped, err := Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if stopped {
		t.Fatal("Stop should report false when no pid file exists")
	}
}

func TestStatusWithStalePIDFileReportsNotRunning(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	path := PIDFilePath()
	if err := os.WriteFile(path, []byte(strconv.Itoa(1<<30)), 0o644); err != nil {
		t.Fatalf("write pid file: %v", err)
	}

	_, ok, err := Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if ok {
		t.Fatal("a stale pid file must report not running")
	}
}
