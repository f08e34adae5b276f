// Package daemon implements the PID-file-guarded background process
// lifecycle for the monitor service: start, stop, and status, plus
// the signal wiring that lets a running daemon observe shutdown and
// reload requests.
package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/xdg"
)

// ErrAlreadyRunning is returned by Daemonize when a live instance
// already holds the PID file.
var ErrAlreadyRunning = errors.New("rusty-sweeper monitor already running")

// PIDFilePath returns $XDG_RUNTIME_DIR/rusty-sweeper.pid, falling back
// to /tmp when no runtime directory is set (XDG's own behavior for a
// missing XDG_RUNTIME_DIR is to fall back to a temp dir already, but
// we pin it explicitly per spec §4.10).
func PIDFilePath() string {
	dir := xdg.RuntimeDir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "rusty-sweeper.pid")
}

// LogFilePath returns $XDG_STATE_HOME/rusty-sweeper/monitor.log.
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, "rusty-sweeper", "monitor.log")
}

// readPID reads and parses a PID file; ok is false if the file does
// not exist.
func readPID(path string) (pid int, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	pid, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, fmt.Errorf("corrupt pid file %s: %w", path, err)
	}
	return pid, true, nil
}

// isLive reports whether a process with the given PID exists. Signal
// 0 performs no actual signalling, only the existence/permission
// check (see kill(2)).
func isLive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}

// Daemonize implements §4.10: if a live PID file exists, fail with
// ErrAlreadyRunning; otherwise reclaim any stale file, double-fork via
// re-exec with setsid detachment, redirect std streams to the log
// file, chdir to /, and write the new PID file. Called from the
// parent process; it returns true in the parent (caller should exit
// immediately) and false in the re-exec'd child (caller should
// proceed to run the monitor loop).
func Daemonize(reexecArgs []string) (isParent bool, err error) {
	pidPath := PIDFilePath()

	if pid, ok, err := readPID(pidPath); err != nil {
		return false, err
	} else if ok {
		// The parent may already have written the child's own PID.
		if isLive(pid) && pid != os.Getpid() {
			return false, ErrAlreadyRunning
		}
		_ = os.Remove(pidPath)
	}

	if os.Getenv("RUSTY_SWEEPER_DAEMON_CHILD") == "1" {
		return false, finishChildSetup(pidPath)
	}

	logPath := LogFilePath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return true, err
	}
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return true, err
	}
	defer logFile.Close()

	exe, err := os.Executable()
	if err != nil {
		return true, err
	}

	attr := &os.ProcAttr{
		Dir: "/",
		Env: append(os.Environ(), "RUSTY_SWEEPER_DAEMON_CHILD=1"),
		Files: []*os.File{
			devNull(),
			logFile,
			logFile,
		},
		Sys: &syscall.SysProcAttr{Setsid: true},
	}

	proc, err := os.StartProcess(exe, append([]string{exe}, reexecArgs...), attr)
	if err != nil {
		return true, err
	}

	return true, writePIDFile(pidPath, proc.Pid)
}

func finishChildSetup(pidPath string) error {
	return writePIDFile(pidPath, os.Getpid())
}

func writePIDFile(path string, pid int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(pid)), 0o644)
}

func devNull() *os.File {
	f, err := os.Open(os.DevNull)
	if err != nil {
		return os.Stdin
	}
	return f
}

// Stop reads the PID file and, if the named process is live, sends
// SIGTERM, waits up to one second, then escalates to SIGKILL. Returns
// whether a daemon was actually stopped.
func Stop() (stopped bool, err error) {
	pidPath := PIDFilePath()
	pid, ok, err := readPID(pidPath)
	if err != nil {
		return false, err
	}
	if !ok || !isLive(pid) {
		_ = os.Remove(pidPath)
		return false, nil
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return false, err
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return false, err
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if !isLive(pid) {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if isLive(pid) {
		_ = proc.Signal(syscall.SIGKILL)
	}

	_ = os.Remove(pidPath)
	return true, nil
}

// Status returns the PID of a live daemon, or ok=false if none is
// running.
func Status() (pid int, ok bool, err error) {
	pid, ok, err = readPID(PIDFilePath())
	if err != nil || !ok {
		return 0, false, err
	}
	if !isLive(pid) {
		return 0, false, nil
	}
	return pid, true, nil
}
