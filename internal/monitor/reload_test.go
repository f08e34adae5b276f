package monitor

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReloadScopedConfigReadsMonitorTableOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[scanner]
workers = 8

[monitor]
interval_secs = 60
warn_threshold = 75
critical_threshold = 88
mounts = ["/", "/home"]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := reloadScopedConfig(path)
	if err != nil {
		t.Fatalf("reloadScopedConfig: %v", err)
	}

	if cfg.Interval != 60*time.Second {
		t.Errorf("Interval = %v, want 60s", cfg.Interval)
	}
	if cfg.WarnPercent != 75 {
		t.Errorf("WarnPercent = %v, want 75", cfg.WarnPercent)
	}
	if cfg.CriticalPercent != 88 {
		t.Errorf("CriticalPercent = %v, want 88", cfg.CriticalPercent)
	}
	if len(cfg.MountPoints) != 2 || cfg.MountPoints[0] != "/" || cfg.MountPoints[1] != "/home" {
		t.Errorf("MountPoints = %v, want [/ /home]", cfg.MountPoints)
	}
}

func TestReloadScopedConfigMissingFileErrors(t *testing.T) {
	if _, err := reloadScopedConfig("/nonexistent/config.toml"); err == nil {
		t.Fatal("expected an error reading a missing config file")
	}
}
