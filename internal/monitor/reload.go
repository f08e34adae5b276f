package monitor

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// reloadScopedConfig re-reads only the monitor.* table of the config
// file named by path, using a dedicated koanf instance so an in-flight
// scan/clean/tui process sharing the same file is never touched by a
// monitor SIGHUP. This resolves the open question of what "reload"
// means: the keys read are monitor.interval_secs (whole seconds),
// monitor.warn_threshold, monitor.critical_threshold and the
// monitor.mounts allowlist; a key that is absent or not positive keeps
// its DefaultConfig value. The notifier preference is not reloaded.
func reloadScopedConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Config{}, fmt.Errorf("reload monitor config: %w", err)
	}

	cfg := DefaultConfig()
	if v := k.Int("monitor.interval_secs"); v > 0 {
		cfg.Interval = time.Duration(v) * time.Second
	}
	if v := k.Float64("monitor.warn_threshold"); v > 0 {
		cfg.WarnPercent = v
	}
	if v := k.Float64("monitor.critical_threshold"); v > 0 {
		cfg.CriticalPercent = v
	}
	if v := k.Strings("monitor.mounts"); len(v) > 0 {
		cfg.MountPoints = v
	}

	return cfg, nil
}
