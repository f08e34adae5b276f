// Package config provides centralized configuration validation.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		// Monitor keys
		KeyMonitorInterval,
		KeyMonitorWarnThreshold,
		KeyMonitorCriticalThreshold,
		KeyMonitorMountPoints,
		KeyMonitorNotificationBackend,
		// Cleaner keys
		KeyCleanerProjectTypes,
		KeyCleanerExcludePatterns,
		KeyCleanerMinAgeDays,
		KeyCleanerMaxDepth,
		KeyCleanerParallelJobs,
		// Scanner keys
		KeyScannerParallelThreads,
		KeyScannerCrossFilesystems,
		KeyScannerUseCache,
		KeyScannerCacheTTL,
		// TUI keys
		KeyTUIColorScheme,
		KeyTUIShowHidden,
		KeyTUIDefaultSort,
		KeyTUILargeDirThreshold,
		// Global keys
		KeyVerbose,
		KeyQuiet,
	}
}

// IsValidKey checks if the given key is a valid configuration key.
func IsValidKey(key string) bool {
	for _, validKey := range ValidKeys() {
		if key == validKey {
			return true
		}
	}
	return false
}

// ValidateValue validates a configuration value for the given key.
func ValidateValue(key, value string) error {
	switch key {
	case KeyMonitorInterval, KeyScannerCacheTTL:
		return validateDuration(value)
	case KeyMonitorWarnThreshold, KeyMonitorCriticalThreshold, KeyTUILargeDirThreshold:
		return validatePercent(value)
	case KeyMonitorMountPoints, KeyCleanerProjectTypes, KeyCleanerExcludePatterns:
		return nil // free-form comma-separated lists
	case KeyMonitorNotificationBackend:
		return validateEnum(value, "auto", "dbus", "notify-send", "i3-nagbar", "stderr")
	case KeyCleanerMinAgeDays:
		return validateIntRange(value, 0, 3650)
	case KeyCleanerMaxDepth:
		return validateIntRange(value, 1, 100)
	case KeyCleanerParallelJobs:
		return validateIntRange(value, 1, 64)
	case KeyScannerParallelThreads:
		return validateIntRange(value, 0, 256)
	case KeyScannerCrossFilesystems, KeyScannerUseCache,
		KeyTUIShowHidden, KeyVerbose, KeyQuiet:
		return validateBooleanValue(value)
	case KeyTUIColorScheme:
		return validateEnum(value, "nord", "plain")
	case KeyTUIDefaultSort:
		return validateEnum(value, "size", "name", "mtime")
	}

	return nil
}

// ConvertValue converts a string configuration value to the appropriate type.
func ConvertValue(key, value string) (interface{}, error) {
	switch key {
	case KeyMonitorInterval, KeyScannerCacheTTL:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse duration value: %w", err)
		}
		return d, nil

	case KeyMonitorWarnThreshold, KeyMonitorCriticalThreshold, KeyTUILargeDirThreshold,
		KeyCleanerMinAgeDays, KeyCleanerMaxDepth, KeyCleanerParallelJobs,
		KeyScannerParallelThreads:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse integer value: %w", err)
		}
		return intVal, nil

	case KeyMonitorMountPoints, KeyCleanerProjectTypes, KeyCleanerExcludePatterns:
		if value == "" {
			return []string{}, nil
		}
		parts := strings.Split(value, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts, nil

	case KeyScannerCrossFilesystems, KeyScannerUseCache,
		KeyTUIShowHidden, KeyVerbose, KeyQuiet:
		return strings.ToLower(value) == "true", nil

	default:
		return value, nil
	}
}

// validateDuration validates a Go duration string (e.g., "5m", "30s").
func validateDuration(value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("expected a duration (e.g., 5m, 30s): %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %s", value)
	}
	return nil
}

// validatePercent validates an integer percentage in [1, 100].
func validatePercent(value string) error {
	return validateIntRange(value, 1, 100)
}

// validateIntRange validates that value parses as an integer within [min, max].
func validateIntRange(value string, min, max int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected an integer")
	}
	if n < min || n > max {
		return fmt.Errorf("must be between %d and %d, got %d", min, max, n)
	}
	return nil
}

// validateBooleanValue validates boolean configuration values.
func validateBooleanValue(value string) error {
	lower := strings.ToLower(value)
	if lower != "true" && lower != "false" {
		return fmt.Errorf("expected 'true' or 'false', got '%s'", value)
	}
	return nil
}

// validateEnum validates that value is one of the given options.
func validateEnum(value string, options ...string) error {
	for _, opt := range options {
		if value == opt {
			return nil
		}
	}
	return fmt.Errorf("expected one of: %s", strings.Join(options, ", "))
}

// Config is the fully-typed, validator-tagged configuration struct bound
// from the TOML schema. Struct tags drive github.com/go-playground/validator
// field-level checks; cross-field rules (threshold ordering) are enforced
// separately by ValidateConfig since validator's dive/cross-field syntax
// reads awkwardly for a two-field percent comparison.
type Config struct {
	Monitor MonitorConfig `validate:"required"`
	Cleaner CleanerConfig `validate:"required"`
	Scanner ScannerConfig `validate:"required"`
	TUI     TUIConfig     `validate:"required"`
}

// MonitorConfig binds the [monitor] TOML table.
type MonitorConfig struct {
	Interval              time.Duration `mapstructure:"interval" validate:"gt=0"`
	WarnThreshold         int           `mapstructure:"warn_threshold" validate:"gte=1,lte=100"`
	CriticalThreshold     int           `mapstructure:"critical_threshold" validate:"gte=1,lte=100"`
	MountPoints           []string      `mapstructure:"mount_points"`
	NotificationBackend   string        `mapstructure:"notification_backend" validate:"oneof=auto dbus notify-send i3-nagbar stderr"`
}

// CleanerConfig binds the [cleaner] TOML table.
type CleanerConfig struct {
	ProjectTypes    []string `mapstructure:"project_types"`
	ExcludePatterns []string `mapstructure:"exclude_patterns"`
	MinAgeDays      int      `mapstructure:"min_age_days" validate:"gte=0,lte=3650"`
	MaxDepth        int      `mapstructure:"max_depth" validate:"gte=1,lte=100"`
	ParallelJobs    int      `mapstructure:"parallel_jobs" validate:"gte=1,lte=64"`
}

// ScannerConfig binds the [scanner] TOML table.
type ScannerConfig struct {
	ParallelThreads  int           `mapstructure:"parallel_threads" validate:"gte=0,lte=256"`
	CrossFilesystems bool          `mapstructure:"cross_filesystems"`
	UseCache         bool          `mapstructure:"use_cache"`
	CacheTTL         time.Duration `mapstructure:"cache_ttl" validate:"gt=0"`
}

// TUIConfig binds the [tui] TOML table.
type TUIConfig struct {
	ColorScheme       string `mapstructure:"color_scheme" validate:"oneof=nord plain"`
	ShowHidden        bool   `mapstructure:"show_hidden"`
	DefaultSort       string `mapstructure:"default_sort" validate:"oneof=size name mtime"`
	LargeDirThreshold int    `mapstructure:"large_dir_threshold" validate:"gte=1,lte=100"`
}

var structValidator = validator.New()

// ValidateConfig runs struct-tag validation plus the cross-field rules the
// schema requires: warn_threshold must be strictly below critical_threshold,
// and neither threshold may exceed 100. Struct-tag validation runs first,
// so the explicit >100 check below repeats the tag bound as a guard.
func ValidateConfig(cfg *Config) error {
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	m := cfg.Monitor
	if m.WarnThreshold > 100 || m.CriticalThreshold > 100 {
		return fmt.Errorf("monitor thresholds must not exceed 100")
	}
	if m.WarnThreshold >= m.CriticalThreshold {
		return fmt.Errorf("monitor.warn_threshold (%d) must be less than monitor.critical_threshold (%d)",
			m.WarnThreshold, m.CriticalThreshold)
	}
	return nil
}
