// Package config provides centralized configuration key constants,
// metadata, and validation for the TOML schema described in §6.
package config

const (
	// Monitor
	KeyMonitorInterval            = "monitor.interval"
	KeyMonitorWarnThreshold       = "monitor.warn_threshold"
	KeyMonitorCriticalThreshold   = "monitor.critical_threshold"
	KeyMonitorMountPoints         = "monitor.mount_points"
	KeyMonitorNotificationBackend = "monitor.notification_backend"

	// Cleaner
	KeyCleanerProjectTypes    = "cleaner.project_types"
	KeyCleanerExcludePatterns = "cleaner.exclude_patterns"
	KeyCleanerMinAgeDays      = "cleaner.min_age_days"
	KeyCleanerMaxDepth        = "cleaner.max_depth"
	KeyCleanerParallelJobs    = "cleaner.parallel_jobs"

	// Scanner
	KeyScannerParallelThreads  = "scanner.parallel_threads"
	KeyScannerCrossFilesystems = "scanner.cross_filesystems"
	KeyScannerUseCache         = "scanner.use_cache"
	KeyScannerCacheTTL         = "scanner.cache_ttl"

	// TUI
	KeyTUIColorScheme       = "tui.color_scheme"
	KeyTUIShowHidden        = "tui.show_hidden"
	KeyTUIDefaultSort       = "tui.default_sort"
	KeyTUILargeDirThreshold = "tui.large_dir_threshold"

	// Global
	KeyVerbose = "verbose"
	KeyQuiet   = "quiet"
)
