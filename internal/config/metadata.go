// Package config provides centralized configuration metadata.
package config

// ConfigType represents the type of a configuration value.
type ConfigType int

const (
	// TypeString represents a free-form string value.
	TypeString ConfigType = iota
	// TypeInt represents an integer value.
	TypeInt
	// TypeBool represents a boolean value.
	TypeBool
	// TypeDuration represents a duration value (e.g., '5m', '30s').
	TypeDuration
	// TypePercent represents an integer percentage (0-100).
	TypePercent
	// TypeStringList represents a comma-separated list of strings.
	TypeStringList
	// TypeEnum represents a value from a predefined set.
	TypeEnum
)

// String returns the string representation of ConfigType.
func (t ConfigType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeDuration:
		return "duration"
	case TypePercent:
		return "percent"
	case TypeStringList:
		return "stringlist"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ConfigCategory represents a logical grouping of configuration keys.
type ConfigCategory string

const (
	// CategoryMonitor groups disk-usage monitoring daemon configuration.
	CategoryMonitor ConfigCategory = "Monitor"
	// CategoryCleaner groups cleanup/detector configuration.
	CategoryCleaner ConfigCategory = "Cleaner"
	// CategoryScanner groups directory scanning configuration.
	CategoryScanner ConfigCategory = "Scanner"
	// CategoryTUI groups interactive browser configuration.
	CategoryTUI ConfigCategory = "TUI"
)

// ConfigMetadata describes a single configuration key.
type ConfigMetadata struct {
	// Key is the configuration key (e.g., "monitor.interval").
	Key string
	// Category is the logical grouping for this key.
	Category ConfigCategory
	// Type is the value type for validation and UI rendering.
	Type ConfigType
	// Description is a human-readable description of the key.
	Description string
	// DefaultValue is the default value for this key.
	DefaultValue interface{}
	// EnumOptions lists valid values for TypeEnum keys.
	EnumOptions []string
	// MinValue is the minimum value for TypeInt/TypePercent keys.
	MinValue int
	// MaxValue is the maximum value for TypeInt/TypePercent keys.
	MaxValue int
	// Required indicates if this key must have a non-empty value.
	Required bool
}

// allMetadata holds all configuration metadata, built once at init.
var allMetadata []ConfigMetadata

func init() {
	allMetadata = buildAllMetadata()
}

// AllConfigMetadata returns all configuration metadata.
func AllConfigMetadata() []ConfigMetadata {
	return allMetadata
}

// GetMetadata returns metadata for a specific key.
func GetMetadata(key string) (ConfigMetadata, bool) {
	for _, m := range allMetadata {
		if m.Key == key {
			return m, true
		}
	}
	return ConfigMetadata{}, false
}

// GetByCategory returns all metadata for a specific category.
func GetByCategory(category ConfigCategory) []ConfigMetadata {
	var result []ConfigMetadata
	for _, m := range allMetadata {
		if m.Category == category {
			result = append(result, m)
		}
	}
	return result
}

// AllCategories returns all categories in display order.
func AllCategories() []ConfigCategory {
	return []ConfigCategory{
		CategoryMonitor,
		CategoryCleaner,
		CategoryScanner,
		CategoryTUI,
	}
}

// buildAllMetadata constructs the complete metadata list.
func buildAllMetadata() []ConfigMetadata {
	return []ConfigMetadata{
		// Monitor (5 keys)
		{
			Key:          KeyMonitorInterval,
			Category:     CategoryMonitor,
			Type:         TypeDuration,
			Description:  "Interval between disk usage checks",
			DefaultValue: "5m",
		},
		{
			Key:          KeyMonitorWarnThreshold,
			Category:     CategoryMonitor,
			Type:         TypePercent,
			Description:  "Usage percent at which a warning alert fires",
			DefaultValue: 80,
			MinValue:     1,
			MaxValue:     100,
		},
		{
			Key:          KeyMonitorCriticalThreshold,
			Category:     CategoryMonitor,
			Type:         TypePercent,
			Description:  "Usage percent at which a critical alert fires",
			DefaultValue: 90,
			MinValue:     1,
			MaxValue:     100,
		},
		{
			Key:          KeyMonitorMountPoints,
			Category:     CategoryMonitor,
			Type:         TypeStringList,
			Description:  "Mount points to monitor; empty means auto-enumerate",
			DefaultValue: "",
		},
		{
			Key:          KeyMonitorNotificationBackend,
			Category:     CategoryMonitor,
			Type:         TypeEnum,
			Description:  "Preferred notification backend",
			DefaultValue: "auto",
			EnumOptions:  []string{"auto", "dbus", "notify-send", "i3-nagbar", "stderr"},
		},

		// Cleaner (5 keys)
		{
			Key:          KeyCleanerProjectTypes,
			Category:     CategoryCleaner,
			Type:         TypeStringList,
			Description:  "Project detector IDs to enable; empty means all",
			DefaultValue: "",
		},
		{
			Key:          KeyCleanerExcludePatterns,
			Category:     CategoryCleaner,
			Type:         TypeStringList,
			Description:  "Glob patterns excluded from scanning and cleaning",
			DefaultValue: "",
		},
		{
			Key:          KeyCleanerMinAgeDays,
			Category:     CategoryCleaner,
			Type:         TypeInt,
			Description:  "Minimum artifact age in days before it is eligible for cleaning",
			DefaultValue: 0,
			MinValue:     0,
			MaxValue:     3650,
		},
		{
			Key:          KeyCleanerMaxDepth,
			Category:     CategoryCleaner,
			Type:         TypeInt,
			Description:  "Maximum directory depth for project detection",
			DefaultValue: 10,
			MinValue:     1,
			MaxValue:     100,
		},
		{
			Key:          KeyCleanerParallelJobs,
			Category:     CategoryCleaner,
			Type:         TypeInt,
			Description:  "Number of projects cleaned concurrently",
			DefaultValue: 4,
			MinValue:     1,
			MaxValue:     64,
		},

		// Scanner (4 keys)
		{
			Key:          KeyScannerParallelThreads,
			Category:     CategoryScanner,
			Type:         TypeInt,
			Description:  "Number of parallel scan workers; 0 means one per CPU",
			DefaultValue: 0,
			MinValue:     0,
			MaxValue:     256,
		},
		{
			Key:          KeyScannerCrossFilesystems,
			Category:     CategoryScanner,
			Type:         TypeBool,
			Description:  "Cross filesystem/mount boundaries while scanning",
			DefaultValue: false,
		},
		{
			Key:          KeyScannerUseCache,
			Category:     CategoryScanner,
			Type:         TypeBool,
			Description:  "Cache scan results between invocations",
			DefaultValue: true,
		},
		{
			Key:          KeyScannerCacheTTL,
			Category:     CategoryScanner,
			Type:         TypeDuration,
			Description:  "Maximum age of a cached scan result before it is discarded",
			DefaultValue: "1h",
		},

		// TUI (4 keys)
		{
			Key:          KeyTUIColorScheme,
			Category:     CategoryTUI,
			Type:         TypeEnum,
			Description:  "Color scheme used by the interactive browser",
			DefaultValue: "nord",
			EnumOptions:  []string{"nord", "plain"},
		},
		{
			Key:          KeyTUIShowHidden,
			Category:     CategoryTUI,
			Type:         TypeBool,
			Description:  "Show dotfiles and dot-directories by default",
			DefaultValue: false,
		},
		{
			Key:          KeyTUIDefaultSort,
			Category:     CategoryTUI,
			Type:         TypeEnum,
			Description:  "Initial sort order of the entry list",
			DefaultValue: "size",
			EnumOptions:  []string{"size", "name", "mtime"},
		},
		{
			Key:          KeyTUILargeDirThreshold,
			Category:     CategoryTUI,
			Type:         TypePercent,
			Description:  "Size ratio (of the scanned root) above which an entry is flagged large",
			DefaultValue: 10,
			MinValue:     1,
			MaxValue:     100,
		},
	}
}
