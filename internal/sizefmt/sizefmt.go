// Package sizefmt provides binary-size math: human-readable formatting
// and parsing of byte counts.
package sizefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned by ParseSize when the string cannot be
// parsed as a size.
var ErrInvalidInput = errors.New("invalid size input")

const unit = 1024

var units = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders n bytes using binary prefixes (B, KB, MB, ...).
// Precision follows the magnitude of the scaled value: below 10, two
// decimals; below 100, one decimal; otherwise an integer.
func FormatSize(n int64) string {
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	val := float64(n)
	idx := 0
	for val >= unit && idx < len(units)-1 {
		val /= unit
		idx++
	}

	switch {
	case val < 10:
		return fmt.Sprintf("%.2f %s", val, units[idx])
	case val < 100:
		return fmt.Sprintf("%.1f %s", val, units[idx])
	default:
		return fmt.Sprintf("%.0f %s", val, units[idx])
	}
}

// ParseSize parses a human size string such as "1.5 KB", "500MB", or a
// bare integer (bytes). Parsing is case-insensitive and tolerant of
// whitespace between the number and the unit.
func ParseSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, ErrInvalidInput
	}

	upper := strings.ToUpper(trimmed)

	multiplier := int64(1)
	numPart := upper
	for _, u := range []string{"TB", "GB", "MB", "KB", "B"} {
		if strings.HasSuffix(upper, u) {
			numPart = strings.TrimSpace(strings.TrimSuffix(upper, u))
			multiplier = multiplierFor(u)
			break
		}
	}

	if numPart == "" {
		return 0, ErrInvalidInput
	}

	val, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, s)
	}
	if val < 0 {
		return 0, fmt.Errorf("%w: negative size", ErrInvalidInput)
	}

	return int64(val * float64(multiplier)), nil
}

func multiplierFor(unitSuffix string) int64 {
	switch unitSuffix {
	case "B":
		return 1
	case "KB":
		return unit
	case "MB":
		return unit * unit
	case "GB":
		return unit * unit * unit
	case "TB":
		return unit * unit * unit * unit
	default:
		return 1
	}
}

// ParseSizeWithDefault parses s, returning def if parsing fails.
func ParseSizeWithDefault(s string, def int64) int64 {
	v, err := ParseSize(s)
	if err != nil {
		return def
	}
	return v
}
