// Package severity provides severity level constants and utilities
// for diagnostics reported by the converter.
//
//   - SeverityInfo: informational messages about choices made
//   - SeverityWarning: lossy or best-effort conversions
//   - SeverityError: malformed input fragments
//   - SeverityCritical: input that could not be converted at all
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

import "strings"

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	// SeverityError indicates a malformed fragment of the input document.
	SeverityError Severity = iota

	// SeverityWarning indicates a lossy conversion or a choice made on the
	// caller's behalf that should be reviewed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo

	// SeverityCritical indicates input that could not be converted.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Rank orders severities from least (0) to most severe (3).
// Unknown values rank below info.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether s is as severe as minimum or more.
func (s Severity) AtLeast(minimum Severity) bool {
	return s.Rank() >= minimum.Rank()
}

// Parse maps a severity name (case-insensitive) to a Severity.
func Parse(name string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityInfo, false
	}
}
