package models

import "strings"

// Severity is the risk severity level for a clause or document.
type Severity string

// Severity levels as constants for type safety and consistency.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityFromScore derives a severity level from a 0-100 risk score.
// This is the only place the 30/60/85 boundaries live; every component
// that needs a severity goes through it.
func SeverityFromScore(score int) Severity {
	switch {
	case score <= 30:
		return SeverityLow
	case score <= 60:
		return SeverityMedium
	case score <= 85:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// IsValidSeverity checks if a severity level is valid.
func IsValidSeverity(s Severity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// ParseSeverity normalizes a severity string from an external source,
// defaulting to SeverityMedium when the value is unrecognized.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow
	case "medium", "moderate":
		return SeverityMedium
	case "high":
		return SeverityHigh
	case "critical":
		return SeverityCritical
	default:
		return SeverityMedium
	}
}

// Rank orders severities for comparison: low < medium < high < critical.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return 0
	}
}
