// Package models contains data structures for Caveat contract risk findings.
package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RiskCategory classifies the kind of legal risk a keyword or clause carries.
type RiskCategory string

// Risk categories as constants for type safety and consistency.
const (
	CategoryFinancial         RiskCategory = "financial"
	CategoryLegalLiability    RiskCategory = "legal_liability"
	CategoryTermination       RiskCategory = "termination"
	CategoryIntellectualProp  RiskCategory = "intellectual_property"
	CategoryConfidentiality   RiskCategory = "confidentiality"
	CategoryDisputeResolution RiskCategory = "dispute_resolution"
	CategoryCompliance        RiskCategory = "compliance"
	CategoryOperational       RiskCategory = "operational"
	CategoryUnknown           RiskCategory = "unknown"
)

// AllCategories returns the closed set of scoreable risk categories.
// CategoryUnknown is excluded: it is a fallback, never a keyword home.
func AllCategories() []RiskCategory {
	return []RiskCategory{
		CategoryFinancial,
		CategoryLegalLiability,
		CategoryTermination,
		CategoryIntellectualProp,
		CategoryConfidentiality,
		CategoryDisputeResolution,
		CategoryCompliance,
		CategoryOperational,
	}
}

// IsValidCategory checks if a category value is part of the closed enum.
func IsValidCategory(c RiskCategory) bool {
	switch c {
	case CategoryFinancial, CategoryLegalLiability, CategoryTermination,
		CategoryIntellectualProp, CategoryConfidentiality,
		CategoryDisputeResolution, CategoryCompliance, CategoryOperational,
		CategoryUnknown:
		return true
	default:
		return false
	}
}

// ParseCategory normalizes a category string from an external source.
// Unrecognized values map to CategoryUnknown rather than erroring, per the
// boundary rule that malformed external output defaults instead of failing.
func ParseCategory(s string) RiskCategory {
	c := RiskCategory(strings.ToLower(strings.TrimSpace(s)))
	if c == "" || !IsValidCategory(c) {
		return CategoryUnknown
	}
	return c
}

// Words returns the category as a human-readable phrase, e.g.
// "legal liability" for CategoryLegalLiability.
func (c RiskCategory) Words() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

var titleCaser = cases.Title(language.English)

// Title returns the category as a display label, e.g. "Legal Liability".
func (c RiskCategory) Title() string {
	return titleCaser.String(c.Words())
}
