package models

import "time"

// Position marks a half-open [Start, End) byte range in the scanned text.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// KeywordMatch is a single occurrence of a library keyword in the text.
// Matches are produced per occurrence and never deduplicated.
type KeywordMatch struct {
	Keyword  string       `json:"keyword"`
	Category RiskCategory `json:"category"`
	Weight   float64      `json:"weight"`
	Position Position     `json:"position"`
	Context  string       `json:"context"`
}

// RedFlagWeight is the keyword weight at which a match is always surfaced
// as a red flag.
const RedFlagWeight = 2.5

// StructuralFlagWeight is the fixed weight assigned to structural danger
// pattern hits.
const StructuralFlagWeight = 3.0

// RedFlag is a match that crosses the always-surface threshold, either a
// high-weight keyword or a structural danger pattern hit.
type RedFlag struct {
	Phrase      string       `json:"phrase"`
	Category    RiskCategory `json:"category"`
	Weight      float64      `json:"weight"`
	Position    Position     `json:"position"`
	Description string       `json:"description"`
}

// ClauseRisk is the risk assessment for a single clause. It is created once
// per clause, by either the rule-based path or an external analyzer wrapper,
// and is immutable after creation.
type ClauseRisk struct {
	AnalyzedAt time.Time `json:"analyzed_at"`

	ClauseID   string `json:"clause_id"`
	ClauseText string `json:"clause_text"`
	ClauseType string `json:"clause_type"`

	Category   RiskCategory `json:"category"`
	Severity   Severity     `json:"severity"`
	Score      int          `json:"score"`      // 0-100
	Confidence int          `json:"confidence"` // 20-100

	PrimaryRisk         string   `json:"primary_risk"`
	DetailedExplanation string   `json:"detailed_explanation"`
	SpecificConcerns    []string `json:"specific_concerns"`
	ImpactIfTriggered   string   `json:"impact_if_triggered,omitempty"`
	Likelihood          string   `json:"likelihood,omitempty"`

	Recommendation      string `json:"recommendation"`
	AlternativeLanguage string `json:"alternative_language,omitempty"`

	RedFlags          []string `json:"red_flags"`
	MitigatingFactors []string `json:"mitigating_factors,omitempty"`
	PositiveElements  []string `json:"positive_elements,omitempty"`

	KeywordMatches []KeywordMatch `json:"keyword_matches"`
	AIAnalyzed     bool           `json:"ai_analyzed"`
}
