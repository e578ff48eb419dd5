package models

import "time"

// RiskDistribution counts clauses by severity level.
type RiskDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total returns the total number of counted clauses.
func (d RiskDistribution) Total() int {
	return d.Critical + d.High + d.Medium + d.Low
}

// Favorability buckets describing which party the contract's terms skew
// toward.
const (
	FavorabilityHeavilyAgainst = "heavily_favors_other_party"
	FavorabilitySlightlyUnfav  = "slightly_unfavorable"
	FavorabilityBalanced       = "balanced"
	FavorabilityFavorable      = "favorable"
	FavorabilityUnknown        = "unknown"
)

// RiskSummary is the document-level risk summary.
type RiskSummary struct {
	OverallScore   int              `json:"overall_score"`
	OverallLevel   Severity         `json:"overall_level"`
	Distribution   RiskDistribution `json:"distribution"`
	Favorability   string           `json:"favorability"`
	Recommendation string           `json:"recommendation"`
}

// CategorySummary summarizes risks within a single category.
type CategorySummary struct {
	Category     RiskCategory `json:"category"`
	Count        int          `json:"count"`
	AverageScore float64      `json:"average_score"`
	HighestScore int          `json:"highest_score"`
	Clauses      []string     `json:"clauses"` // clause IDs
}

// TopRisk is a ranked top-priority risk item.
type TopRisk struct {
	Rank            int    `json:"rank"`
	ClauseID        string `json:"clause_id"`
	ClauseReference string `json:"clause_reference"` // e.g. "Indemnification - section_12"
	Score           int    `json:"score"`
	Issue           string `json:"issue"`
	Action          string `json:"action"`
}

// ActionItem is a prioritized action derived from a clause risk.
type ActionItem struct {
	Priority        int    `json:"priority"`
	ClauseReference string `json:"clause_reference"`
	Issue           string `json:"issue"`
	Urgency         string `json:"urgency"`
	Action          string `json:"action"`
	TalkingPoint    string `json:"talking_point,omitempty"`
}

// Recommendation is a structured negotiation recommendation.
type Recommendation struct {
	Priority        int          `json:"priority"`
	Category        RiskCategory `json:"category"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	ClauseReference string       `json:"clause_reference"`
	SuggestedChange string       `json:"suggested_change,omitempty"`
	NegotiationTip  string       `json:"negotiation_tip,omitempty"`
}

// DocumentMetadata describes the analyzed document and the analysis run.
type DocumentMetadata struct {
	AnalyzedAt     time.Time     `json:"analyzed_at"`
	RunID          string        `json:"run_id"`
	Filename       string        `json:"filename"`
	Pages          int           `json:"pages"`
	ClausesScanned int           `json:"clauses_analyzed"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// DocumentRisk is the aggregate root of one analysis run. It is created once
// from an ordered list of ClauseRisk and never mutated afterward.
type DocumentRisk struct {
	Metadata DocumentMetadata `json:"document_metadata"`

	RiskSummary      RiskSummary `json:"risk_summary"`
	ExecutiveSummary string      `json:"executive_summary"`

	ClauseRisks       []ClauseRisk                     `json:"clause_risks"`
	TopRisks          []TopRisk                        `json:"top_risks"`
	CategorySummaries map[RiskCategory]CategorySummary `json:"category_summaries"`

	MustAddressImmediately []ActionItem `json:"must_address_immediately"`
	ShouldNegotiate        []string     `json:"should_negotiate"`
	AcceptableAsIs         []string     `json:"acceptable_as_is"`
	DealBreakers           []string     `json:"deal_breakers"`

	ComparisonToMarket  string `json:"comparison_to_market"`
	OverallFavorability string `json:"overall_favorability"`

	ActionPlan []string `json:"action_plan"`
}
