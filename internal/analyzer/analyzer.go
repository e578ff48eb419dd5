// Package analyzer defines the optional deep-analysis pass. An external
// semantic analyzer can supply richer scores and narrative text per clause;
// its absence or failure never blocks the pipeline, which degrades to the
// deterministic rule-based path.
package analyzer

import (
	"context"
	"time"

	"github.com/caveat-dev/caveat/internal/models"
)

// Context carries document-level facts that shape how a clause should be
// judged.
type Context struct {
	DocumentType  string   `json:"document_type" yaml:"document_type"`
	UserRole      string   `json:"user_role" yaml:"user_role"`
	Industry      string   `json:"industry" yaml:"industry"`
	Jurisdiction  string   `json:"jurisdiction" yaml:"jurisdiction"`
	ContractValue *float64 `json:"contract_value,omitempty" yaml:"contract_value,omitempty"`
}

// DefaultContext returns the context used when the caller supplies nothing.
func DefaultContext() Context {
	return Context{
		DocumentType: "contract",
		UserRole:     "party_reviewing",
		Industry:     "general",
		Jurisdiction: "united_states",
	}
}

// Assessment is the structured result an external analyzer produces for one
// clause. Field names match the JSON wire format exactly; missing fields are
// filled by ApplyDefaults at the boundary, never rejected.
type Assessment struct {
	RiskCategory        string   `json:"risk_category"`
	Severity            string   `json:"severity"`
	RiskScore           int      `json:"risk_score"`
	Confidence          int      `json:"confidence"`
	ClauseType          string   `json:"clause_type"`
	PrimaryRisk         string   `json:"primary_risk"`
	DetailedExplanation string   `json:"detailed_explanation"`
	SpecificConcerns    []string `json:"specific_concerns"`
	ImpactIfTriggered   string   `json:"impact_if_triggered"`
	Likelihood          string   `json:"likelihood"`
	Recommendation      string   `json:"recommendation"`
	AlternativeLanguage string   `json:"alternative_language"`
	RedFlags            []string `json:"red_flags"`
	MitigatingFactors   []string `json:"mitigating_factors"`
	PositiveElements    []string `json:"positive_elements"`
	NegotiationPriority string   `json:"negotiation_priority"`
	MarketComparison    string   `json:"market_comparison"`
}

// ApplyDefaults fills safe values for anything the external analyzer left
// out or set out of range.
func (a *Assessment) ApplyDefaults() {
	if a.ClauseType == "" {
		a.ClauseType = "unknown"
	}
	if a.RiskScore < 0 {
		a.RiskScore = 0
	}
	if a.RiskScore > 100 {
		a.RiskScore = 100
	}
	if a.Confidence <= 0 {
		a.Confidence = 70
	}
	if a.Confidence > 100 {
		a.Confidence = 100
	}
	if a.PrimaryRisk == "" {
		a.PrimaryRisk = "Risk identified"
	}
	if a.Likelihood == "" {
		a.Likelihood = "MEDIUM"
	}
	if a.Recommendation == "" {
		a.Recommendation = "Review this clause carefully"
	}
	if a.Severity == "" {
		a.Severity = "MEDIUM"
	}
}

// ClauseRisk converts the assessment into the canonical per-clause entity.
func (a *Assessment) ClauseRisk(clauseID, clauseText string, matches []models.KeywordMatch) *models.ClauseRisk {
	a.ApplyDefaults()
	return &models.ClauseRisk{
		ClauseID:            clauseID,
		ClauseText:          clauseText,
		ClauseType:          a.ClauseType,
		Category:            models.ParseCategory(a.RiskCategory),
		Severity:            models.ParseSeverity(a.Severity),
		Score:               a.RiskScore,
		Confidence:          a.Confidence,
		PrimaryRisk:         a.PrimaryRisk,
		DetailedExplanation: a.DetailedExplanation,
		SpecificConcerns:    a.SpecificConcerns,
		ImpactIfTriggered:   a.ImpactIfTriggered,
		Likelihood:          a.Likelihood,
		Recommendation:      a.Recommendation,
		AlternativeLanguage: a.AlternativeLanguage,
		RedFlags:            a.RedFlags,
		MitigatingFactors:   a.MitigatingFactors,
		PositiveElements:    a.PositiveElements,
		KeywordMatches:      matches,
		AIAnalyzed:          true,
		AnalyzedAt:          time.Now(),
	}
}

// MustAddressItem is one urgent issue in a document summary.
type MustAddressItem struct {
	Clause  string `json:"clause"`
	Issue   string `json:"issue"`
	Urgency string `json:"urgency"`
}

// Summary is the document-level narrative an external analyzer can produce.
type Summary struct {
	OverallRiskLevel       string            `json:"overall_risk_level"`
	OverallScore           int               `json:"overall_score"`
	ExecutiveSummary       string            `json:"executive_summary"`
	MustAddressImmediately []MustAddressItem `json:"must_address_immediately"`
	ShouldNegotiate        []string          `json:"should_negotiate"`
	AcceptableAsIs         []string          `json:"acceptable_as_is"`
	DealBreakers           []string          `json:"deal_breakers"`
	OverallFavorability    string            `json:"overall_favorability"`
	ComparisonToMarket     string            `json:"comparison_to_market"`
	ActionPlan             []string          `json:"action_plan"`
	RiskPatterns           []string          `json:"risk_patterns"`
	KeyStrengths           []string          `json:"key_strengths"`
}

// MarketComparison benchmarks one clause against industry norms.
type MarketComparison struct {
	IndustryStandard     string `json:"industry_standard"`
	ThisContractPosition string `json:"this_contract_position"`
	Favorability         string `json:"favorability"`
	NegotiationLeverage  string `json:"negotiation_leverage"`
	MarketData           string `json:"market_data"`
	PrecedentExamples    string `json:"precedent_examples"`
	Recommendation       string `json:"recommendation"`
}

// Analyzer is the external deep-analysis collaborator. Implementations must
// be safe for concurrent use; every method respects context cancellation.
type Analyzer interface {
	// Name identifies the driver for logging.
	Name() string

	// AnalyzeClause performs deep analysis of a single clause.
	AnalyzeClause(ctx context.Context, clauseID, clauseText string, actx Context, matches []models.KeywordMatch) (*Assessment, error)

	// SummarizeDocument produces an executive summary across all clause
	// risks.
	SummarizeDocument(ctx context.Context, risks []*models.ClauseRisk, actx Context) (*Summary, error)

	// CompareToMarket benchmarks a clause against industry standards.
	CompareToMarket(ctx context.Context, clauseText, clauseType, industry string) (*MarketComparison, error)
}
