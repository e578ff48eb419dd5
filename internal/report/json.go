package report

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/pkg/logger"
)

// jsonFormat renders the machine-readable JSON export.
type jsonFormat struct {
	logger logger.Logger
}

func (f *jsonFormat) Name() string { return "json" }

func (f *jsonFormat) Description() string {
	return "Structured JSON export for downstream tooling"
}

type jsonMetadata struct {
	Filename              string  `json:"filename"`
	Pages                 int     `json:"pages"`
	ClausesAnalyzed       int     `json:"clauses_analyzed"`
	AnalysisTimestamp     string  `json:"analysis_timestamp"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
}

type jsonDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

type jsonRiskSummary struct {
	OverallScore   int              `json:"overall_score"`
	OverallLevel   string           `json:"overall_level"`
	Distribution   jsonDistribution `json:"distribution"`
	Favorability   string           `json:"favorability"`
	Recommendation string           `json:"recommendation"`
}

type jsonTopRisk struct {
	Rank            int    `json:"rank"`
	ClauseID        string `json:"clause_id"`
	ClauseReference string `json:"clause_reference"`
	Score           int    `json:"score"`
	Issue           string `json:"issue"`
	Action          string `json:"action"`
}

type jsonCategory struct {
	Count    int     `json:"count"`
	AvgScore float64 `json:"avg_score"`
	Highest  int     `json:"highest"`
}

type jsonActionItem struct {
	Priority int    `json:"priority"`
	Clause   string `json:"clause"`
	Issue    string `json:"issue"`
	Urgency  string `json:"urgency"`
	Action   string `json:"action"`
}

type jsonReport struct {
	DocumentMetadata       jsonMetadata            `json:"document_metadata"`
	RiskSummary            jsonRiskSummary         `json:"risk_summary"`
	ExecutiveSummary       string                  `json:"executive_summary"`
	TopRisks               []jsonTopRisk           `json:"top_risks"`
	Categories             map[string]jsonCategory `json:"categories"`
	MustAddressImmediately []jsonActionItem        `json:"must_address_immediately"`
	ShouldNegotiate        []string                `json:"should_negotiate"`
	AcceptableAsIs         []string                `json:"acceptable_as_is"`
	DealBreakers           []string                `json:"deal_breakers"`
	OverallFavorability    string                  `json:"overall_favorability"`
	ComparisonToMarket     string                  `json:"comparison_to_market"`
	ActionPlan             []string                `json:"action_plan"`
}

func (f *jsonFormat) Render(doc *models.DocumentRisk) ([]byte, error) {
	f.logger.Debug("rendering json report",
		"document", doc.Metadata.Filename,
		"clauses", len(doc.ClauseRisks))

	out := jsonReport{
		DocumentMetadata: jsonMetadata{
			Filename:              doc.Metadata.Filename,
			Pages:                 doc.Metadata.Pages,
			ClausesAnalyzed:       doc.Metadata.ClausesScanned,
			AnalysisTimestamp:     doc.Metadata.AnalyzedAt.Format("2006-01-02T15:04:05Z07:00"),
			ProcessingTimeSeconds: doc.Metadata.ProcessingTime.Seconds(),
		},
		RiskSummary: jsonRiskSummary{
			OverallScore: doc.RiskSummary.OverallScore,
			OverallLevel: strings.ToUpper(string(doc.RiskSummary.OverallLevel)),
			Distribution: jsonDistribution{
				Critical: doc.RiskSummary.Distribution.Critical,
				High:     doc.RiskSummary.Distribution.High,
				Medium:   doc.RiskSummary.Distribution.Medium,
				Low:      doc.RiskSummary.Distribution.Low,
			},
			Favorability:   doc.RiskSummary.Favorability,
			Recommendation: doc.RiskSummary.Recommendation,
		},
		ExecutiveSummary:    doc.ExecutiveSummary,
		TopRisks:            make([]jsonTopRisk, 0, len(doc.TopRisks)),
		Categories:          make(map[string]jsonCategory, len(doc.CategorySummaries)),
		ShouldNegotiate:     emptyIfNil(doc.ShouldNegotiate),
		AcceptableAsIs:      emptyIfNil(doc.AcceptableAsIs),
		DealBreakers:        emptyIfNil(doc.DealBreakers),
		OverallFavorability: doc.OverallFavorability,
		ComparisonToMarket:  doc.ComparisonToMarket,
		ActionPlan:          emptyIfNil(doc.ActionPlan),
	}

	for _, r := range doc.TopRisks {
		out.TopRisks = append(out.TopRisks, jsonTopRisk{
			Rank:            r.Rank,
			ClauseID:        r.ClauseID,
			ClauseReference: r.ClauseReference,
			Score:           r.Score,
			Issue:           r.Issue,
			Action:          r.Action,
		})
	}

	for category, summary := range doc.CategorySummaries {
		out.Categories[string(category)] = jsonCategory{
			Count:    summary.Count,
			AvgScore: math.Round(summary.AverageScore*10) / 10,
			Highest:  summary.HighestScore,
		}
	}

	out.MustAddressImmediately = make([]jsonActionItem, 0, len(doc.MustAddressImmediately))
	for _, a := range doc.MustAddressImmediately {
		out.MustAddressImmediately = append(out.MustAddressImmediately, jsonActionItem{
			Priority: a.Priority,
			Clause:   a.ClauseReference,
			Issue:    a.Issue,
			Urgency:  a.Urgency,
			Action:   a.Action,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
