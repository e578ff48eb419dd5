package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/pkg/logger"
)

func sampleDocument() *models.DocumentRisk {
	return &models.DocumentRisk{
		Metadata: models.DocumentMetadata{
			AnalyzedAt:     time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
			RunID:          "run-abc",
			Filename:       "vendor_agreement.txt",
			Pages:          3,
			ClausesScanned: 4,
			ProcessingTime: 420 * time.Millisecond,
		},
		RiskSummary: models.RiskSummary{
			OverallScore: 72,
			OverallLevel: models.SeverityHigh,
			Distribution: models.RiskDistribution{Critical: 1, High: 1, Medium: 1, Low: 1},
			Favorability: models.FavorabilitySlightlyUnfav,
			Recommendation: "Review high-risk clauses carefully before signing. " +
				"Negotiation strongly recommended.",
		},
		ExecutiveSummary: "This contract has significant risks that should be addressed before signing.",
		TopRisks: []models.TopRisk{
			{Rank: 1, ClauseID: "section_1", ClauseReference: "Indemnification - section_1",
				Score: 92, Issue: "Unlimited indemnification", Action: "Negotiate a cap"},
		},
		CategorySummaries: map[models.RiskCategory]models.CategorySummary{
			models.CategoryLegalLiability: {
				Category:     models.CategoryLegalLiability,
				Count:        2,
				AverageScore: 81.25,
				HighestScore: 92,
				Clauses:      []string{"section_1", "section_3"},
			},
		},
		MustAddressImmediately: []models.ActionItem{
			{Priority: 1, ClauseReference: "section_1", Issue: "Unlimited indemnification",
				Urgency: "Critical risk requiring immediate attention", Action: "Negotiate a cap",
				TalkingPoint: "We need to ensure liability is proportionate and mutual."},
		},
		ShouldNegotiate:     []string{"section_2"},
		AcceptableAsIs:      []string{"section_4"},
		DealBreakers:        []string{"section_1"},
		ComparisonToMarket:  "This contract is somewhat more restrictive than typical market agreements.",
		OverallFavorability: models.FavorabilitySlightlyUnfav,
		ActionPlan:          []string{"1. Address 1 critical issue(s) immediately: section_1"},
	}
}

func TestMarkdownReport(t *testing.T) {
	format, err := GetFormat("markdown", logger.NewMockLogger())
	require.NoError(t, err)

	data, err := format.Render(sampleDocument())
	require.NoError(t, err)
	md := string(data)

	assert.Contains(t, md, "# Risk Assessment Report")
	assert.Contains(t, md, "**Document:** vendor_agreement.txt")
	assert.Contains(t, md, "## Overall Risk: 🔶 HIGH")
	assert.Contains(t, md, "**Score:** 72/100")
	assert.Contains(t, md, "## Executive Summary")
	assert.Contains(t, md, "- 🚨 Critical: 1")
	assert.Contains(t, md, "## 🚨 Critical Issues (Must Address)")
	assert.Contains(t, md, "**Talking Point:**")
	assert.Contains(t, md, "### 1. Indemnification - section_1 (Score: 92/100)")
	assert.Contains(t, md, "## 📋 Action Plan")
	assert.Contains(t, md, "## ✅ Acceptable Terms")
}

func TestJSONReport(t *testing.T) {
	format, err := GetFormat("json", logger.NewMockLogger())
	require.NoError(t, err)

	data, err := format.Render(sampleDocument())
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	summary, ok := parsed["risk_summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(72), summary["overall_score"])
	assert.Equal(t, "HIGH", summary["overall_level"])

	dist, ok := summary["distribution"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), dist["critical"])

	meta, ok := parsed["document_metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "vendor_agreement.txt", meta["filename"])
	assert.InDelta(t, 0.42, meta["processing_time_seconds"], 0.001)

	cats, ok := parsed["categories"].(map[string]any)
	require.True(t, ok)
	liability, ok := cats["legal_liability"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 81.3, liability["avg_score"])

	assert.Equal(t, "slightly_unfavorable", parsed["overall_favorability"])
}

func TestJSONReport_EmptySlicesStayArrays(t *testing.T) {
	doc := sampleDocument()
	doc.ShouldNegotiate = nil
	doc.ActionPlan = nil

	format, err := GetFormat("json", logger.NewMockLogger())
	require.NoError(t, err)

	data, err := format.Render(doc)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.NotNil(t, parsed["should_negotiate"])
	assert.NotNil(t, parsed["action_plan"])
}

func TestListFormats(t *testing.T) {
	formats := ListFormats()
	assert.Contains(t, formats, "markdown")
	assert.Contains(t, formats, "json")
}

func TestGetFormat_Unknown(t *testing.T) {
	_, err := GetFormat("pdf", logger.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	err := WriteFile("markdown", sampleDocument(), path, logger.NewMockLogger())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Risk Assessment Report")
}
