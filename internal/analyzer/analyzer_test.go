package analyzer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveat-dev/caveat/internal/models"
)

func TestAssessmentApplyDefaults(t *testing.T) {
	t.Run("empty assessment gets safe values", func(t *testing.T) {
		var a Assessment
		a.ApplyDefaults()

		assert.Equal(t, "unknown", a.ClauseType)
		assert.Equal(t, 70, a.Confidence)
		assert.Equal(t, "Risk identified", a.PrimaryRisk)
		assert.Equal(t, "MEDIUM", a.Likelihood)
		assert.Equal(t, "Review this clause carefully", a.Recommendation)
		assert.Equal(t, "MEDIUM", a.Severity)
	})

	t.Run("out of range scores clamped", func(t *testing.T) {
		a := Assessment{RiskScore: 150, Confidence: 300}
		a.ApplyDefaults()
		assert.Equal(t, 100, a.RiskScore)
		assert.Equal(t, 100, a.Confidence)

		a = Assessment{RiskScore: -5}
		a.ApplyDefaults()
		assert.Equal(t, 0, a.RiskScore)
	})

	t.Run("populated fields untouched", func(t *testing.T) {
		a := Assessment{
			ClauseType:  "indemnification",
			RiskScore:   82,
			Confidence:  90,
			PrimaryRisk: "Unlimited indemnity",
			Severity:    "HIGH",
		}
		a.ApplyDefaults()
		assert.Equal(t, "indemnification", a.ClauseType)
		assert.Equal(t, 82, a.RiskScore)
		assert.Equal(t, 90, a.Confidence)
	})
}

func TestAssessmentPartialJSON(t *testing.T) {
	// Malformed external output with missing fields fills with defaults,
	// never rejects.
	raw := `{"risk_category": "legal_liability", "risk_score": 75}`

	var a Assessment
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	risk := a.ClauseRisk("c1", "clause text", nil)
	assert.Equal(t, models.CategoryLegalLiability, risk.Category)
	assert.Equal(t, 75, risk.Score)
	assert.Equal(t, models.SeverityMedium, risk.Severity)
	assert.True(t, risk.AIAnalyzed)
	assert.NotEmpty(t, risk.Recommendation)
}

func TestAssessmentClauseRisk_UnknownCategory(t *testing.T) {
	a := Assessment{RiskCategory: "astrology", Severity: "HIGH", RiskScore: 60}
	risk := a.ClauseRisk("c1", "text", nil)
	assert.Equal(t, models.CategoryUnknown, risk.Category)
	assert.Equal(t, models.SeverityHigh, risk.Severity)
}

func TestFallbackClauseRisk(t *testing.T) {
	t.Run("no matches", func(t *testing.T) {
		risk := FallbackClauseRisk("c1", "some text", nil)
		assert.Equal(t, models.CategoryUnknown, risk.Category)
		assert.Equal(t, 30, risk.Score)
		assert.Equal(t, 40, risk.Confidence)
		assert.False(t, risk.AIAnalyzed)
		assert.Equal(t, "General Clause", risk.ClauseType)
	})

	t.Run("category from dominant matches", func(t *testing.T) {
		matches := []models.KeywordMatch{
			{Keyword: "shall indemnify", Category: models.CategoryLegalLiability, Weight: 2.0},
			{Keyword: "hold harmless", Category: models.CategoryLegalLiability, Weight: 2.0},
			{Keyword: "penalty", Category: models.CategoryFinancial, Weight: 1.5},
		}
		risk := FallbackClauseRisk("c1", "text", matches)
		assert.Equal(t, models.CategoryLegalLiability, risk.Category)
		// score = min(100, total weight x 15), truncated
		assert.Equal(t, 82, risk.Score)
		assert.Equal(t, 40, risk.Confidence)
	})

	t.Run("score capped at 100", func(t *testing.T) {
		matches := []models.KeywordMatch{
			{Keyword: "unlimited liability", Category: models.CategoryFinancial, Weight: 3.0},
			{Keyword: "no cap", Category: models.CategoryFinancial, Weight: 2.5},
			{Keyword: "uncapped", Category: models.CategoryFinancial, Weight: 2.5},
		}
		risk := FallbackClauseRisk("c1", "text", matches)
		assert.Equal(t, 100, risk.Score)
		assert.Equal(t, models.SeverityCritical, risk.Severity)
	})

	t.Run("red flags carried through", func(t *testing.T) {
		matches := []models.KeywordMatch{
			{Keyword: "waive all claims", Category: models.CategoryLegalLiability, Weight: 3.0},
			{Keyword: "penalty", Category: models.CategoryFinancial, Weight: 1.5},
		}
		risk := FallbackClauseRisk("c1", "text", matches)
		assert.Equal(t, []string{"waive all claims"}, risk.RedFlags)
	})
}

func TestFallbackSummary(t *testing.T) {
	risks := []*models.ClauseRisk{
		{ClauseID: "a", Score: 95, Severity: models.SeverityCritical, PrimaryRisk: "bad"},
		{ClauseID: "b", Score: 65, Severity: models.SeverityHigh, PrimaryRisk: "risky"},
		{ClauseID: "c", Score: 20, Severity: models.SeverityLow, PrimaryRisk: "fine"},
	}

	summary := FallbackSummary(risks, "driver offline")
	assert.Equal(t, "CRITICAL", summary.OverallRiskLevel)
	assert.Equal(t, 60, summary.OverallScore)
	assert.Contains(t, summary.ExecutiveSummary, "driver offline")
	require.Len(t, summary.MustAddressImmediately, 1)
	assert.Equal(t, "a", summary.MustAddressImmediately[0].Clause)
	assert.Equal(t, []string{"b"}, summary.ShouldNegotiate)
	assert.Equal(t, []string{"c"}, summary.AcceptableAsIs)
	assert.Equal(t, []string{"a"}, summary.DealBreakers)
	assert.Equal(t, models.FavorabilityUnknown, summary.OverallFavorability)
	assert.NotEmpty(t, summary.ActionPlan)
}

func TestDriverRegistry(t *testing.T) {
	reg := NewDriverRegistry()

	_, err := reg.Get("missing", DriverConfig{})
	require.Error(t, err)
	var notFound *DriverNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Name)

	reg.Register("stub", func(_ DriverConfig) (Analyzer, error) { return nil, nil })
	assert.Contains(t, reg.Names(), "stub")
	_, err = reg.Get("stub", DriverConfig{})
	assert.NoError(t, err)
}

func TestNewOpenAIDriverRequiresKey(t *testing.T) {
	_, err := NewOpenAIDriver(DriverConfig{})
	assert.Error(t, err)

	d, err := NewOpenAIDriver(DriverConfig{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, "openai", d.Name())
}

func TestDefaultRegistryHasOpenAI(t *testing.T) {
	assert.Contains(t, DefaultRegistry.Names(), "openai")
}

func TestBuildClausePrompt(t *testing.T) {
	matches := []models.KeywordMatch{{Keyword: "unlimited liability", Weight: 3.0}}
	prompt := buildClausePrompt("Customer accepts unlimited liability.", DefaultContext(), matches)

	assert.Contains(t, prompt, "Customer accepts unlimited liability.")
	assert.Contains(t, prompt, "unlimited liability")
	assert.Contains(t, prompt, "risk_category")
	assert.Contains(t, prompt, "party_reviewing")
}
