package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveat-dev/caveat/internal/analyzer"
	"github.com/caveat-dev/caveat/internal/metrics"
	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/pkg/logger"
)

const oneSidedContract = `1. Indemnification Obligations.
Customer shall indemnify, defend and hold harmless the Company from any and all claims,
damages, losses and liabilities without limitation. Customer must assume unlimited liability
for all losses arising under this agreement, and shall pay liquidated damages as determined
at the sole discretion of the Company. Customer waives all rights to contest such charges.

2. Termination Rights.
The Company may terminate this agreement at any time at its sole discretion with immediate
termination without cure period. Customer shall have no right to terminate and must continue
payment obligations in perpetuity. All fees are non-refundable and non-cancelable. Customer's
payment obligation is irrevocable, perpetual and unconditional, and the Company may at its
option suspend services without recourse.

3. Limitation of Remedies.
Customer waives all rights to consequential damages and agrees to binding arbitration.
Customer shall reimburse the Company for all attorney fees and costs without limitation,
and must maintain insurance naming the Company as sole beneficiary at Customer's expense.

4. Intellectual Property.
Customer hereby assigns all right, title, and interest in any work product, feedback, or
derivative works to the Company on an exclusive, perpetual, worldwide basis without royalty.`

const balancedContract = `1. Mutual Obligations.
Each party shall perform its obligations under this agreement in a commercially reasonable
manner. The parties agree to cooperate in good faith to resolve any operational issues that
may arise during the term of this agreement.

2. Termination for Convenience.
Either party may terminate this agreement upon sixty days prior written notice to the other
party. Upon termination, each party shall return all materials belonging to the other party
in accordance with standard industry practice.

3. Governing Law.
This agreement shall be governed by the laws of the state in which the services are
performed, subject to customary and reasonable exceptions agreed by both parties.`

type stubAnalyzer struct {
	assessment *analyzer.Assessment
	summary    *analyzer.Summary
	err        error
	calls      atomic.Int32
}

func (s *stubAnalyzer) Name() string { return "stub" }

func (s *stubAnalyzer) AnalyzeClause(_ context.Context, _, _ string, _ analyzer.Context, _ []models.KeywordMatch) (*analyzer.Assessment, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	a := *s.assessment
	return &a, nil
}

func (s *stubAnalyzer) SummarizeDocument(_ context.Context, _ []*models.ClauseRisk, _ analyzer.Context) (*analyzer.Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func (s *stubAnalyzer) CompareToMarket(_ context.Context, _, _, _ string) (*analyzer.MarketComparison, error) {
	return nil, errors.New("not implemented")
}

func newTestEngine(a analyzer.Analyzer) *Engine {
	return New(Options{
		Analyzer:      a,
		Logger:        logger.NewMockLogger(),
		Workers:       2,
		ClauseTimeout: 5 * time.Second,
	})
}

func TestAnalyzeDocument_OneSidedContract(t *testing.T) {
	e := newTestEngine(nil)

	doc, err := e.AnalyzeDocument(context.Background(), oneSidedContract, "one_sided.txt", analyzer.DefaultContext())
	require.NoError(t, err)
	require.NotEmpty(t, doc.ClauseRisks)

	assert.Greater(t, doc.RiskSummary.OverallScore, 60)

	dist := doc.RiskSummary.Distribution
	assert.GreaterOrEqual(t, dist.Critical+dist.High, 2)
}

func TestAnalyzeDocument_BalancedContract(t *testing.T) {
	e := newTestEngine(nil)

	doc, err := e.AnalyzeDocument(context.Background(), balancedContract, "balanced.txt", analyzer.DefaultContext())
	require.NoError(t, err)
	require.NotEmpty(t, doc.ClauseRisks)

	assert.Less(t, doc.RiskSummary.OverallScore, 60)

	acceptable := 0
	for _, r := range doc.ClauseRisks {
		if r.Severity == models.SeverityLow {
			acceptable++
		}
	}
	assert.GreaterOrEqual(t, acceptable, 1)
}

func TestAnalyzeDocument_EmptyDocument(t *testing.T) {
	e := newTestEngine(nil)

	doc, err := e.AnalyzeDocument(context.Background(), "   \n\n  ", "empty.txt", analyzer.DefaultContext())
	require.NoError(t, err)

	assert.Equal(t, 0, doc.RiskSummary.OverallScore)
	assert.Equal(t, models.SeverityLow, doc.RiskSummary.OverallLevel)
	assert.NotEmpty(t, doc.ActionPlan)
	assert.Empty(t, doc.ClauseRisks)
}

func TestAnalyzeDocument_ClausesStayInDocumentOrder(t *testing.T) {
	e := newTestEngine(nil)

	doc, err := e.AnalyzeDocument(context.Background(), oneSidedContract, "ordered.txt", analyzer.DefaultContext())
	require.NoError(t, err)
	require.Greater(t, len(doc.ClauseRisks), 1)

	for i := 1; i < len(doc.ClauseRisks); i++ {
		assert.Less(t, doc.ClauseRisks[i-1].ClauseID, doc.ClauseRisks[i].ClauseID,
			"clause order must match document order")
	}
}

func TestAnalyzeDocument_ExternalAnalyzerBlendsScores(t *testing.T) {
	stub := &stubAnalyzer{
		assessment: &analyzer.Assessment{
			RiskCategory:     "legal_liability",
			RiskScore:        95,
			ClauseType:       "indemnification",
			PrimaryRisk:      "Uncapped indemnity obligation",
			MarketComparison: "This clause is extreme compared to market norms",
		},
		summary: &analyzer.Summary{ExecutiveSummary: "External summary."},
	}
	e := newTestEngine(stub)

	doc, err := e.AnalyzeDocument(context.Background(), oneSidedContract, "ai.txt", analyzer.DefaultContext())
	require.NoError(t, err)
	require.NotEmpty(t, doc.ClauseRisks)
	assert.Positive(t, stub.calls.Load())

	aiAnalyzed := 0
	for _, r := range doc.ClauseRisks {
		if r.AIAnalyzed {
			aiAnalyzed++
			assert.GreaterOrEqual(t, r.Score, 0)
			assert.LessOrEqual(t, r.Score, 100)
			assert.Equal(t, "Uncapped indemnity obligation", r.PrimaryRisk)
		}
	}
	assert.Positive(t, aiAnalyzed)
	assert.Equal(t, "External summary.", doc.ExecutiveSummary)
}

func TestAnalyzeDocument_AnalyzerFailureFallsBackToRules(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("model unavailable")}
	e := newTestEngine(stub)

	doc, err := e.AnalyzeDocument(context.Background(), oneSidedContract, "fallback.txt", analyzer.DefaultContext())
	require.NoError(t, err)
	require.NotEmpty(t, doc.ClauseRisks)

	for _, r := range doc.ClauseRisks {
		assert.False(t, r.AIAnalyzed)
		assert.Positive(t, r.Confidence)
		if len(r.KeywordMatches) > 0 {
			assert.LessOrEqual(t, r.Confidence, 40,
				"confidence after an analyzer failure must stay capped")
		}
	}
	assert.Contains(t, doc.ExecutiveSummary, "Summary generation unavailable")

	// Without a configured analyzer the same clauses score rule-based
	// with full confidence.
	plain, err := newTestEngine(nil).AnalyzeDocument(context.Background(), oneSidedContract, "fallback.txt", analyzer.DefaultContext())
	require.NoError(t, err)
	uncapped := false
	for _, r := range plain.ClauseRisks {
		if r.Confidence > 40 {
			uncapped = true
		}
	}
	assert.True(t, uncapped)
}

func TestAnalyzeDocument_CanceledContextStillProducesReport(t *testing.T) {
	stub := &stubAnalyzer{err: context.Canceled}
	e := newTestEngine(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc, err := e.AnalyzeDocument(ctx, oneSidedContract, "canceled.txt", analyzer.DefaultContext())
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ClauseRisks)
	for _, r := range doc.ClauseRisks {
		assert.False(t, r.AIAnalyzed)
	}
}

func TestAnalyzeClause_Single(t *testing.T) {
	e := newTestEngine(nil)

	clauseText := "Customer shall indemnify and hold harmless the Company from any and all claims " +
		"with unlimited liability and without limitation."
	risk := e.AnalyzeClause(context.Background(), clauseText, analyzer.DefaultContext())

	require.NotNil(t, risk)
	assert.Equal(t, "single_clause", risk.ClauseID)
	assert.Equal(t, "indemnification", risk.ClauseType)
	assert.False(t, risk.AIAnalyzed)
	assert.Greater(t, risk.Score, 30)
}

func TestAnalyzeClause_CriticalPhraseSetsCategory(t *testing.T) {
	e := newTestEngine(nil)

	// "waives all rights" is a critical phrase but not a catalog keyword,
	// so the clause carries no matches to infer a category from.
	clauseText := "The undersigned waives all rights of appeal in connection with this section."
	risk := e.AnalyzeClause(context.Background(), clauseText, analyzer.DefaultContext())

	require.NotNil(t, risk)
	assert.Empty(t, risk.KeywordMatches)
	assert.Equal(t, models.CategoryLegalLiability, risk.Category)
}

func TestQuickScan(t *testing.T) {
	e := newTestEngine(nil)

	result := e.QuickScan(oneSidedContract)
	assert.Positive(t, result.TotalMatches)
	assert.NotEmpty(t, result.RedFlags)
}

func TestAnalyzeDocument_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	e := New(Options{
		Metrics: m,
		Logger:  logger.NewMockLogger(),
	})

	_, err := e.AnalyzeDocument(context.Background(), oneSidedContract, "metrics.txt", analyzer.DefaultContext())
	require.NoError(t, err)

	assert.Positive(t, testutil.ToFloat64(m.ClausesScored.WithLabelValues(metrics.ModeRuleBased)))
}

func TestRuleBasedAnalysis_CleanClause(t *testing.T) {
	e := newTestEngine(nil)

	risk := e.AnalyzeClause(context.Background(),
		"The parties agree to meet quarterly to review service levels.", analyzer.DefaultContext())

	assert.Equal(t, models.SeverityLow, risk.Severity)
	assert.Equal(t, "Standard clause with minimal detected risk", risk.PrimaryRisk)
	assert.Empty(t, risk.RedFlags)
}

func TestDominantCategory_TieBreaksDeterministically(t *testing.T) {
	matches := []models.KeywordMatch{
		{Keyword: "penalty", Category: models.CategoryFinancial, Weight: 2.0},
		{Keyword: "terminate", Category: models.CategoryTermination, Weight: 2.0},
	}

	first := dominantCategory(matches)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, dominantCategory(matches))
	}
}

func TestInferClauseType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Customer shall indemnify and hold harmless the Company", "indemnification"},
		{"Liability for damages is capped at the fees paid", "liability"},
		{"Either party may terminate upon notice", "termination"},
		{"All confidential information shall remain secret", "confidentiality"},
		{"Disputes resolved by binding arbitration", "dispute_resolution"},
		{"The quick brown fox jumps over the lazy dog", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inferClauseType(tt.text), tt.text)
	}
}
