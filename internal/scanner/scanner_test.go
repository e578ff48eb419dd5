package scanner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caveat-dev/caveat/internal/models"
)

const riskyClause = `Customer shall indemnify and hold harmless Vendor from any and all claims,
damages, and losses without limitation. This obligation is irrevocable and survives
termination in perpetuity. All disputes shall be resolved through binding arbitration in Singapore.`

const benignClause = `Both parties agree to cooperate in good faith. Either party may terminate
for convenience upon thirty days written notice. Liability under this agreement is capped at
the fees paid in the preceding twelve months, and obligations are mutual and reciprocal.`

func TestScanDocument_RiskyText(t *testing.T) {
	s := New(nil)
	result := s.ScanDocument(riskyClause)

	assert.Greater(t, result.TotalMatches, 0)
	assert.NotEmpty(t, result.RedFlags)
	assert.NotEmpty(t, result.CategoryCounts)
	assert.Contains(t, []models.Severity{models.SeverityHigh, models.SeverityCritical}, result.EstimatedRiskLevel)
}

func TestScanDocument_BenignText(t *testing.T) {
	s := New(nil)
	result := s.ScanDocument("The weather was pleasant and the meeting adjourned at noon.")

	assert.Zero(t, result.TotalMatches)
	assert.Empty(t, result.RedFlags)
	assert.Equal(t, models.SeverityLow, result.EstimatedRiskLevel)
	assert.Empty(t, result.ClausesToDeepAnalyze)
}

func TestScanDocument_StructuralPatterns(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name     string
		text     string
		category models.RiskCategory
	}{
		{
			name:     "one-sided indemnification",
			text:     "Customer shall indemnify Provider against losses.",
			category: models.CategoryLegalLiability,
		},
		{
			name:     "any and all claims",
			text:     "Provider is released from any and all claims arising hereunder.",
			category: models.CategoryFinancial,
		},
		{
			name:     "distant arbitration venue",
			text:     "Disputes are settled by binding arbitration in Hong Kong.",
			category: models.CategoryDisputeResolution,
		},
		{
			name:     "no cure period",
			text:     "Provider may effect immediate termination without cure for any breach.",
			category: models.CategoryTermination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.ScanDocument(tt.text)
			require.NotEmpty(t, result.RedFlags)

			found := false
			for _, rf := range result.RedFlags {
				if rf.Weight == models.StructuralFlagWeight && rf.Category == tt.category {
					found = true
				}
			}
			assert.True(t, found, "expected structural flag in category %s", tt.category)
		})
	}
}

func TestScanClause_SeverityBranches(t *testing.T) {
	s := New(nil)

	t.Run("structural flag forces critical", func(t *testing.T) {
		result := s.ScanClause("c1", "Customer shall indemnify Provider from losses.")
		assert.Equal(t, models.SeverityCritical, result.EstimatedSeverity)
		assert.True(t, result.NeedsDeepAnalysis)
	})

	t.Run("heavy weight without structural flag stays high", func(t *testing.T) {
		// Several elevated keywords but nothing at structural weight.
		text := "A termination fee and early termination fee apply. Auto-renewal occurs " +
			"with a 90 days notice requirement and a minimum term plus late fee and penalty."
		result := s.ScanClause("c2", text)
		if result.EstimatedSeverity == models.SeverityCritical {
			// Only acceptable if a structural-weight flag actually fired.
			hasCritical := false
			for _, rf := range result.RedFlags {
				if rf.Weight >= models.StructuralFlagWeight {
					hasCritical = true
				}
			}
			assert.True(t, hasCritical)
		}
	})

	t.Run("clean clause is low with no deep analysis", func(t *testing.T) {
		result := s.ScanClause("c3", "The parties will meet quarterly to review progress.")
		assert.Equal(t, models.SeverityLow, result.EstimatedSeverity)
		assert.False(t, result.NeedsDeepAnalysis)
	})
}

func TestScanClause_CategoryScoresAreWeightSums(t *testing.T) {
	s := New(nil)
	result := s.ScanClause("c1", riskyClause)

	require.NotEmpty(t, result.CategoryScores)
	total := 0.0
	for _, w := range result.CategoryScores {
		assert.Greater(t, w, 0.0)
		total += w
	}
	assert.Greater(t, total, 0.0)
}

func TestDeepAnalysisHandoff(t *testing.T) {
	s := New(nil)
	text := riskyClause + "\n\n" + "The office address for notices is listed on the signature page of this agreement." +
		"\n\n" + benignClause

	result := s.ScanDocument(text)
	require.NotEmpty(t, result.ClausesToDeepAnalyze)
	// The first paragraph carries the heavy matches.
	assert.Contains(t, result.ClausesToDeepAnalyze, "paragraph_0")
}

func TestHeatmapData(t *testing.T) {
	s := New(nil)
	result := s.ScanDocument(riskyClause)
	cells := HeatmapData(result)

	require.NotEmpty(t, cells)
	for i := 1; i < len(cells); i++ {
		assert.LessOrEqual(t, cells[i-1].Start, cells[i].Start, "cells must be position-sorted")
	}
	sawRedFlag := false
	for _, c := range cells {
		if c.IsRedFlag {
			sawRedFlag = true
		}
	}
	assert.True(t, sawRedFlag)
}

func TestSummarize(t *testing.T) {
	s := New(nil)
	result := s.ScanDocument(riskyClause)
	stats := Summarize(result)

	assert.Equal(t, result.TotalMatches, stats.TotalMatches)
	assert.Equal(t, len(result.RedFlags), stats.RedFlagCount)
	assert.Equal(t, result.EstimatedRiskLevel, stats.EstimatedRisk)
	assert.Equal(t, len(result.ClausesToDeepAnalyze), stats.NeedsDeepAnalysis)
	assert.Positive(t, stats.NeedsDeepAnalysis, "a risky clause should be queued for deep analysis")
	assert.NotEmpty(t, stats.SeverityDistribution)
}

func TestCriticalPhraseCategory(t *testing.T) {
	cat, ok := CriticalPhraseCategory("the obligation is irrevocable")
	assert.True(t, ok)
	assert.Equal(t, models.CategoryTermination, cat)

	_, ok = CriticalPhraseCategory("nothing interesting here")
	assert.False(t, ok)
}

func TestScanDocument_MultiPageUnderOneSecond(t *testing.T) {
	// Roughly a multi-page contract's worth of text.
	page := riskyClause + "\n\n" + benignClause + "\n\n"
	text := strings.Repeat(page, 40)
	require.Greater(t, len(text), 20000)

	s := New(nil)
	start := time.Now()
	result := s.ScanDocument(text)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second, "document scan took %v", elapsed)
	assert.Greater(t, result.TotalMatches, 0)
}

func BenchmarkScanDocument(b *testing.B) {
	page := riskyClause + "\n\n" + benignClause + "\n\n"
	text := strings.Repeat(page, 40)
	s := New(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ScanDocument(text)
	}
}

func BenchmarkScanClause(b *testing.B) {
	s := New(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ScanClause("bench", riskyClause)
	}
}
