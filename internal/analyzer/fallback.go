package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/caveat-dev/caveat/internal/models"
)

// FallbackClauseRisk builds a deterministic clause risk when no external
// analyzer is reachable. Confidence stays low and AIAnalyzed is false so
// downstream consumers can tell the paths apart.
func FallbackClauseRisk(clauseID, clauseText string, matches []models.KeywordMatch) *models.ClauseRisk {
	category := models.CategoryUnknown
	score := 30

	if len(matches) > 0 {
		counts := make(map[models.RiskCategory]int)
		for _, km := range matches {
			counts[km.Category]++
		}
		best := 0
		for c, n := range counts {
			if n > best || (n == best && (category == models.CategoryUnknown || c < category)) {
				best = n
				category = c
			}
		}

		totalWeight := 0.0
		for _, km := range matches {
			totalWeight += km.Weight
		}
		score = int(totalWeight * 15)
		if score > 100 {
			score = 100
		}
	}

	clauseType := "General Clause"
	if category != models.CategoryUnknown {
		clauseType = category.Title()
	}

	concerns := make([]string, 0, 5)
	for _, km := range matches {
		if len(concerns) == 5 {
			break
		}
		concerns = append(concerns, km.Keyword)
	}
	var redFlags []string
	for _, km := range matches {
		if km.Weight >= models.RedFlagWeight {
			redFlags = append(redFlags, km.Keyword)
		}
	}

	return &models.ClauseRisk{
		ClauseID:   clauseID,
		ClauseText: clauseText,
		ClauseType: clauseType,
		Category:   category,
		Severity:   models.SeverityFromScore(score),
		Score:      score,
		Confidence: 40,
		PrimaryRisk: fmt.Sprintf("Risk indicators detected in this %s clause",
			category.Words()),
		DetailedExplanation: fmt.Sprintf(
			"This clause contains keywords typically associated with %s risks. "+
				"Deep analysis was not available. Consider professional review.",
			category.Words()),
		SpecificConcerns:  concerns,
		ImpactIfTriggered: "Requires professional assessment to determine specific impact",
		Likelihood:        "MEDIUM",
		Recommendation:    "Review this clause carefully and consult a legal professional if concerned",
		RedFlags:          redFlags,
		KeywordMatches:    matches,
		AIAnalyzed:        false,
		AnalyzedAt:        time.Now(),
	}
}

// FallbackSummary builds a document summary from clause statistics alone.
func FallbackSummary(risks []*models.ClauseRisk, cause string) *Summary {
	avg := 50.0
	if len(risks) > 0 {
		sum := 0
		for _, r := range risks {
			sum += r.Score
		}
		avg = float64(sum) / float64(len(risks))
	}

	criticalCount := 0
	highCount := 0
	for _, r := range risks {
		switch r.Severity {
		case models.SeverityCritical:
			criticalCount++
		case models.SeverityHigh:
			highCount++
		}
	}

	var level string
	switch {
	case criticalCount > 0:
		level = "CRITICAL"
	case highCount > 2:
		level = "HIGH"
	case avg > 50:
		level = "MEDIUM"
	default:
		level = "LOW"
	}

	sorted := make([]*models.ClauseRisk, len(risks))
	copy(sorted, risks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	var mustAddress []MustAddressItem
	for i, r := range sorted {
		if i == 3 {
			break
		}
		if r.Score >= 70 {
			mustAddress = append(mustAddress, MustAddressItem{
				Clause:  r.ClauseID,
				Issue:   r.PrimaryRisk,
				Urgency: "High score detected",
			})
		}
	}

	var shouldNegotiate []string
	for _, r := range sorted {
		if r.Score >= 50 && r.Score < 70 {
			shouldNegotiate = append(shouldNegotiate, r.ClauseID)
		}
	}
	var acceptable, dealBreakers []string
	for _, r := range risks {
		if r.Score < 30 {
			acceptable = append(acceptable, r.ClauseID)
		}
		if r.Score >= 90 {
			dealBreakers = append(dealBreakers, r.ClauseID)
		}
	}

	return &Summary{
		OverallRiskLevel: level,
		OverallScore:     int(avg),
		ExecutiveSummary: fmt.Sprintf(
			"Summary generation unavailable (%s). Manual review recommended. Found %d critical and %d high-risk clauses.",
			cause, criticalCount, highCount),
		MustAddressImmediately: mustAddress,
		ShouldNegotiate:        shouldNegotiate,
		AcceptableAsIs:         acceptable,
		DealBreakers:           dealBreakers,
		OverallFavorability:    models.FavorabilityUnknown,
		ComparisonToMarket:     "Unable to determine without deep analysis",
		ActionPlan: []string{
			"1. Have a legal professional review critical clauses",
			"2. Negotiate high-risk items before signing",
			"3. Retry analysis when the deep analyzer is available",
		},
	}
}
