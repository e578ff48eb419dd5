// Package aggregate combines clause-level risk assessments into a full
// document report: distribution, top risks, category summaries, prioritized
// action items, and pattern detection.
package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/caveat-dev/caveat/internal/analyzer"
	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/internal/scoring"
	"github.com/caveat-dev/caveat/pkg/logger"
)

// PatternAnalysis captures document-wide patterns across clauses.
type PatternAnalysis struct {
	Patterns         []string
	DominantCategory models.RiskCategory
	Favorability     string
	OneSidedCount    int
	MutualCount      int
}

// Metadata carries run facts the aggregator stamps onto the report.
type Metadata struct {
	RunID          string
	Filename       string
	Pages          int
	ProcessingTime time.Duration
}

// Aggregator rolls clause risks into one DocumentRisk.
type Aggregator struct {
	logger logger.Logger
}

// New creates an aggregator.
func New(log logger.Logger) *Aggregator {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Aggregator{logger: log}
}

// Aggregate builds the complete document assessment. summary, when non-nil,
// overrides the executive summary and market comparison with externally
// generated narrative. Zero clauses yield a well-formed empty report, never
// an error.
func (a *Aggregator) Aggregate(risks []models.ClauseRisk, meta Metadata, summary *analyzer.Summary) *models.DocumentRisk {
	if len(risks) == 0 {
		return a.emptyDocumentRisk(meta)
	}

	metadata := models.DocumentMetadata{
		AnalyzedAt:     time.Now(),
		RunID:          meta.RunID,
		Filename:       meta.Filename,
		Pages:          meta.Pages,
		ClausesScanned: len(risks),
		ProcessingTime: meta.ProcessingTime,
	}

	riskSummary := calculateRiskSummary(risks)
	topRisks := topRisks(risks, 10)
	categorySummaries := categorySummaries(risks)
	patterns := analyzePatterns(risks)

	mustAddress := mustAddressItems(risks)
	var shouldNegotiate, acceptable, dealBreakers []string
	for _, r := range risks {
		if r.Severity == models.SeverityHigh {
			shouldNegotiate = append(shouldNegotiate, r.ClauseID)
		}
		if r.Severity == models.SeverityLow && r.Score < 25 {
			acceptable = append(acceptable, r.ClauseID)
		}
		if r.Score >= 90 {
			dealBreakers = append(dealBreakers, r.ClauseID)
		}
	}

	a.logger.Debug("aggregated document risks",
		"clauses", len(risks),
		"overall_score", riskSummary.OverallScore,
		"overall_level", riskSummary.OverallLevel,
	)

	return &models.DocumentRisk{
		Metadata:               metadata,
		RiskSummary:            riskSummary,
		ExecutiveSummary:       executiveSummary(riskSummary, patterns, summary),
		ClauseRisks:            risks,
		TopRisks:               topRisks,
		CategorySummaries:      categorySummaries,
		MustAddressImmediately: mustAddress,
		ShouldNegotiate:        shouldNegotiate,
		AcceptableAsIs:         acceptable,
		DealBreakers:           dealBreakers,
		ComparisonToMarket:     marketComparison(risks, summary),
		OverallFavorability:    overallFavorability(risks),
		ActionPlan:             actionPlan(risks, mustAddress, shouldNegotiate),
	}
}

func calculateRiskSummary(risks []models.ClauseRisk) models.RiskSummary {
	scores := make([]int, 0, len(risks))
	var dist models.RiskDistribution
	for _, r := range risks {
		scores = append(scores, r.Score)
		switch r.Severity {
		case models.SeverityCritical:
			dist.Critical++
		case models.SeverityHigh:
			dist.High++
		case models.SeverityMedium:
			dist.Medium++
		case models.SeverityLow:
			dist.Low++
		}
	}

	overallScore := scoring.DocumentScore(scores)
	overallLevel := models.SeverityFromScore(overallScore)

	highRiskRatio := float64(dist.Critical+dist.High) / float64(len(risks))
	var favorability string
	switch {
	case highRiskRatio > 0.5:
		favorability = models.FavorabilityHeavilyAgainst
	case highRiskRatio > 0.3:
		favorability = models.FavorabilitySlightlyUnfav
	case highRiskRatio > 0.1:
		favorability = models.FavorabilityBalanced
	default:
		favorability = models.FavorabilityFavorable
	}

	var recommendation string
	switch overallLevel {
	case models.SeverityCritical:
		recommendation = "DO NOT SIGN without significant negotiation. Multiple critical issues detected."
	case models.SeverityHigh:
		recommendation = "Review high-risk clauses carefully before signing. Negotiation strongly recommended."
	case models.SeverityMedium:
		recommendation = "Generally acceptable with some concerns. Consider negotiating key points."
	default:
		recommendation = "Contract appears balanced. Standard terms with minimal risk."
	}

	return models.RiskSummary{
		OverallScore:   overallScore,
		OverallLevel:   overallLevel,
		Distribution:   dist,
		Favorability:   favorability,
		Recommendation: recommendation,
	}
}

func sortedByScore(risks []models.ClauseRisk) []models.ClauseRisk {
	sorted := make([]models.ClauseRisk, len(risks))
	copy(sorted, risks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	return sorted
}

func topRisks(risks []models.ClauseRisk, limit int) []models.TopRisk {
	sorted := sortedByScore(risks)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	var top []models.TopRisk
	for i, r := range sorted {
		if r.Score < 30 {
			continue
		}
		top = append(top, models.TopRisk{
			Rank:            i + 1,
			ClauseID:        r.ClauseID,
			ClauseReference: fmt.Sprintf("%s - %s", titleWords(r.ClauseType), r.ClauseID),
			Score:           r.Score,
			Issue:           r.PrimaryRisk,
			Action:          r.Recommendation,
		})
	}
	return top
}

func titleWords(s string) string {
	return models.RiskCategory(s).Title()
}

func categorySummaries(risks []models.ClauseRisk) map[models.RiskCategory]models.CategorySummary {
	type bucket struct {
		scores  []int
		clauses []string
	}
	buckets := make(map[models.RiskCategory]*bucket)
	for _, r := range risks {
		b, ok := buckets[r.Category]
		if !ok {
			b = &bucket{}
			buckets[r.Category] = b
		}
		b.scores = append(b.scores, r.Score)
		b.clauses = append(b.clauses, r.ClauseID)
	}

	summaries := make(map[models.RiskCategory]models.CategorySummary, len(buckets))
	for category, b := range buckets {
		sum, highest := 0, b.scores[0]
		for _, s := range b.scores {
			sum += s
			if s > highest {
				highest = s
			}
		}
		summaries[category] = models.CategorySummary{
			Category:     category,
			Count:        len(b.scores),
			AverageScore: float64(sum) / float64(len(b.scores)),
			HighestScore: highest,
			Clauses:      b.clauses,
		}
	}
	return summaries
}

func mustAddressItems(risks []models.ClauseRisk) []models.ActionItem {
	var critical []models.ClauseRisk
	for _, r := range risks {
		if r.Severity == models.SeverityCritical {
			critical = append(critical, r)
		}
	}
	sort.SliceStable(critical, func(i, j int) bool { return critical[i].Score > critical[j].Score })
	if len(critical) > 5 {
		critical = critical[:5]
	}

	items := make([]models.ActionItem, 0, len(critical))
	for i, r := range critical {
		items = append(items, models.ActionItem{
			Priority:        i + 1,
			ClauseReference: r.ClauseID,
			Issue:           r.PrimaryRisk,
			Urgency:         "Critical risk requiring immediate attention",
			Action:          r.Recommendation,
		})
	}
	return items
}

// ActionItems builds the full prioritized action list, medium risk and up.
func (a *Aggregator) ActionItems(risks []models.ClauseRisk) []models.ActionItem {
	sorted := sortedByScore(risks)

	var items []models.ActionItem
	for i, r := range sorted {
		if r.Score < 30 {
			continue
		}
		items = append(items, models.ActionItem{
			Priority:        i + 1,
			ClauseReference: r.ClauseID,
			Issue:           r.PrimaryRisk,
			Urgency:         urgency(r),
			Action:          r.Recommendation,
			TalkingPoint:    talkingPoint(r.Category),
		})
	}
	return items
}

func urgency(r models.ClauseRisk) string {
	switch r.Severity {
	case models.SeverityCritical:
		return "MUST address before signing - potential deal-breaker"
	case models.SeverityHigh:
		return "Should negotiate before signing"
	case models.SeverityMedium:
		return "Worth discussing but not critical"
	default:
		return "Low priority - standard clause"
	}
}

func talkingPoint(category models.RiskCategory) string {
	switch category {
	case models.CategoryFinancial:
		return "Industry standard is to cap financial exposure at 1-2x annual contract value."
	case models.CategoryLegalLiability:
		return "We need to ensure liability is proportionate and mutual."
	case models.CategoryTermination:
		return "We require reasonable termination rights for operational flexibility."
	case models.CategoryIntellectualProp:
		return "We need to retain ownership of our core IP and pre-existing materials."
	case models.CategoryConfidentiality:
		return "Confidentiality obligations should be mutual and time-limited."
	case models.CategoryDisputeResolution:
		return "We prefer mediation before arbitration, with a neutral venue."
	case models.CategoryCompliance:
		return "Compliance obligations should be clearly defined with reasonable scope."
	case models.CategoryOperational:
		return "We need reasonable flexibility in operational terms."
	default:
		return "This clause requires revision to be more balanced."
	}
}

func analyzePatterns(risks []models.ClauseRisk) PatternAnalysis {
	var patterns []string
	categoryCounts := make(map[models.RiskCategory]int)
	highRiskCategories := make(map[models.RiskCategory]int)

	for _, r := range risks {
		categoryCounts[r.Category]++
		if r.Score >= 60 {
			highRiskCategories[r.Category]++
		}
	}

	dominant := models.CategoryUnknown
	best := 0
	for c, n := range categoryCounts {
		if n > best {
			best = n
			dominant = c
		}
	}

	if len(highRiskCategories) > 0 {
		topCategory := models.CategoryUnknown
		topCount := 0
		for c, n := range highRiskCategories {
			if n > topCount {
				topCount = n
				topCategory = c
			}
		}
		if topCount >= 2 {
			patterns = append(patterns, fmt.Sprintf(
				"Multiple high-risk %s clauses detected - contract may be unfavorable in this area",
				topCategory))
		}
	}

	oneSided, mutual := 0, 0
	for _, r := range risks {
		if hasAnyFlag(r.RedFlags, "one-sided", "unilateral", "sole discretion") {
			oneSided++
		}
		if hasAnyFlag(r.MitigatingFactors, "mutual", "reciprocal", "balanced") {
			mutual++
		}
	}

	var favorability string
	switch {
	case oneSided > mutual*2:
		patterns = append(patterns, "Contract language is predominantly one-sided")
		favorability = models.FavorabilityHeavilyAgainst
	case oneSided > mutual:
		patterns = append(patterns, "Some clauses favor the other party")
		favorability = models.FavorabilitySlightlyUnfav
	case mutual > oneSided:
		patterns = append(patterns, "Contract contains balanced, mutual obligations")
		favorability = models.FavorabilityBalanced
	default:
		favorability = models.FavorabilityBalanced
	}

	var liability, termination []models.ClauseRisk
	for _, r := range risks {
		switch r.Category {
		case models.CategoryLegalLiability:
			liability = append(liability, r)
		case models.CategoryTermination:
			termination = append(termination, r)
		}
	}
	if len(liability) >= 3 && allScoreAtLeast(liability, 60) {
		patterns = append(patterns, "All liability clauses heavily favor the other party")
	}
	if len(termination) > 0 && allScoreAtLeast(termination, 50) {
		patterns = append(patterns, "Termination rights are restricted")
	}

	return PatternAnalysis{
		Patterns:         patterns,
		DominantCategory: dominant,
		Favorability:     favorability,
		OneSidedCount:    oneSided,
		MutualCount:      mutual,
	}
}

// hasAnyFlag reports whether any wanted label appears as a whole entry of
// flags. Longer keyword strings that merely contain a label do not count.
func hasAnyFlag(flags []string, wanted ...string) bool {
	for _, f := range flags {
		lower := strings.ToLower(strings.TrimSpace(f))
		for _, w := range wanted {
			if lower == w {
				return true
			}
		}
	}
	return false
}

func allScoreAtLeast(risks []models.ClauseRisk, min int) bool {
	for _, r := range risks {
		if r.Score < min {
			return false
		}
	}
	return true
}

func executiveSummary(summary models.RiskSummary, patterns PatternAnalysis, external *analyzer.Summary) string {
	if external != nil && external.ExecutiveSummary != "" {
		return external.ExecutiveSummary
	}

	var parts []string
	switch summary.OverallLevel {
	case models.SeverityCritical:
		parts = append(parts, "⚠️ This contract contains CRITICAL risks that require immediate attention.")
	case models.SeverityHigh:
		parts = append(parts, "This contract has significant risks that should be addressed before signing.")
	case models.SeverityMedium:
		parts = append(parts, "This contract has some areas of concern but is generally reasonable.")
	default:
		parts = append(parts, "This contract appears balanced with minimal risk.")
	}

	dist := summary.Distribution
	parts = append(parts, fmt.Sprintf(
		"Analysis found %d critical, %d high, %d medium, and %d low risk clauses.",
		dist.Critical, dist.High, dist.Medium, dist.Low))

	if len(patterns.Patterns) > 0 {
		parts = append(parts, patterns.Patterns[0])
	}
	return strings.Join(parts, " ")
}

func averageScore(risks []models.ClauseRisk) float64 {
	if len(risks) == 0 {
		return 0
	}
	sum := 0
	for _, r := range risks {
		sum += r.Score
	}
	return float64(sum) / float64(len(risks))
}

func overallFavorability(risks []models.ClauseRisk) string {
	switch avg := averageScore(risks); {
	case avg >= 70:
		return models.FavorabilityHeavilyAgainst
	case avg >= 50:
		return models.FavorabilitySlightlyUnfav
	case avg >= 30:
		return models.FavorabilityBalanced
	default:
		return models.FavorabilityFavorable
	}
}

func marketComparison(risks []models.ClauseRisk, external *analyzer.Summary) string {
	if external != nil && external.ComparisonToMarket != "" {
		return external.ComparisonToMarket
	}

	switch avg := averageScore(risks); {
	case avg >= 70:
		return "This contract is significantly more restrictive than typical market agreements."
	case avg >= 50:
		return "This contract is somewhat more restrictive than typical market agreements."
	case avg >= 30:
		return "This contract is roughly in line with market standards, with some areas to review."
	default:
		return "This contract has favorable terms compared to typical market agreements."
	}
}

func actionPlan(risks []models.ClauseRisk, mustAddress []models.ActionItem, shouldNegotiate []string) []string {
	var plan []string

	if len(mustAddress) > 0 {
		refs := make([]string, 0, 3)
		for i, item := range mustAddress {
			if i == 3 {
				break
			}
			refs = append(refs, item.ClauseReference)
		}
		plan = append(plan, fmt.Sprintf("1. Address %d critical issue(s) immediately: %s",
			len(mustAddress), strings.Join(refs, ", ")))
	}
	if len(shouldNegotiate) > 0 {
		plan = append(plan, fmt.Sprintf("2. Negotiate %d high-risk clause(s) before signing", len(shouldNegotiate)))
	}

	seen := make(map[models.RiskCategory]bool)
	added := 0
	for _, r := range risks {
		if r.Score >= 60 && !seen[r.Category] {
			seen[r.Category] = true
			if added < 2 {
				plan = append(plan, fmt.Sprintf("3. Review all %s clauses for balance", r.Category.Words()))
				added++
			}
		}
	}

	plan = append(plan, "4. Have legal counsel review before signing")
	plan = append(plan, "5. Document any agreed changes in writing")

	if len(plan) > 5 {
		plan = plan[:5]
	}
	return plan
}

func (a *Aggregator) emptyDocumentRisk(meta Metadata) *models.DocumentRisk {
	a.logger.Warn("no clauses found to analyze", "filename", meta.Filename)

	return &models.DocumentRisk{
		Metadata: models.DocumentMetadata{
			AnalyzedAt:     time.Now(),
			RunID:          meta.RunID,
			Filename:       meta.Filename,
			Pages:          meta.Pages,
			ClausesScanned: 0,
			ProcessingTime: meta.ProcessingTime,
		},
		RiskSummary: models.RiskSummary{
			OverallScore:   0,
			OverallLevel:   models.SeverityLow,
			Favorability:   models.FavorabilityUnknown,
			Recommendation: "No clauses found to analyze",
		},
		ExecutiveSummary:    "No clauses were found in the document for analysis.",
		ClauseRisks:         []models.ClauseRisk{},
		TopRisks:            []models.TopRisk{},
		CategorySummaries:   map[models.RiskCategory]models.CategorySummary{},
		ComparisonToMarket:  "Unable to compare - no clauses analyzed",
		OverallFavorability: models.FavorabilityUnknown,
		ActionPlan:          []string{"Upload a document with identifiable clauses for analysis"},
	}
}

// Recommendations builds structured negotiation recommendations, top 20 by
// score, medium risk and up.
func (a *Aggregator) Recommendations(doc *models.DocumentRisk) []models.Recommendation {
	sorted := sortedByScore(doc.ClauseRisks)

	var recs []models.Recommendation
	for i, r := range sorted {
		if r.Score < 30 {
			continue
		}
		title := r.PrimaryRisk
		if len(title) > 100 {
			title = title[:100]
		}
		description := r.DetailedExplanation
		if description == "" {
			description = r.PrimaryRisk
		}
		recs = append(recs, models.Recommendation{
			Priority:        i + 1,
			Category:        r.Category,
			Title:           title,
			Description:     description,
			ClauseReference: r.ClauseID,
			SuggestedChange: r.AlternativeLanguage,
			NegotiationTip:  talkingPoint(r.Category),
		})
		if len(recs) == 20 {
			break
		}
	}
	return recs
}
