// Package scoring converts keyword matches and clause text into 0-100 risk
// scores using an additive-modifier formula, optionally blended with an
// externally supplied semantic score. It also rolls many clause scores into
// one document score.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/caveat-dev/caveat/internal/models"
)

// Factors records every additive and multiplicative term used to reach a
// final score, retained for explainability.
type Factors struct {
	BaseKeywordScore        float64
	ClauseLengthModifier    float64
	ObligationCountModifier float64
	ExtremeModifier         float64
	OneSidedModifier        float64
	QualifierModifier       float64
	CapModifier             float64
	MutualLanguageModifier  float64
	StandardTermModifier    float64
	ContextMultiplier       float64
	FinalScore              int
}

// Word lists consumed as scoring signals. Entries beginning with a regex
// metapattern compile as written; everything else matches on word boundaries.

var positiveQualifiers = []string{
	"reasonable", "reasonably", "good faith", "mutual", "mutually",
	"reciprocal", "balanced", "fair", "proportionate", "customary",
	"standard", "industry standard", "commercially reasonable",
}

var capIndicators = []string{
	"capped at", "not to exceed", "maximum", "cap of", "limited to",
	"up to", "ceiling", "no more than", "aggregate limit",
	`\$\d+(?:,\d{3})*(?:\.\d{2})?`, `\d+\s*(?:times|x)\s*(?:the|annual|monthly)`,
}

var mutualLanguage = []string{
	"mutual", "mutually", "reciprocal", "both parties", "each party",
	"either party", "the parties", "jointly", "together",
}

var standardTerms = []string{
	"net-30", "net 30", "net-60", "30 days", "60 days",
	"force majeure", "act of god", "commercially reasonable efforts",
	"material breach", "cure period", "good standing",
}

var obligationMarkers = []string{
	"shall", "must", "will", "agrees to", "undertakes to",
	"obligated to", "required to", "bound to", "warranted",
}

var extremeLanguage = []string{
	"unlimited", "without limit", "without limitation", "no cap",
	"sole discretion", "absolute", "irrevocable", "perpetual",
	"unconditional", "in any event", "under any circumstances",
}

var oneSidedMarkers = []string{
	"at its option", "in its sole judgment", "without recourse",
	"waives all rights", "releases all claims", "holds harmless",
}

// Scorer computes clause and document risk scores. Safe for concurrent use
// once constructed.
type Scorer struct {
	positive    []*regexp.Regexp
	caps        []*regexp.Regexp
	mutual      []*regexp.Regexp
	standard    []*regexp.Regexp
	obligations []*regexp.Regexp
	extreme     []*regexp.Regexp
	oneSided    []*regexp.Regexp
}

// New builds a scorer with all word lists compiled.
func New() *Scorer {
	return &Scorer{
		positive:    compileList(positiveQualifiers),
		caps:        compileList(capIndicators),
		mutual:      compileList(mutualLanguage),
		standard:    compileList(standardTerms),
		obligations: compileList(obligationMarkers),
		extreme:     compileList(extremeLanguage),
		oneSided:    compileList(oneSidedMarkers),
	}
}

func compileList(items []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(items))
	for _, item := range items {
		var expr string
		if strings.HasPrefix(item, `\$`) || strings.HasPrefix(item, `\d`) {
			expr = `(?i)` + item
		} else {
			expr = `(?i)\b` + regexp.QuoteMeta(item) + `\b`
		}
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

// countMatching counts how many patterns in the list match the text at least
// once. A pattern contributes one regardless of how often it occurs.
func countMatching(patterns []*regexp.Regexp, text string) int {
	count := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			count++
		}
	}
	return count
}

// Score calculates the risk score for a clause. externalScore, when non-nil,
// is blended 60/40 with the contextualized rule-based score. The context
// multiplier is clamped to [0.5, 2.0].
func (s *Scorer) Score(clauseText string, matches []models.KeywordMatch, contextMultiplier float64, externalScore *int) (int, Factors) {
	factors := Factors{
		BaseKeywordScore:        s.baseScore(matches),
		ClauseLengthModifier:    lengthModifier(clauseText),
		ObligationCountModifier: s.obligationModifier(clauseText),
		ExtremeModifier:         s.extremeModifier(clauseText),
		OneSidedModifier:        s.oneSidedModifier(clauseText),
		QualifierModifier:       s.qualifierModifier(clauseText),
		CapModifier:             s.capModifier(clauseText),
		MutualLanguageModifier:  s.mutualModifier(clauseText),
		StandardTermModifier:    s.standardModifier(clauseText),
	}

	preContext := factors.BaseKeywordScore +
		factors.ClauseLengthModifier +
		factors.ObligationCountModifier +
		factors.ExtremeModifier +
		factors.OneSidedModifier +
		factors.QualifierModifier +
		factors.CapModifier +
		factors.MutualLanguageModifier +
		factors.StandardTermModifier

	factors.ContextMultiplier = math.Max(0.5, math.Min(2.0, contextMultiplier))
	contextualized := preContext * factors.ContextMultiplier

	final := contextualized
	if externalScore != nil {
		final = float64(*externalScore)*0.6 + contextualized*0.4
	}

	factors.FinalScore = clampScore(final)
	return factors.FinalScore, factors
}

func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// baseScore sums keyword weights with diminishing returns so many low-weight
// matches cannot runaway-inflate the score. Caps at 50.
func (s *Scorer) baseScore(matches []models.KeywordMatch) float64 {
	if len(matches) == 0 {
		return 0
	}
	totalWeight := 0.0
	for _, km := range matches {
		totalWeight += km.Weight
	}
	countFactor := 1 - math.Exp(-0.15*float64(len(matches)))
	return math.Min(50, totalWeight*8*countFactor)
}

func lengthModifier(text string) float64 {
	words := len(strings.Fields(text))
	switch {
	case words < 50:
		return 0
	case words < 100:
		return 3
	case words < 200:
		return 5
	case words < 400:
		return 8
	default:
		return 10
	}
}

func (s *Scorer) obligationModifier(text string) float64 {
	switch count := countMatching(s.obligations, text); {
	case count <= 1:
		return 0
	case count <= 3:
		return 5
	case count <= 5:
		return 10
	default:
		return 15
	}
}

func (s *Scorer) extremeModifier(text string) float64 {
	switch countMatching(s.extreme, text) {
	case 0:
		return 0
	case 1:
		return 8
	case 2:
		return 15
	default:
		return 20
	}
}

func (s *Scorer) oneSidedModifier(text string) float64 {
	switch countMatching(s.oneSided, text) {
	case 0:
		return 0
	case 1:
		return 7
	default:
		return 15
	}
}

func (s *Scorer) qualifierModifier(text string) float64 {
	switch countMatching(s.positive, text) {
	case 0:
		return 0
	case 1:
		return -3
	case 2:
		return -6
	default:
		return -10
	}
}

func (s *Scorer) capModifier(text string) float64 {
	switch countMatching(s.caps, text) {
	case 0:
		return 0
	case 1:
		return -8
	case 2:
		return -12
	default:
		return -15
	}
}

func (s *Scorer) mutualModifier(text string) float64 {
	switch countMatching(s.mutual, text) {
	case 0:
		return 0
	case 1:
		return -4
	case 2:
		return -7
	default:
		return -10
	}
}

func (s *Scorer) standardModifier(text string) float64 {
	switch countMatching(s.standard, text) {
	case 0:
		return 0
	case 1:
		return -4
	case 2:
		return -7
	default:
		return -10
	}
}

// ContextMultiplier derives the scaling factor for how typical a clause is.
// An external assessment string takes precedence; otherwise the clause type
// picks a default.
func (s *Scorer) ContextMultiplier(assessment, clauseType string) float64 {
	if assessment != "" {
		lower := strings.ToLower(assessment)
		switch {
		case containsAny(lower, "standard", "typical", "normal", "common"):
			return 0.5
		case containsAny(lower, "unusual", "uncommon", "aggressive"):
			return 1.5
		case containsAny(lower, "extreme", "dangerous", "highly unfavorable"):
			return 2.0
		}
	}

	switch strings.ToLower(clauseType) {
	case "indemnification", "liability":
		return 1.2
	case "intellectual_property", "non-compete":
		return 1.3
	case "arbitration":
		return 1.1
	default:
		return 1.0
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Confidence estimates how reliable a clause assessment is, on a 20-100
// scale. More matches, high-weight matches, external analysis, longer text,
// and unambiguous extreme language all raise it.
func (s *Scorer) Confidence(matches []models.KeywordMatch, clauseText string, aiAnalyzed bool) int {
	confidence := 50

	if len(matches) >= 3 {
		confidence += 15
	} else if len(matches) >= 1 {
		confidence += 8
	}

	highWeight := 0
	for _, km := range matches {
		if km.Weight >= models.RedFlagWeight {
			highWeight++
		}
	}
	boost := highWeight * 5
	if boost > 15 {
		boost = 15
	}
	confidence += boost

	if aiAnalyzed {
		confidence += 15
	}
	if len(strings.Fields(clauseText)) >= 50 {
		confidence += 5
	}
	if countMatching(s.extreme, clauseText) > 0 {
		confidence += 10
	}

	if confidence > 100 {
		return 100
	}
	if confidence < 20 {
		return 20
	}
	return confidence
}

// ExplainScore renders a human-readable breakdown of a score calculation.
func ExplainScore(factors Factors) string {
	parts := []string{fmt.Sprintf("Base keyword score: %.1f", factors.BaseKeywordScore)}

	if factors.ClauseLengthModifier > 0 {
		parts = append(parts, fmt.Sprintf("Clause complexity: +%.1f", factors.ClauseLengthModifier))
	}
	if factors.ObligationCountModifier > 0 {
		parts = append(parts, fmt.Sprintf("Obligation markers: +%.1f", factors.ObligationCountModifier))
	}
	if factors.ExtremeModifier > 0 {
		parts = append(parts, fmt.Sprintf("Extreme language: +%.1f", factors.ExtremeModifier))
	}
	if factors.OneSidedModifier > 0 {
		parts = append(parts, fmt.Sprintf("One-sided language: +%.1f", factors.OneSidedModifier))
	}
	if factors.QualifierModifier < 0 {
		parts = append(parts, fmt.Sprintf("Positive qualifiers: %.1f", factors.QualifierModifier))
	}
	if factors.CapModifier < 0 {
		parts = append(parts, fmt.Sprintf("Caps/limits present: %.1f", factors.CapModifier))
	}
	if factors.MutualLanguageModifier < 0 {
		parts = append(parts, fmt.Sprintf("Mutual language: %.1f", factors.MutualLanguageModifier))
	}
	if factors.StandardTermModifier < 0 {
		parts = append(parts, fmt.Sprintf("Standard terms: %.1f", factors.StandardTermModifier))
	}
	if factors.ContextMultiplier != 1.0 {
		parts = append(parts, fmt.Sprintf("Context multiplier: x%.1f", factors.ContextMultiplier))
	}
	parts = append(parts, fmt.Sprintf("Final score: %d", factors.FinalScore))

	return strings.Join(parts, " | ")
}

// DocumentScore rolls clause scores into one document score. High-risk
// clauses carry more weight, and the single worst clause pulls the result up
// through a 60/40 blend with the weighted average.
func DocumentScore(clauseScores []int) int {
	if len(clauseScores) == 0 {
		return 0
	}

	totalWeight := 0.0
	weightedSum := 0.0
	maxScore := clauseScores[0]
	for _, score := range clauseScores {
		var weight float64
		switch {
		case score >= 85:
			weight = 3.0
		case score >= 60:
			weight = 2.0
		case score >= 30:
			weight = 1.0
		default:
			weight = 0.5
		}
		totalWeight += weight
		weightedSum += float64(score) * weight
		if score > maxScore {
			maxScore = score
		}
	}

	avgWeighted := weightedSum / totalWeight
	final := avgWeighted*0.6 + float64(maxScore)*0.4

	score := int(math.Round(final))
	if score > 100 {
		return 100
	}
	return score
}
