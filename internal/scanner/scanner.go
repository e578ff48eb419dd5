// Package scanner implements the fast rule-based pass over contract text.
// It applies the keyword library plus hand-authored structural danger
// patterns and produces match lists, red flags, and a coarse risk estimate
// in sub-second time.
package scanner

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/caveat-dev/caveat/internal/keywords"
	"github.com/caveat-dev/caveat/internal/models"
)

// QuickScanResult is the outcome of a whole-document scan.
type QuickScanResult struct {
	CategoryCounts       map[models.RiskCategory]int
	KeywordMatches       []models.KeywordMatch
	RedFlags             []models.RedFlag
	ClausesToDeepAnalyze []string
	TotalMatches         int
	EstimatedRiskLevel   models.Severity
	ProcessingTime       time.Duration
}

// ClauseScanResult is the outcome of scanning a single clause.
type ClauseScanResult struct {
	CategoryScores    map[models.RiskCategory]float64
	ClauseID          string
	ClauseText        string
	KeywordMatches    []models.KeywordMatch
	RedFlags          []models.RedFlag
	EstimatedSeverity models.Severity
	NeedsDeepAnalysis bool
}

// Phrases that always warrant a red flag, each pinned to one category.
var criticalPhrases = []struct {
	Phrase   string
	Category models.RiskCategory
}{
	{"unlimited liability", models.CategoryLegalLiability},
	{"waives all rights", models.CategoryLegalLiability},
	{"irrevocable", models.CategoryTermination},
	{"perpetual", models.CategoryTermination},
	{"assigns all right, title, and interest", models.CategoryIntellectualProp},
	{"exclusive, perpetual, worldwide", models.CategoryIntellectualProp},
	{"waive data protection", models.CategoryConfidentiality},
	{"personal guarantee", models.CategoryLegalLiability},
	{"sole discretion", models.CategoryOperational},
	{"without limitation", models.CategoryFinancial},
	{"no right to terminate", models.CategoryTermination},
	{"strict liability", models.CategoryCompliance},
}

// Structural danger patterns. Any hit carries a fixed weight of 3.0
// regardless of the keyword catalog.
var dangerousPatterns = []*regexp.Regexp{
	// One-sided indemnification obligations
	regexp.MustCompile(`(?is)\b(?:you|party\s+a|customer|licensee|user)\s+(?:shall|must|will|agrees?\s+to)\s+(?:indemnify|hold\s+harmless)`),
	// Unbounded claim scope
	regexp.MustCompile(`(?is)\b(?:any\s+and\s+all|all\s+and\s+any)\s+(?:claims?|damages?|losses?|liabilities?)`),
	// Unlimited scope language
	regexp.MustCompile(`(?is)\bwithout\s+(?:limit(?:ation)?|exception|restriction)\b`),
	// Mandatory arbitration in a distant venue
	regexp.MustCompile(`(?is)\b(?:binding\s+)?arbitration.*(?:in|at)\s+(?:Singapore|Hong\s+Kong|London|Switzerland)`),
	// Termination without a cure period
	regexp.MustCompile(`(?is)\bimmediate\s+termination\s+(?:without|with\s+no)\s+(?:cure|notice)`),
}

// Scanner runs keyword and structural-pattern matching over contract text.
// Safe for concurrent use.
type Scanner struct {
	library *keywords.Library
}

// New returns a scanner backed by the given library, or the built-in catalog
// when lib is nil.
func New(lib *keywords.Library) *Scanner {
	if lib == nil {
		lib = keywords.Default()
	}
	return &Scanner{library: lib}
}

// CriticalPhraseCategory reports whether phrase is one of the always-flag
// critical phrases, and its category if so.
func CriticalPhraseCategory(phrase string) (models.RiskCategory, bool) {
	lower := strings.ToLower(phrase)
	for _, cp := range criticalPhrases {
		if strings.Contains(lower, cp.Phrase) {
			return cp.Category, true
		}
	}
	return models.CategoryUnknown, false
}

// ScanDocument performs a fast scan of an entire document.
func (s *Scanner) ScanDocument(text string) QuickScanResult {
	start := time.Now()

	var (
		keywordMatches []models.KeywordMatch
		redFlags       []models.RedFlag
	)
	categoryCounts := make(map[models.RiskCategory]int)

	for category, found := range s.library.SearchAll(text) {
		for _, em := range found {
			for _, m := range em.Matches {
				keywordMatches = append(keywordMatches, models.KeywordMatch{
					Keyword:  em.Entry.Pattern,
					Category: category,
					Weight:   em.Entry.Weight,
					Position: models.Position{Start: m.Start, End: m.End},
					Context:  keywords.Context(text, m.Start, m.End, keywords.DefaultContextChars),
				})
				categoryCounts[category]++

				if em.Entry.Weight >= models.RedFlagWeight {
					redFlags = append(redFlags, models.RedFlag{
						Phrase:      m.Text,
						Category:    category,
						Weight:      em.Entry.Weight,
						Position:    models.Position{Start: m.Start, End: m.End},
						Description: em.Entry.Description,
					})
				}
			}
		}
	}

	redFlags = append(redFlags, structuralFlags(text, "Dangerous structural pattern detected")...)

	totalWeight := 0.0
	for _, km := range keywordMatches {
		totalWeight += km.Weight
	}
	criticalCount := 0
	for _, rf := range redFlags {
		if rf.Weight >= models.StructuralFlagWeight {
			criticalCount++
		}
	}

	var estimated models.Severity
	switch {
	case criticalCount >= 3 || totalWeight > 50:
		estimated = models.SeverityCritical
	case criticalCount >= 1 || totalWeight > 30:
		estimated = models.SeverityHigh
	case totalWeight > 15:
		estimated = models.SeverityMedium
	default:
		estimated = models.SeverityLow
	}

	return QuickScanResult{
		TotalMatches:         len(keywordMatches),
		KeywordMatches:       keywordMatches,
		RedFlags:             redFlags,
		CategoryCounts:       categoryCounts,
		EstimatedRiskLevel:   estimated,
		ClausesToDeepAnalyze: deepAnalysisParagraphs(text, keywordMatches, redFlags),
		ProcessingTime:       time.Since(start),
	}
}

// ScanClause scans a single clause for risk indicators.
func (s *Scanner) ScanClause(clauseID, clauseText string) ClauseScanResult {
	var (
		keywordMatches []models.KeywordMatch
		redFlags       []models.RedFlag
	)
	categoryScores := make(map[models.RiskCategory]float64)

	for category, found := range s.library.SearchAll(clauseText) {
		for _, em := range found {
			for _, m := range em.Matches {
				keywordMatches = append(keywordMatches, models.KeywordMatch{
					Keyword:  em.Entry.Pattern,
					Category: category,
					Weight:   em.Entry.Weight,
					Position: models.Position{Start: m.Start, End: m.End},
					Context:  keywords.Context(clauseText, m.Start, m.End, 50),
				})
				categoryScores[category] += em.Entry.Weight

				if em.Entry.Weight >= models.RedFlagWeight {
					redFlags = append(redFlags, models.RedFlag{
						Phrase:      m.Text,
						Category:    category,
						Weight:      em.Entry.Weight,
						Position:    models.Position{Start: m.Start, End: m.End},
						Description: em.Entry.Description,
					})
				}
			}
		}
	}

	structural := structuralFlags(clauseText, "Dangerous structural pattern")
	for _, rf := range structural {
		categoryScores[rf.Category] += models.StructuralFlagWeight
	}
	redFlags = append(redFlags, structural...)

	totalWeight := 0.0
	for _, w := range categoryScores {
		totalWeight += w
	}
	hasCritical := false
	for _, rf := range redFlags {
		if rf.Weight >= models.StructuralFlagWeight {
			hasCritical = true
			break
		}
	}

	// The branches below overlap on purpose: weight >10 without a
	// structural-weight flag stays "high", and a lone dangerous phrase in an
	// otherwise quiet clause still gets a deep look.
	var severity models.Severity
	var needsDeep bool
	switch {
	case hasCritical || totalWeight > 10:
		if hasCritical {
			severity = models.SeverityCritical
		} else {
			severity = models.SeverityHigh
		}
		needsDeep = true
	case totalWeight > 5:
		severity = models.SeverityMedium
		needsDeep = true
	case totalWeight > 2:
		severity = models.SeverityMedium
		needsDeep = len(keywordMatches) > 0
	default:
		severity = models.SeverityLow
		needsDeep = len(redFlags) > 0
	}

	return ClauseScanResult{
		ClauseID:          clauseID,
		ClauseText:        clauseText,
		KeywordMatches:    keywordMatches,
		RedFlags:          redFlags,
		CategoryScores:    categoryScores,
		EstimatedSeverity: severity,
		NeedsDeepAnalysis: needsDeep,
	}
}

func structuralFlags(text, description string) []models.RedFlag {
	var flags []models.RedFlag
	for _, re := range dangerousPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			phrase := text[loc[0]:loc[1]]
			if len(phrase) > 100 {
				phrase = phrase[:100]
			}
			flags = append(flags, models.RedFlag{
				Phrase:      phrase,
				Category:    categorizePatternMatch(text[loc[0]:loc[1]]),
				Weight:      models.StructuralFlagWeight,
				Position:    models.Position{Start: loc[0], End: loc[1]},
				Description: description,
			})
		}
	}
	return flags
}

func categorizePatternMatch(matched string) models.RiskCategory {
	lower := strings.ToLower(matched)
	switch {
	case containsAny(lower, "indemnify", "hold harmless", "liable", "liability"):
		return models.CategoryLegalLiability
	case containsAny(lower, "arbitration", "jurisdiction", "venue", "court"):
		return models.CategoryDisputeResolution
	case containsAny(lower, "terminate", "termination", "cancel"):
		return models.CategoryTermination
	case containsAny(lower, "damage", "claim", "loss"):
		return models.CategoryFinancial
	default:
		return models.CategoryOperational
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

// deepAnalysisParagraphs returns identifiers for the paragraphs that contain
// at least one match. This is the hand-off list for the optional semantic
// pass.
func deepAnalysisParagraphs(text string, matches []models.KeywordMatch, flags []models.RedFlag) []string {
	paragraphs := strings.Split(text, "\n\n")
	var ids []string

	pos := 0
	for i, para := range paragraphs {
		paraStart := pos
		paraEnd := pos + len(para)

		hasMatch := false
		for _, km := range matches {
			if km.Position.Start >= paraStart && km.Position.Start < paraEnd {
				hasMatch = true
				break
			}
		}
		if !hasMatch {
			for _, rf := range flags {
				if rf.Position.Start >= paraStart && rf.Position.Start < paraEnd {
					hasMatch = true
					break
				}
			}
		}

		if hasMatch && len(strings.TrimSpace(para)) > 20 {
			ids = append(ids, fmt.Sprintf("paragraph_%d", i))
		}
		pos = paraEnd + 2
	}
	return ids
}

// HeatmapCell is one highlighted span for risk heatmap rendering.
type HeatmapCell struct {
	Keyword   string              `json:"keyword"`
	Category  models.RiskCategory `json:"category"`
	Severity  models.Severity     `json:"severity"`
	Weight    float64             `json:"weight"`
	Start     int                 `json:"start"`
	End       int                 `json:"end"`
	IsRedFlag bool                `json:"is_red_flag"`
}

// HeatmapData flattens a scan result into position-sorted spans for
// visualization.
func HeatmapData(result QuickScanResult) []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(result.KeywordMatches)+len(result.RedFlags))

	for _, km := range result.KeywordMatches {
		cells = append(cells, HeatmapCell{
			Start:     km.Position.Start,
			End:       km.Position.End,
			Category:  km.Category,
			Severity:  weightToSeverity(km.Weight),
			Weight:    km.Weight,
			Keyword:   km.Keyword,
			IsRedFlag: km.Weight >= models.RedFlagWeight,
		})
	}

	for _, rf := range result.RedFlags {
		duplicate := false
		for _, c := range cells {
			if c.Start == rf.Position.Start && c.End == rf.Position.End {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		severity := models.SeverityHigh
		if rf.Weight >= models.StructuralFlagWeight {
			severity = models.SeverityCritical
		}
		cells = append(cells, HeatmapCell{
			Start:     rf.Position.Start,
			End:       rf.Position.End,
			Category:  rf.Category,
			Severity:  severity,
			Weight:    rf.Weight,
			Keyword:   rf.Phrase,
			IsRedFlag: true,
		})
	}

	sort.Slice(cells, func(i, j int) bool { return cells[i].Start < cells[j].Start })
	return cells
}

// weightToSeverity maps a keyword weight to a display severity for heatmaps.
// Distinct from the score-derived mapping in models.
func weightToSeverity(weight float64) models.Severity {
	switch {
	case weight >= 2.5:
		return models.SeverityCritical
	case weight >= 2.0:
		return models.SeverityHigh
	case weight >= 1.5:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// SummaryStats condenses a scan result for quick display and logging.
type SummaryStats struct {
	SeverityDistribution map[models.Severity]int     `json:"severity_distribution"`
	CategoryBreakdown    map[models.RiskCategory]int `json:"category_breakdown"`
	EstimatedRisk        models.Severity             `json:"estimated_risk"`
	TotalMatches         int                         `json:"total_matches"`
	RedFlagCount         int                         `json:"red_flag_count"`
	CategoriesAffected   int                         `json:"categories_affected"`
	NeedsDeepAnalysis    int                         `json:"needs_deep_analysis_count"`
	ProcessingTimeMS     float64                     `json:"processing_time_ms"`
}

// Summarize builds summary statistics from a scan result.
func Summarize(result QuickScanResult) SummaryStats {
	severityCounts := make(map[models.Severity]int)
	for _, km := range result.KeywordMatches {
		severityCounts[weightToSeverity(km.Weight)]++
	}

	return SummaryStats{
		TotalMatches:         result.TotalMatches,
		RedFlagCount:         len(result.RedFlags),
		CategoriesAffected:   len(result.CategoryCounts),
		SeverityDistribution: severityCounts,
		EstimatedRisk:        result.EstimatedRiskLevel,
		NeedsDeepAnalysis:    len(result.ClausesToDeepAnalyze),
		ProcessingTimeMS:     float64(result.ProcessingTime.Microseconds()) / 1000.0,
		CategoryBreakdown:    result.CategoryCounts,
	}
}
