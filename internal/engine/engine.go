// Package engine orchestrates the analysis pipeline: segmentation, keyword
// scanning, per-clause scoring (rule-based or external), and document
// aggregation.
package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/caveat-dev/caveat/internal/aggregate"
	"github.com/caveat-dev/caveat/internal/analyzer"
	"github.com/caveat-dev/caveat/internal/keywords"
	"github.com/caveat-dev/caveat/internal/metrics"
	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/internal/scanner"
	"github.com/caveat-dev/caveat/internal/scoring"
	"github.com/caveat-dev/caveat/internal/segment"
	"github.com/caveat-dev/caveat/pkg/logger"
)

const (
	defaultWorkers       = 5
	defaultClauseTimeout = 30 * time.Second

	// Ceiling on confidence when a configured analyzer errored and the
	// clause was scored rule-based instead.
	fallbackConfidenceCap = 40

	// Rough page estimate used for report metadata.
	charsPerPage = 3000
)

// Options configures an Engine. Zero values get sensible defaults; a nil
// Analyzer runs the pipeline entirely rule-based.
type Options struct {
	Library       *keywords.Library
	Analyzer      analyzer.Analyzer
	Metrics       *metrics.Metrics
	Logger        logger.Logger
	Workers       int
	ClauseTimeout time.Duration
}

// Engine runs the full document risk analysis pipeline. Safe for concurrent
// use.
type Engine struct {
	scanner       *scanner.Scanner
	scorer        *scoring.Scorer
	aggregator    *aggregate.Aggregator
	analyzer      analyzer.Analyzer
	metrics       *metrics.Metrics
	logger        logger.Logger
	workers       int
	clauseTimeout time.Duration
}

// New creates an engine from options.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	clauseTimeout := opts.ClauseTimeout
	if clauseTimeout <= 0 {
		clauseTimeout = defaultClauseTimeout
	}
	return &Engine{
		scanner:       scanner.New(opts.Library),
		scorer:        scoring.New(),
		aggregator:    aggregate.New(log),
		analyzer:      opts.Analyzer,
		metrics:       opts.Metrics,
		logger:        log,
		workers:       workers,
		clauseTimeout: clauseTimeout,
	}
}

// QuickScan runs only the fast keyword scan over a document.
func (e *Engine) QuickScan(text string) scanner.QuickScanResult {
	result := e.scanner.ScanDocument(text)
	if e.metrics != nil {
		e.metrics.ScanDuration.Observe(result.ProcessingTime.Seconds())
	}
	return result
}

// AnalyzeDocument runs the complete pipeline over a document and returns the
// aggregated assessment. The external analyzer, when configured, is consulted
// per clause; any failure or cancellation downgrades that clause to the
// rule-based path rather than failing the document.
func (e *Engine) AnalyzeDocument(ctx context.Context, text, filename string, actx analyzer.Context) (*models.DocumentRisk, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := e.logger.With("run_id", runID, "filename", filename)

	clauses := e.extractClauses(text)
	log.Info("starting document analysis", "clauses", len(clauses), "bytes", len(text))

	quick := e.QuickScan(text)
	keywordsByClause := buildKeywordMap(quick, clauses)

	risks := e.analyzeClauses(ctx, clauses, keywordsByClause, actx, log)

	var external *analyzer.Summary
	if e.analyzer != nil && len(risks) > 0 {
		external = e.summarize(ctx, risks, actx, log)
	}

	meta := aggregate.Metadata{
		RunID:          runID,
		Filename:       filename,
		Pages:          pageEstimate(text),
		ProcessingTime: time.Since(start),
	}
	doc := e.aggregator.Aggregate(risks, meta, external)

	if e.metrics != nil {
		e.metrics.RecordDocument(string(doc.RiskSummary.OverallLevel), time.Since(start).Seconds())
	}
	log.Info("document analysis complete",
		"overall_score", doc.RiskSummary.OverallScore,
		"overall_level", doc.RiskSummary.OverallLevel,
		"duration", time.Since(start),
	)
	return doc, nil
}

// AnalyzeClause runs the per-clause pipeline over a single standalone clause.
func (e *Engine) AnalyzeClause(ctx context.Context, clauseText string, actx analyzer.Context) *models.ClauseRisk {
	clause := segment.Clause{ID: "single_clause", Text: clauseText}
	scan := e.scanner.ScanClause(clause.ID, clause.Text)
	return e.analyzeClause(ctx, clause, scan.KeywordMatches, actx, e.logger)
}

func (e *Engine) extractClauses(text string) []segment.Clause {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return segment.Split(text)
}

func pageEstimate(text string) int {
	pages := len(text) / charsPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// buildKeywordMap assigns document-level matches to the clauses whose text
// contains the matched keyword. A match can land in several clauses.
func buildKeywordMap(quick scanner.QuickScanResult, clauses []segment.Clause) map[string][]models.KeywordMatch {
	byClause := make(map[string][]models.KeywordMatch)
	for _, clause := range clauses {
		lower := strings.ToLower(clause.Text)
		for _, m := range quick.KeywordMatches {
			if strings.Contains(lower, strings.ToLower(m.Keyword)) {
				byClause[clause.ID] = append(byClause[clause.ID], m)
			}
		}
	}
	return byClause
}

func (e *Engine) analyzeClauses(ctx context.Context, clauses []segment.Clause, keywordsByClause map[string][]models.KeywordMatch, actx analyzer.Context, log logger.Logger) []models.ClauseRisk {
	results := make([]*models.ClauseRisk, len(clauses))

	g := new(errgroup.Group)
	g.SetLimit(e.workers)
	for _, clause := range clauses {
		clause := clause
		g.Go(func() error {
			risk := e.analyzeClause(ctx, clause, keywordsByClause[clause.ID], actx, log)
			results[clause.Index] = risk
			return nil
		})
	}
	_ = g.Wait()

	risks := make([]models.ClauseRisk, 0, len(results))
	for _, r := range results {
		if r != nil {
			risks = append(risks, *r)
		}
	}
	return risks
}

func (e *Engine) analyzeClause(ctx context.Context, clause segment.Clause, matches []models.KeywordMatch, actx analyzer.Context, log logger.Logger) *models.ClauseRisk {
	if e.analyzer != nil && len(matches) > 0 {
		risk, err := e.externalAnalysis(ctx, clause, matches, actx)
		if err == nil {
			if e.metrics != nil {
				e.metrics.RecordClause(metrics.ModeAI, risk.Score)
			}
			return risk
		}
		log.Warn("external analysis failed, using rule-based scoring",
			"clause_id", clause.ID, "error", err)
		if e.metrics != nil {
			e.metrics.RecordFallback(fallbackReason(ctx, err))
		}

		risk = e.ruleBasedAnalysis(clause, matches)
		if risk.Confidence > fallbackConfidenceCap {
			risk.Confidence = fallbackConfidenceCap
		}
		if e.metrics != nil {
			e.metrics.RecordClause(metrics.ModeRuleBased, risk.Score)
		}
		return risk
	}

	risk := e.ruleBasedAnalysis(clause, matches)
	if e.metrics != nil {
		e.metrics.RecordClause(metrics.ModeRuleBased, risk.Score)
	}
	return risk
}

func fallbackReason(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "canceled"
	case strings.Contains(err.Error(), "deadline"):
		return "timeout"
	default:
		return "analyzer_error"
	}
}

// externalAnalysis asks the configured analyzer for a deep assessment, then
// blends its score with the local keyword score so a single model answer can
// never fully override what the text itself shows.
func (e *Engine) externalAnalysis(ctx context.Context, clause segment.Clause, matches []models.KeywordMatch, actx analyzer.Context) (*models.ClauseRisk, error) {
	clauseCtx, cancel := context.WithTimeout(ctx, e.clauseTimeout)
	defer cancel()

	assessment, err := e.analyzer.AnalyzeClause(clauseCtx, clause.ID, clause.Text, actx, matches)
	if err != nil {
		return nil, err
	}
	assessment.ApplyDefaults()

	multiplier := e.scorer.ContextMultiplier(assessment.MarketComparison, assessment.ClauseType)
	blended, _ := e.scorer.Score(clause.Text, matches, multiplier, &assessment.RiskScore)

	risk := assessment.ClauseRisk(clause.ID, clause.Text, matches)
	risk.Score = blended
	risk.Severity = models.SeverityFromScore(blended)
	risk.Confidence = e.scorer.Confidence(matches, clause.Text, true)
	return risk, nil
}

// ruleBasedAnalysis scores a clause from keyword evidence alone.
func (e *Engine) ruleBasedAnalysis(clause segment.Clause, matches []models.KeywordMatch) *models.ClauseRisk {
	score, _ := e.scorer.Score(clause.Text, matches, 1.0, nil)
	severity := models.SeverityFromScore(score)

	category := dominantCategory(matches)
	if category == models.CategoryUnknown {
		// A clause can carry a critical phrase the keyword catalog
		// does not cover.
		if cat, ok := scanner.CriticalPhraseCategory(clause.Text); ok {
			category = cat
		}
	}
	clauseType := inferClauseType(clause.Text)
	if clauseType == "" {
		if category != models.CategoryUnknown {
			clauseType = string(category)
		} else {
			clauseType = "general"
		}
	}

	var redFlags []string
	for _, m := range matches {
		if m.Weight >= models.RedFlagWeight {
			redFlags = append(redFlags, m.Keyword)
		}
	}

	var primaryRisk string
	switch {
	case len(redFlags) > 0:
		primaryRisk = fmt.Sprintf("Detected %d red flag(s): %s", len(redFlags), redFlags[0])
	case len(matches) > 0:
		primaryRisk = "Contains " + category.Words() + " related terms requiring review"
	default:
		primaryRisk = "Standard clause with minimal detected risk"
	}

	return &models.ClauseRisk{
		AnalyzedAt:     time.Now(),
		ClauseID:       clause.ID,
		ClauseText:     clause.Text,
		ClauseType:     clauseType,
		Category:       category,
		Severity:       severity,
		Score:          score,
		Confidence:     e.scorer.Confidence(matches, clause.Text, false),
		PrimaryRisk:    primaryRisk,
		Recommendation: ruleBasedRecommendation(severity),
		RedFlags:       redFlags,
		KeywordMatches: matches,
		AIAnalyzed:     false,
	}
}

// dominantCategory picks the category with the highest summed weight across
// matches.
func dominantCategory(matches []models.KeywordMatch) models.RiskCategory {
	if len(matches) == 0 {
		return models.CategoryUnknown
	}
	weights := make(map[models.RiskCategory]float64)
	for _, m := range matches {
		weights[m.Category] += m.Weight
	}

	categories := make([]models.RiskCategory, 0, len(weights))
	for c := range weights {
		categories = append(categories, c)
	}
	// Stable winner when two categories tie on weight.
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	best := categories[0]
	for _, c := range categories[1:] {
		if weights[c] > weights[best] {
			best = c
		}
	}
	return best
}

// Ordered lookup so more specific clause types win over generic ones.
var clauseTypeTable = []struct {
	clauseType string
	indicators []string
}{
	{"indemnification", []string{"indemnif", "hold harmless"}},
	{"liability", []string{"liabilit", "liable", "damages"}},
	{"termination", []string{"terminat", "cancel", "expir"}},
	{"confidentiality", []string{"confidential", "nda", "non-disclosure"}},
	{"intellectual_property", []string{"intellectual property", "patent", "copyright", "trademark", "ip rights"}},
	{"warranty", []string{"warrant", "guarantee"}},
	{"payment", []string{"payment", "fee", "price", "invoice"}},
	{"insurance", []string{"insurance", "insured"}},
	{"force_majeure", []string{"force majeure", "act of god"}},
	{"dispute_resolution", []string{"arbitrat", "mediat", "jurisdiction", "governing law"}},
	{"non_compete", []string{"non-compete", "non-competition", "compete"}},
	{"assignment", []string{"assign", "transfer"}},
}

func inferClauseType(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range clauseTypeTable {
		for _, indicator := range entry.indicators {
			if strings.Contains(lower, indicator) {
				return entry.clauseType
			}
		}
	}
	return ""
}

func ruleBasedRecommendation(severity models.Severity) string {
	switch severity {
	case models.SeverityCritical:
		return "Have legal counsel review immediately. Consider rejecting or significantly revising."
	case models.SeverityHigh:
		return "Negotiate changes to this clause before signing."
	case models.SeverityMedium:
		return "Review carefully and consider negotiating."
	default:
		return "Clause appears standard. Review for completeness."
	}
}

func (e *Engine) summarize(ctx context.Context, risks []models.ClauseRisk, actx analyzer.Context, log logger.Logger) *analyzer.Summary {
	summaryCtx, cancel := context.WithTimeout(ctx, e.clauseTimeout)
	defer cancel()

	refs := make([]*models.ClauseRisk, len(risks))
	for i := range risks {
		refs[i] = &risks[i]
	}

	summary, err := e.analyzer.SummarizeDocument(summaryCtx, refs, actx)
	if err != nil {
		log.Warn("document summary failed, building statistical summary", "error", err)
		if e.metrics != nil {
			e.metrics.RecordFallback("summary_error")
		}
		return analyzer.FallbackSummary(refs, err.Error())
	}
	return summary
}
