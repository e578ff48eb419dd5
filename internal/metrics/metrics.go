// Package metrics exposes Prometheus instrumentation for the analysis
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "caveat"

// Metrics holds the pipeline's Prometheus collectors. All operations are
// safe for concurrent use.
type Metrics struct {
	DocumentsAnalyzed *prometheus.CounterVec
	ClausesScored     *prometheus.CounterVec
	AnalyzerFallbacks *prometheus.CounterVec
	ScanDuration      prometheus.Histogram
	AnalysisDuration  prometheus.Histogram
	ClauseScores      prometheus.Histogram
}

// New creates and registers the pipeline metrics on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DocumentsAnalyzed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_analyzed_total",
				Help:      "Documents analyzed, labeled by overall risk level",
			},
			[]string{"level"},
		),
		ClausesScored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "clauses_scored_total",
				Help:      "Clauses scored, labeled by analysis mode",
			},
			[]string{"mode"},
		),
		AnalyzerFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyzer_fallbacks_total",
				Help:      "Clause analyses that fell back to rule-based scoring",
			},
			[]string{"reason"},
		),
		ScanDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "scan_duration_seconds",
				Help:      "Keyword scan duration per document",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		AnalysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Full pipeline duration per document",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
			},
		),
		ClauseScores: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "clause_risk_score",
				Help:      "Distribution of clause risk scores",
				Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
		),
	}
}

// Analysis modes for the clauses_scored counter.
const (
	ModeAI        = "ai"
	ModeRuleBased = "rule_based"
)

// RecordDocument records a completed document analysis.
func (m *Metrics) RecordDocument(level string, seconds float64) {
	m.DocumentsAnalyzed.WithLabelValues(level).Inc()
	m.AnalysisDuration.Observe(seconds)
}

// RecordClause records one scored clause.
func (m *Metrics) RecordClause(mode string, score int) {
	m.ClausesScored.WithLabelValues(mode).Inc()
	m.ClauseScores.Observe(float64(score))
}

// RecordFallback records a clause that could not be analyzed externally.
func (m *Metrics) RecordFallback(reason string) {
	m.AnalyzerFallbacks.WithLabelValues(reason).Inc()
}
