package report

import (
	"fmt"
	"strings"

	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/pkg/logger"
)

// markdownFormat renders a human-readable markdown risk report.
type markdownFormat struct {
	logger logger.Logger
}

func (f *markdownFormat) Name() string { return "markdown" }

func (f *markdownFormat) Description() string {
	return "Markdown risk report for sharing and review"
}

func severityEmoji(s models.Severity) string {
	switch s {
	case models.SeverityLow:
		return "✅"
	case models.SeverityMedium:
		return "⚠️"
	case models.SeverityHigh:
		return "🔶"
	case models.SeverityCritical:
		return "🚨"
	default:
		return ""
	}
}

func (f *markdownFormat) Render(doc *models.DocumentRisk) ([]byte, error) {
	f.logger.Debug("rendering markdown report",
		"document", doc.Metadata.Filename,
		"clauses", len(doc.ClauseRisks))

	var lines []string

	lines = append(lines, "# Risk Assessment Report")
	lines = append(lines, fmt.Sprintf("\n**Document:** %s", doc.Metadata.Filename))
	lines = append(lines, fmt.Sprintf("**Analyzed:** %s", doc.Metadata.AnalyzedAt.Format("2006-01-02 15:04")))
	lines = append(lines, fmt.Sprintf("**Clauses Analyzed:** %d", doc.Metadata.ClausesScanned))
	lines = append(lines, "")

	summary := doc.RiskSummary
	lines = append(lines, fmt.Sprintf("## Overall Risk: %s %s",
		severityEmoji(summary.OverallLevel), strings.ToUpper(string(summary.OverallLevel))))
	lines = append(lines, fmt.Sprintf("**Score:** %d/100", summary.OverallScore))
	lines = append(lines, fmt.Sprintf("**Recommendation:** %s", summary.Recommendation))
	lines = append(lines, "")

	lines = append(lines, "## Executive Summary")
	lines = append(lines, doc.ExecutiveSummary)
	lines = append(lines, "")

	dist := summary.Distribution
	lines = append(lines, "## Risk Distribution")
	lines = append(lines, fmt.Sprintf("- 🚨 Critical: %d", dist.Critical))
	lines = append(lines, fmt.Sprintf("- 🔶 High: %d", dist.High))
	lines = append(lines, fmt.Sprintf("- ⚠️ Medium: %d", dist.Medium))
	lines = append(lines, fmt.Sprintf("- ✅ Low: %d", dist.Low))
	lines = append(lines, "")

	if len(doc.MustAddressImmediately) > 0 {
		lines = append(lines, "## 🚨 Critical Issues (Must Address)")
		for _, action := range doc.MustAddressImmediately {
			lines = append(lines, fmt.Sprintf("\n### %d. %s", action.Priority, action.ClauseReference))
			lines = append(lines, fmt.Sprintf("- **Issue:** %s", action.Issue))
			lines = append(lines, fmt.Sprintf("- **Action:** %s", action.Action))
			if action.TalkingPoint != "" {
				lines = append(lines, fmt.Sprintf("- **Talking Point:** %s", action.TalkingPoint))
			}
		}
		lines = append(lines, "")
	}

	if len(doc.TopRisks) > 0 {
		lines = append(lines, "## ⚠️ Top Risks")
		top := doc.TopRisks
		if len(top) > 5 {
			top = top[:5]
		}
		for _, risk := range top {
			lines = append(lines, fmt.Sprintf("\n### %d. %s (Score: %d/100)", risk.Rank, risk.ClauseReference, risk.Score))
			lines = append(lines, fmt.Sprintf("- **Issue:** %s", risk.Issue))
			lines = append(lines, fmt.Sprintf("- **Action:** %s", risk.Action))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## 📋 Action Plan")
	for _, item := range doc.ActionPlan {
		lines = append(lines, fmt.Sprintf("- %s", item))
	}
	lines = append(lines, "")

	if len(doc.AcceptableAsIs) > 0 {
		lines = append(lines, "## ✅ Acceptable Terms")
		acceptable := doc.AcceptableAsIs
		if len(acceptable) > 10 {
			acceptable = acceptable[:10]
		}
		lines = append(lines, strings.Join(acceptable, ", "))
		lines = append(lines, "")
	}

	return []byte(strings.Join(lines, "\n")), nil
}
