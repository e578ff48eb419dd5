// Package scan implements the fast keyword scan command.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/caveat-dev/caveat/internal/engine"
	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/internal/scanner"
	"github.com/caveat-dev/caveat/pkg/logger"
	"github.com/caveat-dev/caveat/pkg/pathutil"
)

type options struct {
	showMatches bool
	showHeatmap bool
	maxFlags    int
}

// NewCommand builds the scan command.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "scan <document>",
		Short: "Run a fast keyword scan without deep analysis",
		Long: `Scan runs only the keyword and structural-pattern pass over a document.
It finishes in well under a second on typical contracts and is useful for
triage before a full analyze run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.showMatches, "matches", false, "List every keyword match")
	cmd.Flags().BoolVar(&opts.showHeatmap, "heatmap", false, "Show position-sorted match spans")
	cmd.Flags().IntVar(&opts.maxFlags, "max-flags", 10, "Maximum red flags to display")

	return cmd
}

func run(cmd *cobra.Command, documentPath string, opts *options) error {
	validated, err := pathutil.ValidatePath(documentPath)
	if err != nil {
		return fmt.Errorf("validating document path: %w", err)
	}
	data, err := os.ReadFile(validated) //nolint:gosec // Path validated above
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	eng := engine.New(engine.Options{Logger: logger.GetGlobalLogger()})
	result := eng.QuickScan(string(data))

	fmt.Fprintln(cmd.OutOrStdout(), renderScan(filepath.Base(validated), result, opts))
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Faint(true)

	levelStyles = map[models.Severity]lipgloss.Style{
		models.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		models.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		models.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		models.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

func renderScan(filename string, result scanner.QuickScanResult, opts *options) string {
	var b strings.Builder
	stats := scanner.Summarize(result)

	b.WriteString(headerStyle.Render("Quick Scan: "+filename) + "\n\n")
	b.WriteString(fmt.Sprintf("Estimated risk: %s\n",
		levelStyles[stats.EstimatedRisk].Render(strings.ToUpper(string(stats.EstimatedRisk)))))
	b.WriteString(fmt.Sprintf("Keyword matches: %d\n", stats.TotalMatches))
	b.WriteString(fmt.Sprintf("Red flags: %d across %d categories\n", stats.RedFlagCount, stats.CategoriesAffected))
	if stats.NeedsDeepAnalysis > 0 {
		b.WriteString(fmt.Sprintf("Clauses needing deep analysis: %d\n", stats.NeedsDeepAnalysis))
	}
	if len(stats.SeverityDistribution) > 0 {
		b.WriteString(fmt.Sprintf("Match severity: %d critical, %d high, %d medium, %d low\n",
			stats.SeverityDistribution[models.SeverityCritical],
			stats.SeverityDistribution[models.SeverityHigh],
			stats.SeverityDistribution[models.SeverityMedium],
			stats.SeverityDistribution[models.SeverityLow]))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("Completed in %.1fms", stats.ProcessingTimeMS)) + "\n")

	if len(result.CategoryCounts) > 0 {
		b.WriteString("\n" + headerStyle.Render("Categories") + "\n")
		for _, category := range models.AllCategories() {
			if count := result.CategoryCounts[category]; count > 0 {
				b.WriteString(fmt.Sprintf("  %-22s %d\n", category.Words(), count))
			}
		}
	}

	if len(result.RedFlags) > 0 {
		b.WriteString("\n" + headerStyle.Render("Red Flags") + "\n")
		flags := result.RedFlags
		if len(flags) > opts.maxFlags {
			flags = flags[:opts.maxFlags]
		}
		for _, flag := range flags {
			b.WriteString(fmt.Sprintf("  %s %s\n", flagStyle.Render("!"), flag.Description))
		}
		if opts.maxFlags < len(result.RedFlags) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(result.RedFlags)-opts.maxFlags)) + "\n")
		}
	}

	if opts.showMatches && len(result.KeywordMatches) > 0 {
		b.WriteString("\n" + headerStyle.Render("Matches") + "\n")
		for _, m := range result.KeywordMatches {
			b.WriteString(fmt.Sprintf("  [%s] %q (weight %.1f) at %d\n",
				m.Category, m.Keyword, m.Weight, m.Position.Start))
		}
	}

	if opts.showHeatmap {
		if cells := scanner.HeatmapData(result); len(cells) > 0 {
			b.WriteString("\n" + headerStyle.Render("Heatmap") + "\n")
			for _, c := range cells {
				marker := " "
				if c.IsRedFlag {
					marker = flagStyle.Render("!")
				}
				b.WriteString(fmt.Sprintf("  %s %6d-%-6d %-8s %q\n",
					marker, c.Start, c.End, strings.ToUpper(string(c.Severity)), c.Keyword))
			}
		}
	}

	return b.String()
}
