// Package analyze implements the full document analysis command.
package analyze

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/caveat-dev/caveat/internal/analyzer"
	"github.com/caveat-dev/caveat/internal/config"
	"github.com/caveat-dev/caveat/internal/engine"
	"github.com/caveat-dev/caveat/internal/metrics"
	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/internal/report"
	"github.com/caveat-dev/caveat/pkg/logger"
	"github.com/caveat-dev/caveat/pkg/pathutil"
)

type options struct {
	configFile   string
	outputDir    string
	formats      []string
	documentType string
	userRole     string
	industry     string
	jurisdiction string
	noAI         bool
	market       bool
}

// NewCommand builds the analyze command.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "analyze <document>",
		Short: "Run a full risk analysis of a contract document",
		Long: `Analyze segments a contract into clauses, scans them against the keyword
catalog, scores each clause, and writes a risk report. With an external
analyzer configured, high-signal clauses also get deep analysis.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Output directory for reports (default: document directory)")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", []string{"markdown", "json"},
		fmt.Sprintf("Report formats to write (available: %s)", strings.Join(report.ListFormats(), ", ")))
	cmd.Flags().StringVar(&opts.documentType, "document-type", "", "Document type, e.g. employment_agreement")
	cmd.Flags().StringVar(&opts.userRole, "role", "", "Reviewing party's role")
	cmd.Flags().StringVar(&opts.industry, "industry", "", "Industry context")
	cmd.Flags().StringVar(&opts.jurisdiction, "jurisdiction", "", "Governing jurisdiction")
	cmd.Flags().BoolVar(&opts.noAI, "no-ai", false, "Skip the external analyzer even when configured")
	cmd.Flags().BoolVar(&opts.market, "market", false, "Benchmark top risks against market norms (requires an analyzer)")

	return cmd
}

func run(cmd *cobra.Command, documentPath string, opts *options) error {
	log := logger.GetGlobalLogger()

	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	actx := buildContext(cfg, opts)

	validated, err := pathutil.ValidatePath(documentPath)
	if err != nil {
		return fmt.Errorf("validating document path: %w", err)
	}
	data, err := os.ReadFile(validated) //nolint:gosec // Path validated above
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	var driver analyzer.Analyzer
	if !opts.noAI {
		driver, err = cfg.BuildAnalyzer()
		if err != nil {
			return err
		}
	}

	eng := engine.New(engine.Options{
		Analyzer:      driver,
		Metrics:       metrics.New(prometheus.DefaultRegisterer),
		Logger:        log,
		Workers:       cfg.Engine.Workers,
		ClauseTimeout: cfg.Engine.ClauseTimeout.Std(),
	})

	ctx := cmd.Context()
	if total := cfg.Engine.TotalTimeout.Std(); total > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, total)
		defer cancel()
	}

	doc, err := eng.AnalyzeDocument(ctx, string(data), filepath.Base(validated), actx)
	if err != nil {
		return fmt.Errorf("analyzing document: %w", err)
	}

	if err := writeReports(doc, validated, opts, log); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(doc))

	if opts.market {
		if driver == nil {
			log.Warn("market comparison requested but no analyzer is configured")
		} else {
			fmt.Fprint(cmd.OutOrStdout(), renderMarket(ctx, driver, doc, actx.Industry, log))
		}
	}
	return nil
}

// renderMarket benchmarks the top risks against market norms using the
// configured analyzer.
func renderMarket(ctx context.Context, driver analyzer.Analyzer, doc *models.DocumentRisk, industry string, log logger.Logger) string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Market Comparison") + "\n")

	top := doc.TopRisks
	if len(top) > 3 {
		top = top[:3]
	}
	for _, r := range top {
		clause := clauseByID(doc, r.ClauseID)
		if clause == nil {
			continue
		}
		mc, err := driver.CompareToMarket(ctx, clause.ClauseText, clause.ClauseType, industry)
		if err != nil {
			log.Warn("market comparison failed", "clause_id", r.ClauseID, "error", err)
			continue
		}
		b.WriteString("\n" + labelStyle.Render(r.ClauseReference) + "\n")
		b.WriteString(fmt.Sprintf("  Standard:    %s\n", mc.IndustryStandard))
		b.WriteString(fmt.Sprintf("  This clause: %s\n", mc.ThisContractPosition))
		b.WriteString(fmt.Sprintf("  Leverage:    %s\n", mc.NegotiationLeverage))
		if mc.Recommendation != "" {
			b.WriteString(fmt.Sprintf("  Recommend:   %s\n", mc.Recommendation))
		}
	}
	return b.String()
}

func clauseByID(doc *models.DocumentRisk, id string) *models.ClauseRisk {
	for i := range doc.ClauseRisks {
		if doc.ClauseRisks[i].ClauseID == id {
			return &doc.ClauseRisks[i]
		}
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func buildContext(cfg *config.Config, opts *options) analyzer.Context {
	actx := cfg.Context
	if opts.documentType != "" {
		actx.DocumentType = opts.documentType
	}
	if opts.userRole != "" {
		actx.UserRole = opts.userRole
	}
	if opts.industry != "" {
		actx.Industry = opts.industry
	}
	if opts.jurisdiction != "" {
		actx.Jurisdiction = opts.jurisdiction
	}
	return actx
}

var formatExtensions = map[string]string{
	"markdown": ".md",
	"json":     ".json",
}

func writeReports(doc *models.DocumentRisk, documentPath string, opts *options, log logger.Logger) error {
	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = filepath.Dir(documentPath)
	}

	base := strings.TrimSuffix(filepath.Base(documentPath), filepath.Ext(documentPath))
	for _, name := range opts.formats {
		ext, ok := formatExtensions[name]
		if !ok {
			ext = "." + name
		}
		outputPath, err := pathutil.ValidateOutputPath(filepath.Join(outputDir, base+"_risk_report"+ext))
		if err != nil {
			return fmt.Errorf("validating output path: %w", err)
		}
		if err := report.WriteFile(name, doc, outputPath, log); err != nil {
			return err
		}
	}
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Bold(true)

	severityStyles = map[models.Severity]lipgloss.Style{
		models.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		models.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		models.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		models.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

func renderSummary(doc *models.DocumentRisk) string {
	var b strings.Builder

	level := severityStyles[doc.RiskSummary.OverallLevel].
		Render(strings.ToUpper(string(doc.RiskSummary.OverallLevel)))

	b.WriteString(titleStyle.Render("Risk Assessment") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s (%d/100)\n",
		labelStyle.Render("Overall:"), level, doc.RiskSummary.OverallScore))
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Clauses:"), distributionLine(doc.RiskSummary.Distribution)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Recommendation:"), doc.RiskSummary.Recommendation))

	if len(doc.TopRisks) > 0 {
		b.WriteString("\n" + labelStyle.Render("Top risks:") + "\n")
		top := doc.TopRisks
		if len(top) > 3 {
			top = top[:3]
		}
		for _, r := range top {
			b.WriteString(fmt.Sprintf("  %d. %s (%d/100)\n", r.Rank, r.ClauseReference, r.Score))
		}
	}

	return b.String()
}

func distributionLine(dist models.RiskDistribution) string {
	return fmt.Sprintf("%s critical, %s high, %s medium, %s low",
		severityStyles[models.SeverityCritical].Render(fmt.Sprintf("%d", dist.Critical)),
		severityStyles[models.SeverityHigh].Render(fmt.Sprintf("%d", dist.High)),
		severityStyles[models.SeverityMedium].Render(fmt.Sprintf("%d", dist.Medium)),
		severityStyles[models.SeverityLow].Render(fmt.Sprintf("%d", dist.Low)),
	)
}
