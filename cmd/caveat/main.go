// Package main is the entry point for the Caveat contract risk scanner CLI.
// Caveat segments legal documents into clauses, scores each clause against a
// weighted keyword catalog, optionally deepens the analysis with an external
// model, and produces prioritized risk reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caveat-dev/caveat/cmd/analyze"
	"github.com/caveat-dev/caveat/cmd/scan"
	"github.com/caveat-dev/caveat/pkg/logger"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var (
		debug     bool
		logFormat string
	)

	root := &cobra.Command{
		Use:           "caveat",
		Short:         "Contract risk scanner",
		Long:          "Caveat analyzes legal contracts for one-sided and risky clauses.",
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetupLogger(debug, logFormat)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")

	root.AddCommand(analyze.NewCommand())
	root.AddCommand(scan.NewCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "caveat version %s (built %s)\n", version, buildTime)
		},
	})

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
