// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qinhj5/autoapi/internal/coverage"
)

var (
	coverageLogDir     string
	coverageReportPath string
	coveragePrint      bool
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report which declared endpoints the test run exercised",
	Long: `Compare the request access logs of a test run against the endpoints the
Swagger document declares.

Each logged request is credited to at most one endpoint: static URLs
match by string equality, templated URLs by pattern. The report lists
fully covered endpoints, likely covered templated endpoints, endpoints
never hit, and logged requests matching nothing in the document.

Example:
  autoapi coverage                        # Write the report to the configured path
  autoapi coverage --print                # Also print the report to stdout
  autoapi coverage --log-dir ./log        # Read request logs from a specific directory`,
	RunE: runCoverage,
}

func init() {
	coverageCmd.Flags().StringVar(&coverageLogDir, "log-dir", "", "directory holding the request logs")
	coverageCmd.Flags().StringVar(&coverageReportPath, "report", "", "report output path")
	coverageCmd.Flags().BoolVar(&coveragePrint, "print", false, "print the report to stdout")
}

func runCoverage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if coverageLogDir != "" {
		cfg.Coverage.LogDir = coverageLogDir
	}
	if coverageReportPath != "" {
		cfg.Coverage.ReportPath = coverageReportPath
	}

	doc, err := loadDocument(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to load swagger document: %w", err)
	}

	analyzer := &coverage.Analyzer{
		LogDir:  cfg.Coverage.LogDir,
		LogGlob: cfg.Coverage.LogGlob,
		BaseURL: cfg.BaseURL,
	}

	printVerbose("Coverage configuration:")
	printVerbose("  Log dir: %s", analyzer.LogDir)
	printVerbose("  Log pattern: %s", analyzer.LogGlob)
	printVerbose("  Base URL: %s", analyzer.BaseURL)

	result, err := analyzer.Analyze(doc)
	if err != nil {
		return fmt.Errorf("coverage analysis failed: %w", err)
	}

	report := result.Report()
	if err := coverage.WriteReport(cfg.Coverage.ReportPath, report); err != nil {
		return err
	}

	if coveragePrint {
		fmt.Print(report)
	}

	covered, total := coverage.Ratio(result.Observed, result.Declared)
	printInfo("Coverage: %d / %d endpoints, report written to %s",
		covered, total, cfg.Coverage.ReportPath)
	return nil
}
