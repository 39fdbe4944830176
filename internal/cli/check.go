// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qinhj5/autoapi/internal/generator"
	"github.com/qinhj5/autoapi/internal/openapi"
	"github.com/qinhj5/autoapi/pkg/types"
)

// Exit codes for check command
const (
	ExitCodeClean      = 0 // Document generates cleanly
	ExitCodeFindings   = 1 // Document has untagged operations or broken refs
	ExitCodeCheckError = 2 // Error during analysis
)

var checkCI bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the swagger document for generation problems",
	Long: `Check validates that the Swagger document can be generated cleanly.

The command reports operations without tags (which cannot be grouped
into a module) and schema references that do not resolve (which drop
their operation from the generated harness). Nothing is written.

Exit codes:
  0  Document generates cleanly
  1  Document has untagged operations or unresolvable references
  2  Error during analysis

Example:
  autoapi check                       # Report findings
  autoapi check --ci                  # CI mode with appropriate exit codes`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: use exit codes for status")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		if checkCI {
			printError("%v", err)
			os.Exit(ExitCodeCheckError)
		}
		return err
	}

	doc, err := loadDocument(cmd.Context(), cfg)
	if err != nil {
		if checkCI {
			printError("%v", err)
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to load swagger document: %w", err)
	}

	definitions, err := openapi.Definitions(doc)
	if err != nil {
		return err
	}

	findings := collectFindings(doc, definitions)
	for _, finding := range findings {
		printInfo("%s", finding)
	}

	if len(findings) > 0 {
		printInfo("%d finding(s)", len(findings))
		if checkCI {
			os.Exit(ExitCodeFindings)
		}
		return fmt.Errorf("document has %d finding(s)", len(findings))
	}

	printInfo("Document generates cleanly")
	return nil
}

// collectFindings runs the grouping and rendering pipeline without
// writing anything and gathers every problem it reports.
func collectFindings(doc *types.Document, definitions map[string]*types.Schema) []string {
	modules, warnings := generator.Group(doc)
	findings := append([]string{}, warnings...)

	resolver := openapi.NewResolver(definitions)
	for _, module := range generator.SortedModules(modules) {
		_, _, renderWarnings := generator.RenderAPIClass(module, modules[module], resolver)
		for _, w := range renderWarnings {
			findings = append(findings, fmt.Sprintf("module %s: %s", module, w))
		}
	}
	return findings
}
