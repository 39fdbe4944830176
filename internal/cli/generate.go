// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qinhj5/autoapi/internal/generator"
	"github.com/qinhj5/autoapi/internal/openapi"
)

var (
	generateOutput string
	generatePrefix string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the API test harness from the swagger document",
	Long: `Generate a Python API test harness from the configured Swagger document.

Operations are grouped into modules by their first tag. For each module
the command emits a client class, a pytest fixture, and one test
skeleton per operation:

  <root>/api/<module>/<module>_api.py
  <root>/testcases/<module>/conftest.py
  <root>/testcases/<module>/test_<name>.py

The output root is cleared on every run, so do not point it at a
directory with hand-written code.

Example:
  autoapi generate                          # Generate into the configured root
  autoapi generate --output ./template      # Generate into a specific directory
  autoapi generate -f swagger.json          # Generate from a local document`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output root directory")
	generateCmd.Flags().StringVar(&generatePrefix, "package-prefix", "", "python import prefix of the generated package")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if generateOutput != "" {
		cfg.Output.Root = generateOutput
	}
	if generatePrefix != "" {
		cfg.Output.PackagePrefix = generatePrefix
	}

	printVerbose("Configuration:")
	printVerbose("  Output root: %s", cfg.Output.Root)
	printVerbose("  Package prefix: %s", cfg.Output.PackagePrefix)

	doc, err := loadDocument(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to load swagger document: %w", err)
	}

	definitions, err := openapi.Definitions(doc)
	if err != nil {
		return err
	}

	summary, err := generator.New(cfg, definitions).Run(doc)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	for _, warning := range summary.Warnings {
		printWarning("%s", warning)
	}

	printInfo("Generated %d modules, %d operations into %s",
		summary.Modules, summary.Operations, cfg.Output.Root)
	return nil
}
