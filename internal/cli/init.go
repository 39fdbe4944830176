// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/qinhj5/autoapi/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new autoapi configuration file",
	Long: `Initialize a new autoapi configuration file in the current directory.

This command creates an autoapi.yaml file with sensible defaults that
you can customize for your project. At minimum you must fill in the
swagger document source (url or file) and the base URL of the API
under test.

Example:
  autoapi init                          # Create autoapi.yaml with defaults
  autoapi init --force                  # Overwrite existing config
  autoapi init -u http://host/api-docs  # Pre-fill the document URL`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := "autoapi.yaml"

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	cfg := config.Default()
	if swaggerURL != "" {
		cfg.Swagger.URL = swaggerURL
	}
	if swaggerFile != "" {
		cfg.Swagger.File = swaggerFile
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	output := buildConfigYAML(cfg)
	if err := os.WriteFile(configFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Output root: %s", cfg.Output.Root)
	printVerbose("Coverage log dir: %s", cfg.Coverage.LogDir)

	return nil
}

// buildConfigYAML builds a YAML config with helpful comments.
func buildConfigYAML(cfg *config.Config) string {
	data, _ := yaml.Marshal(cfg)

	header := `# autoapi configuration file
#
# swagger.url or swagger.file must point at the Swagger/OpenAPI
# document; baseUrl is the address of the API under test and prefixes
# every endpoint in the coverage report.

`
	return header + string(data)
}
