// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for autoapi.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile     string
	swaggerURL  string
	swaggerFile string
	baseURL     string
	verbose     bool
	quiet       bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "autoapi",
	Short: "Swagger-driven API test harness generator",
	Long: `autoapi reads a Swagger/OpenAPI document and generates a Python API
test harness from it: one client class per tag, pytest fixtures, and
runnable test skeletons.

It also measures which declared endpoints a test run actually hit by
comparing the request access logs against the document.

Example:
  autoapi generate                     # Generate the harness from the configured document
  autoapi init                         # Initialize a new config file
  autoapi coverage                     # Build the endpoint coverage report
  autoapi diff                         # Compare the document against the last run
  autoapi watch                        # Watch the document file and regenerate`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: autoapi.yaml)")
	rootCmd.PersistentFlags().StringVarP(&swaggerURL, "url", "u", "", "swagger document URL")
	rootCmd.PersistentFlags().StringVarP(&swaggerFile, "file", "f", "", "swagger document file path")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "base URL of the API under test")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(endpointsCmd)
}

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// IsVerbose returns whether verbose output is enabled.
func IsVerbose() bool {
	return verbose
}

// IsQuiet returns whether quiet mode is enabled.
func IsQuiet() bool {
	return quiet
}

// printInfo prints a message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// printWarning prints a warning message.
func printWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
