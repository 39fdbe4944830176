// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/qinhj5/autoapi/internal/config"
	"github.com/qinhj5/autoapi/internal/generator"
	"github.com/qinhj5/autoapi/internal/openapi"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the swagger document file and regenerate on change",
	Long: `Watch the configured Swagger document file and regenerate the test
harness whenever it changes.

This command requires a local document file (swagger.file); documents
fetched by URL cannot be watched. Rapid successive changes are
coalesced by the debounce interval.

Example:
  autoapi watch                           # Watch the configured document file
  autoapi watch -f swagger.json           # Watch a specific file
  autoapi watch --debounce 1000           # Wait 1s before regenerating`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Swagger.File == "" {
		return fmt.Errorf("watch requires a local document file, set swagger.file or use --file")
	}
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}

	target, err := filepath.Abs(cfg.Swagger.File)
	if err != nil {
		return fmt.Errorf("failed to resolve document path: %w", err)
	}

	printVerbose("Watch configuration:")
	printVerbose("  File: %s", target)
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)

	// initial generation before entering the loop
	regenerateFromFile(cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory: editors replace files instead of writing
	// them in place
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	printInfo("Watching %s", cfg.Swagger.File)
	printInfo("Press Ctrl+C to stop")

	debounce := time.Duration(cfg.Watch.Debounce) * time.Millisecond
	timer := time.NewTimer(24 * time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			printVerbose("Change detected: %s", event.Op)
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("watch error: %v", err)

		case <-timer.C:
			regenerateFromFile(cfg)

		case <-cmd.Context().Done():
			return nil
		}
	}
}

// regenerateFromFile runs one generation pass. Failures are reported
// but never stop the watch loop.
func regenerateFromFile(cfg *config.Config) {
	doc, err := openapi.ReadFile(cfg.Swagger.File)
	if err != nil {
		printError("failed to load swagger document: %v", err)
		return
	}

	definitions, err := openapi.Definitions(doc)
	if err != nil {
		printError("%v", err)
		return
	}

	summary, err := generator.New(cfg, definitions).Run(doc)
	if err != nil {
		printError("generation failed: %v", err)
		return
	}

	for _, warning := range summary.Warnings {
		printWarning("%s", warning)
	}
	printInfo("Regenerated %d modules, %d operations", summary.Modules, summary.Operations)
}
