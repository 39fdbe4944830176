// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qinhj5/autoapi/internal/openapi"
)

var (
	diffHistoryDir string
	diffFailOnDiff bool
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the swagger document against the previous run",
	Long: `Compare the current Swagger document against the snapshot saved by the
previous run.

Every run stores the document under the history directory. The diff
lists added, removed, and modified endpoints and schemas; any removal
is flagged as a breaking change. A non-empty diff is also written to
the configured diff output directory.

Example:
  autoapi diff                        # Diff against the last saved snapshot
  autoapi diff --fail-on-diff         # Exit non-zero when the document changed`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffHistoryDir, "history-dir", "", "directory holding document snapshots")
	diffCmd.Flags().BoolVar(&diffFailOnDiff, "fail-on-diff", false, "exit with code 1 when changes are found")
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if diffHistoryDir != "" {
		cfg.Diff.HistoryDir = diffHistoryDir
	}

	doc, err := loadDocument(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to load swagger document: %w", err)
	}

	snapshotter := openapi.NewSnapshotter(cfg.Diff.HistoryDir, cfg.Diff.OutputDir)
	result, firstRun, err := snapshotter.Compare(doc)
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	if firstRun {
		printInfo("No previous snapshot found, saved current document as baseline")
		return nil
	}

	if result.IsEmpty() {
		printInfo("No changes since the previous run")
		return nil
	}

	printInfo("%s", result.Summary)
	for _, change := range result.PathChanges {
		printInfo("  %s %s %s", change.Type, change.Method, change.Path)
	}
	for _, change := range result.SchemaChanges {
		printInfo("  %s schema %s", change.Type, change.Name)
	}
	if result.HasBreakingChanges {
		printWarning("document contains breaking changes")
	}

	if diffFailOnDiff {
		os.Exit(1)
	}
	return nil
}
