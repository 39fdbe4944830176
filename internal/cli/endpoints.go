// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/bndr/gotabulate"
	"github.com/spf13/cobra"

	"github.com/qinhj5/autoapi/internal/coverage"
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "Print the endpoints the swagger document declares",
	Long: `Print every endpoint the Swagger document declares as a table.

Templated endpoints (those with path parameters) are marked dynamic;
they are the ones the coverage report can only match by pattern.

This is useful for a quick inventory or for piping into other tools.

Example:
  autoapi endpoints                   # Print declared endpoints
  autoapi endpoints -f swagger.json   # Print from a local document`,
	RunE: runEndpoints,
}

func runEndpoints(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to load swagger document: %w", err)
	}

	declared := coverage.DeclaredEndpoints(doc, cfg.BaseURL)

	var rows [][]string
	for _, ep := range declared.Static {
		rows = append(rows, []string{ep.Tag, ep.URL, ep.Method, "static"})
	}
	for _, ep := range declared.Dynamic {
		rows = append(rows, []string{ep.Tag, ep.URL, ep.Method, "dynamic"})
	}

	if len(rows) == 0 {
		printInfo("No endpoints declared")
		return nil
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"module", "url", "method", "kind"})
	t.SetAlign("left")
	t.SetWrapStrings(true)
	fmt.Print(t.Render("grid"))

	printInfo("%d endpoints (%d static, %d dynamic)",
		declared.Total(), len(declared.Static), len(declared.Dynamic))
	return nil
}
