// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package coverage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bndr/gotabulate"
)

// Report renders the coverage summary as text tables: the overall
// ratio, fully covered static endpoints, likely covered dynamic
// endpoints, endpoints never hit, and observed requests matching no
// declared endpoint.
func Report(observed []*Observed, declared *Declared) string {
	covered, total := Ratio(observed, declared)
	percentage := 0.0
	if total > 0 {
		percentage = float64(covered) / float64(total) * 100
	}

	var fully, likely, never, unknown [][]string
	for _, ep := range declared.Static {
		if ep.Count > 0 {
			fully = append(fully, []string{ep.Tag, ep.URL, ep.Method, strconv.Itoa(ep.Count)})
		} else {
			never = append(never, []string{ep.Tag, ep.URL, ep.Method})
		}
	}
	for _, ep := range declared.Dynamic {
		if ep.Count > 0 {
			likely = append(likely, []string{ep.Tag, ep.URL, ep.Method, strconv.Itoa(ep.Count)})
		} else {
			never = append(never, []string{ep.Tag, ep.URL, ep.Method})
		}
	}
	for _, req := range observed {
		if !req.Matched {
			unknown = append(unknown, []string{req.URL, req.Method})
		}
	}

	var b strings.Builder
	summaryRow := [][]string{{
		fmt.Sprintf("%d / %d", covered, total),
		fmt.Sprintf("%.2f", percentage),
	}}
	b.WriteString(renderTable("coverage_summary", []string{"ratio", "percentage (%)"}, summaryRow))
	b.WriteString(renderTable("fully_covered", []string{"module", "url", "method", "cases"}, fully))
	b.WriteString(renderTable("likely_covered", []string{"module", "url", "method", "cases"}, likely))
	b.WriteString(renderTable("never_cover", []string{"module", "url", "method"}, never))
	b.WriteString(renderTable("unknown_request", []string{"url", "method"}, unknown))
	return b.String()
}

// WriteReport writes the report text to path, creating parent
// directories as needed.
func WriteReport(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

func renderTable(title string, headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return fmt.Sprintf("%s: none\n\n", title)
	}
	t := gotabulate.Create(rows)
	t.SetHeaders(headers)
	t.SetAlign("left")
	t.SetWrapStrings(true)
	return fmt.Sprintf("%s:\n%s\n", title, t.Render("grid"))
}
