// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package coverage

import (
	"github.com/qinhj5/autoapi/pkg/types"
)

// Analyzer runs one coverage analysis: merge the access logs, flatten
// the declared endpoints, and credit each observed request.
type Analyzer struct {
	// LogDir is the directory holding the per-worker request logs
	LogDir string

	// LogGlob is the file name pattern of the request logs
	LogGlob string

	// BaseURL prefixes every declared path template
	BaseURL string
}

// Result holds the matched state of one analysis run.
type Result struct {
	Observed []*Observed
	Declared *Declared
}

// Analyze compares the access logs against the document's endpoints.
func (a *Analyzer) Analyze(doc *types.Document) (*Result, error) {
	observed, err := ObservedFromLogs(a.LogDir, a.LogGlob)
	if err != nil {
		return nil, err
	}

	declared := DeclaredEndpoints(doc, a.BaseURL)
	if err := Match(observed, declared); err != nil {
		return nil, err
	}

	return &Result{Observed: observed, Declared: declared}, nil
}

// Report renders the result's coverage tables.
func (r *Result) Report() string {
	return Report(r.Observed, r.Declared)
}
