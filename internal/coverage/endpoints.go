// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package coverage

import (
	"sort"
	"strings"

	"github.com/qinhj5/autoapi/pkg/types"
)

// Endpoint is one declared operation with its hit counter.
type Endpoint struct {
	// URL is the base URL joined with the path template
	URL string

	// Method is the uppercase HTTP method
	Method string

	// Tag is the operation's first tag, "NULL" when untagged
	Tag string

	// Count is the number of observed requests credited to this
	// endpoint
	Count int
}

// Declared partitions the document's endpoints by URL kind: static
// URLs match observed requests by string equality, dynamic URLs carry
// path template parameters and match by pattern.
type Declared struct {
	Static  []*Endpoint
	Dynamic []*Endpoint
}

// Total returns the number of declared endpoints.
func (d *Declared) Total() int {
	return len(d.Static) + len(d.Dynamic)
}

// DeclaredEndpoints flattens the document's operations into endpoint
// entries prefixed with baseURL, in deterministic path and method
// order.
func DeclaredEndpoints(doc *types.Document, baseURL string) *Declared {
	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	declared := &Declared{}
	for _, path := range paths {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		for _, mo := range item.Operations() {
			tag := "NULL"
			if len(mo.Operation.Tags) > 0 {
				tag = mo.Operation.Tags[0]
			}
			ep := &Endpoint{
				URL:    baseURL + path,
				Method: strings.ToUpper(mo.Method),
				Tag:    tag,
			}
			if strings.Contains(path, "{") {
				declared.Dynamic = append(declared.Dynamic, ep)
			} else {
				declared.Static = append(declared.Static, ep)
			}
		}
	}
	return declared
}
