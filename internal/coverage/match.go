// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package coverage

import (
	"fmt"
	"regexp"
)

// templateSegment matches one "{param}" segment of a URL template.
var templateSegment = regexp.MustCompile(`\{[^/]+?\}`)

// endpointPattern compiles a dynamic URL template into the anchored
// pattern its observed requests must satisfy: each template segment
// matches exactly one path segment.
func endpointPattern(url string) (*regexp.Regexp, error) {
	pattern := "^" + templateSegment.ReplaceAllString(url, `[^/]+?`) + "$"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid url template %q: %w", url, err)
	}
	return re, nil
}

// Match credits each observed request to at most one declared
// endpoint. Static endpoints are tried first by exact URL and method
// equality, then dynamic endpoints by template pattern; once a request
// matches it is never counted again.
func Match(observed []*Observed, declared *Declared) error {
	patterns := make([]*regexp.Regexp, len(declared.Dynamic))
	for i, ep := range declared.Dynamic {
		re, err := endpointPattern(ep.URL)
		if err != nil {
			return err
		}
		patterns[i] = re
	}

	for _, req := range observed {
		for _, ep := range declared.Static {
			if !req.Matched && req.URL == ep.URL && req.Method == ep.Method {
				ep.Count++
				req.Matched = true
			}
		}
		for i, ep := range declared.Dynamic {
			if !req.Matched && patterns[i].MatchString(req.URL) && req.Method == ep.Method {
				ep.Count++
				req.Matched = true
			}
		}
	}
	return nil
}

// Ratio returns the number of matched observed requests and the total
// number of declared endpoints.
func Ratio(observed []*Observed, declared *Declared) (covered, total int) {
	for _, req := range observed {
		if req.Matched {
			covered++
		}
	}
	return covered, declared.Total()
}
