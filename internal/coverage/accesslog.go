// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

// Package coverage compares requests observed in access logs against
// the endpoints a Swagger document declares and reports which
// endpoints the test run exercised.
package coverage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Observed is one request parsed from the merged access logs.
type Observed struct {
	// URL is scheme://host/path with the port and query string stripped
	URL string

	// Method is the uppercase HTTP method
	Method string

	// Matched reports whether the request has been credited to a
	// declared endpoint
	Matched bool
}

// portSuffix matches a ":port" trailer on a URL authority.
var portSuffix = regexp.MustCompile(`:\d+$`)

// ParseAccessLine parses one urllib3 access log line of the form
//
//	http://host:port "GET /path?query HTTP/1.1" 200 123
//
// Lines not starting with "http" carry no request and are skipped.
func ParseAccessLine(line string) (*Observed, bool) {
	if !strings.HasPrefix(line, "http") {
		return nil, false
	}

	fields := strings.Split(line, " ")
	if len(fields) < 3 {
		return nil, false
	}

	base := portSuffix.ReplaceAllString(fields[0], "")
	method := strings.TrimPrefix(fields[1], `"`)

	path := fields[2]
	if i := strings.Index(path, "?"); i != -1 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")

	return &Observed{URL: base + path, Method: method}, true
}

// MergeRequestLogs reads every log file under logDir whose name
// matches pattern and returns their lines in file-name order. A test
// run writes one request log per worker process; the merged view
// covers them all.
func MergeRequestLogs(logDir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(logDir), pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid log pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	var lines []string
	for _, name := range matches {
		data, err := os.ReadFile(filepath.Join(logDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read log %s: %w", name, err)
		}
		for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines, nil
}

// ObservedFromLogs merges the request logs and parses each line into
// an observed request.
func ObservedFromLogs(logDir, pattern string) ([]*Observed, error) {
	lines, err := MergeRequestLogs(logDir, pattern)
	if err != nil {
		return nil, err
	}

	var observed []*Observed
	for _, line := range lines {
		if req, ok := ParseAccessLine(line); ok {
			observed = append(observed, req)
		}
	}
	return observed, nil
}
