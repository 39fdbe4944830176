// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides identifier case conversion shared by the
// generator and the coverage analyzer.
package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseRuns splits an identifier into case runs: one or more uppercase
// letters followed by lowercase letters or digits, or one or more
// lowercase letters followed by digits. A run of capitals stays one
// unit ("HTTPServer" -> "http_server") and trailing digits stay glued
// to their word ("item2" -> "item2"). Leading non-alphabetic characters
// never start a run and are dropped.
var caseRuns = regexp.MustCompile(`[A-Z]+[a-z0-9]*|[a-z]+[0-9]*`)

var titleCaser = cases.Title(language.English)

// PascalToSnake converts PascalCase or camelCase to snake_case.
func PascalToSnake(name string) string {
	words := caseRuns.FindAllString(name, -1)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// SnakeToPascal converts snake_case to PascalCase by capitalizing
// each underscore-separated segment.
func SnakeToPascal(name string) string {
	words := strings.Split(name, "_")
	var b strings.Builder
	for _, word := range words {
		if word == "" {
			continue
		}
		b.WriteString(titleCaser.String(strings.ToLower(word)))
	}
	return b.String()
}

// AvoidReserved prefixes a name with "param_" when it collides with a
// keyword or built-in identifier of the emission target language
// (Python), so generated signatures stay valid.
func AvoidReserved(name string) string {
	if pythonReserved[name] {
		return "param_" + name
	}
	return name
}
