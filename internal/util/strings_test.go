// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalToSnake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "User", "user"},
		{"PascalCase", "UserName", "user_name"},
		{"camelCase", "userName", "user_name"},
		{"acronym run", "HTTPServer", "http_server"},
		{"trailing acronym", "UserID", "user_id"},
		{"digit suffix stays glued", "item2", "item2"},
		{"digit inside pascal", "Item2Thing", "item2_thing"},
		{"upper digit run", "ITEM2", "item2"},
		{"leading non-alphabetic dropped", "/users/{id}", "users_id"},
		{"already snake", "user_name", "user_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PascalToSnake(tt.input))
		})
	}
}

func TestSnakeToPascal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "user", "User"},
		{"two words", "user_name", "UserName"},
		{"digits kept", "item2_thing", "Item2Thing"},
		{"double underscore", "user__name", "UserName"},
		{"uppercase input lowered first", "USER_NAME", "UserName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeToPascal(tt.input))
		})
	}
}

// Conversion round-trips for identifiers made of alphabetic case runs
// with no embedded digits.
func TestCaseConversionRoundTrip(t *testing.T) {
	for _, name := range []string{"User", "UserName", "SearchResultPage"} {
		assert.Equal(t, name, SnakeToPascal(PascalToSnake(name)))
	}
}

func TestAvoidReserved(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"keyword", "from", "param_from"},
		{"builtin", "id", "param_id"},
		{"builtin type", "type", "param_type"},
		{"plain name", "user_id", "user_id"},
		{"capitalized keyword", "None", "param_None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvoidReserved(tt.input))
		})
	}
}
