// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinhj5/autoapi/pkg/types"
)

const base = "http://api.example.com"

func TestDeclaredEndpoints(t *testing.T) {
	doc := &types.Document{
		Paths: map[string]*types.PathItem{
			"/users":      {Get: &types.Operation{Tags: []string{"user"}}, Post: &types.Operation{Tags: []string{"user"}}},
			"/users/{id}": {Get: &types.Operation{Tags: []string{"user"}}},
			"/ping":       {Get: &types.Operation{}},
		},
	}

	declared := DeclaredEndpoints(doc, base)
	require.Len(t, declared.Static, 3)
	require.Len(t, declared.Dynamic, 1)
	assert.Equal(t, 4, declared.Total())

	// sorted by path, methods in declaration-table order
	assert.Equal(t, base+"/ping", declared.Static[0].URL)
	assert.Equal(t, "NULL", declared.Static[0].Tag)
	assert.Equal(t, base+"/users", declared.Static[1].URL)
	assert.Equal(t, "GET", declared.Static[1].Method)
	assert.Equal(t, "POST", declared.Static[2].Method)
	assert.Equal(t, base+"/users/{id}", declared.Dynamic[0].URL)
}

func TestMatchStaticEndpoint(t *testing.T) {
	declared := &Declared{
		Static: []*Endpoint{{URL: base + "/users", Method: "GET", Tag: "user"}},
	}
	observed := []*Observed{
		{URL: base + "/users", Method: "GET"},
		{URL: base + "/users", Method: "DELETE"},
	}

	require.NoError(t, Match(observed, declared))

	assert.Equal(t, 1, declared.Static[0].Count)
	assert.True(t, observed[0].Matched)
	assert.False(t, observed[1].Matched)

	covered, total := Ratio(observed, declared)
	assert.Equal(t, 1, covered)
	assert.Equal(t, 1, total)
}

func TestMatchDynamicEndpoint(t *testing.T) {
	declared := &Declared{
		Dynamic: []*Endpoint{{URL: base + "/users/{id}", Method: "GET", Tag: "user"}},
	}
	observed := []*Observed{
		{URL: base + "/users/42", Method: "GET"},
		{URL: base + "/users/42/extra", Method: "GET"},
		{URL: base + "/users/42", Method: "POST"},
	}

	require.NoError(t, Match(observed, declared))

	assert.Equal(t, 1, declared.Dynamic[0].Count)
	assert.True(t, observed[0].Matched)
	assert.False(t, observed[1].Matched)
	assert.False(t, observed[2].Matched)
}

// A request matching both a static and a dynamic endpoint is credited
// to the static one only.
func TestMatchPrefersStatic(t *testing.T) {
	declared := &Declared{
		Static:  []*Endpoint{{URL: base + "/users/me", Method: "GET"}},
		Dynamic: []*Endpoint{{URL: base + "/users/{id}", Method: "GET"}},
	}
	observed := []*Observed{{URL: base + "/users/me", Method: "GET"}}

	require.NoError(t, Match(observed, declared))

	assert.Equal(t, 1, declared.Static[0].Count)
	assert.Equal(t, 0, declared.Dynamic[0].Count)
}

func TestMatchCreditsRequestOnce(t *testing.T) {
	declared := &Declared{
		Static: []*Endpoint{
			{URL: base + "/users", Method: "GET"},
			{URL: base + "/users", Method: "GET"},
		},
	}
	observed := []*Observed{{URL: base + "/users", Method: "GET"}}

	require.NoError(t, Match(observed, declared))

	assert.Equal(t, 1, declared.Static[0].Count)
	assert.Equal(t, 0, declared.Static[1].Count)
}

func TestRatioWithNoDeclaredEndpoints(t *testing.T) {
	covered, total := Ratio(nil, &Declared{})
	assert.Equal(t, 0, covered)
	assert.Equal(t, 0, total)
}
