// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinhj5/autoapi/pkg/types"
)

func docWithPaths(paths map[string]*types.PathItem) *types.Document {
	return &types.Document{Swagger: "2.0", Paths: paths}
}

func TestDiffIdenticalDocuments(t *testing.T) {
	doc := docWithPaths(map[string]*types.PathItem{
		"/users": {Get: &types.Operation{Summary: "List users"}},
	})

	result := NewDiffer().Diff(doc, doc)
	assert.True(t, result.IsEmpty())
	assert.False(t, result.HasBreakingChanges)
}

func TestDiffAddedAndRemovedPaths(t *testing.T) {
	old := docWithPaths(map[string]*types.PathItem{
		"/users": {Get: &types.Operation{}},
		"/old":   {Delete: &types.Operation{}},
	})
	current := docWithPaths(map[string]*types.PathItem{
		"/users": {Get: &types.Operation{}},
		"/new":   {Post: &types.Operation{}},
	})

	result := NewDiffer().Diff(old, current)
	require.Len(t, result.PathChanges, 2)

	byType := map[DiffType]PathChange{}
	for _, c := range result.PathChanges {
		byType[c.Type] = c
	}
	assert.Equal(t, "/old", byType[DiffTypeRemoved].Path)
	assert.Equal(t, "DELETE", byType[DiffTypeRemoved].Method)
	assert.Equal(t, "/new", byType[DiffTypeAdded].Path)
	assert.Equal(t, "POST", byType[DiffTypeAdded].Method)
	assert.True(t, result.HasBreakingChanges)
	assert.Contains(t, result.Summary, "BREAKING")
}

func TestDiffModifiedOperation(t *testing.T) {
	old := docWithPaths(map[string]*types.PathItem{
		"/users": {Get: &types.Operation{Summary: "old"}},
	})
	current := docWithPaths(map[string]*types.PathItem{
		"/users": {Get: &types.Operation{Summary: "new"}},
	})

	result := NewDiffer().Diff(old, current)
	require.Len(t, result.PathChanges, 1)
	assert.Equal(t, DiffTypeModified, result.PathChanges[0].Type)
	assert.False(t, result.HasBreakingChanges)
}

func TestDiffSchemas(t *testing.T) {
	old := &types.Document{
		Swagger: "2.0",
		Paths:   map[string]*types.PathItem{},
		Definitions: map[string]*types.Schema{
			"User": {Type: "object"},
			"Gone": {Type: "string"},
		},
	}
	current := &types.Document{
		Swagger: "2.0",
		Paths:   map[string]*types.PathItem{},
		Definitions: map[string]*types.Schema{
			"User": {Type: "object", Description: "changed"},
			"Pet":  {Type: "object"},
		},
	}

	result := NewDiffer().Diff(old, current)
	require.Len(t, result.SchemaChanges, 3)

	counts := map[DiffType]int{}
	for _, c := range result.SchemaChanges {
		counts[c.Type]++
	}
	assert.Equal(t, 1, counts[DiffTypeAdded])
	assert.Equal(t, 1, counts[DiffTypeRemoved])
	assert.Equal(t, 1, counts[DiffTypeModified])
}
