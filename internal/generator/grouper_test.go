// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinhj5/autoapi/pkg/types"
)

func TestGroupByFirstTag(t *testing.T) {
	doc := &types.Document{
		Paths: map[string]*types.PathItem{
			"/users": {
				Get:  &types.Operation{Tags: []string{"UserManagement", "admin"}},
				Post: &types.Operation{Tags: []string{"UserManagement"}},
			},
			"/pets": {
				Get: &types.Operation{Tags: []string{"pet"}},
			},
		},
	}

	modules, warnings := Group(doc)
	assert.Empty(t, warnings)
	require.Len(t, modules, 2)

	require.Len(t, modules["user_management"], 2)
	assert.Equal(t, "get", modules["user_management"][0].Method)
	assert.Equal(t, "post", modules["user_management"][1].Method)
	require.Len(t, modules["pet"], 1)
	assert.Equal(t, "/pets", modules["pet"][0].Path)
}

func TestGroupWarnsOnUntagged(t *testing.T) {
	doc := &types.Document{
		Paths: map[string]*types.PathItem{
			"/ping": {Get: &types.Operation{}},
		},
	}

	modules, warnings := Group(doc)
	assert.Empty(t, modules)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "GET /ping")
	assert.Contains(t, warnings[0], "no tags")
}

func TestGroupDeterministicOrder(t *testing.T) {
	doc := &types.Document{
		Paths: map[string]*types.PathItem{
			"/b": {Get: &types.Operation{Tags: []string{"x"}}},
			"/a": {Get: &types.Operation{Tags: []string{"x"}}},
			"/c": {Get: &types.Operation{Tags: []string{"x"}}},
		},
	}

	modules, _ := Group(doc)
	ops := modules["x"]
	require.Len(t, ops, 3)
	assert.Equal(t, "/a", ops[0].Path)
	assert.Equal(t, "/b", ops[1].Path)
	assert.Equal(t, "/c", ops[2].Path)
}

func TestSortedModules(t *testing.T) {
	modules := map[string][]ModuleOperation{
		"pet":  nil,
		"user": nil,
		"auth": nil,
	}
	assert.Equal(t, []string{"auth", "pet", "user"}, SortedModules(modules))
}
