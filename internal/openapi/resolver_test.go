// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinhj5/autoapi/pkg/types"
)

func TestResolveRef(t *testing.T) {
	user := &types.Schema{Type: "object"}
	r := NewResolver(map[string]*types.Schema{"User": user})

	tests := []struct {
		name string
		ref  string
	}{
		{"v2 pointer", "#/definitions/User"},
		{"v3 pointer", "#/components/schemas/User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := r.ResolveRef(tt.ref)
			require.NoError(t, err)
			assert.Same(t, user, schema)
		})
	}
}

func TestResolveRefMissing(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.ResolveRef("#/definitions/Ghost")
	require.Error(t, err)

	var resErr *SchemaResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "#/definitions/Ghost", resErr.Ref)
}

func TestExamplePrimitives(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name     string
		schema   *types.Schema
		expected interface{}
	}{
		{"integer", &types.Schema{Type: "integer"}, 0},
		{"string", &types.Schema{Type: "string"}, ""},
		{"boolean", &types.Schema{Type: "boolean"}, false},
		{"nil schema", nil, map[string]interface{}{}},
		{"unknown type", &types.Schema{Type: "file"}, map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := r.Example(tt.schema)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestExampleObjectWithArray(t *testing.T) {
	r := NewResolver(nil)

	schema := &types.Schema{
		Type: "object",
		Properties: map[string]*types.Schema{
			"id":   {Type: "integer"},
			"tags": {Type: "array", Items: &types.Schema{Type: "string"}},
		},
	}

	value, err := r.Example(schema)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"id":   0,
		"tags": []interface{}{""},
	}, value)
}

func TestExampleAdditionalProperties(t *testing.T) {
	r := NewResolver(nil)

	schema := &types.Schema{
		Type: "object",
		AdditionalProperties: &types.AdditionalProperties{
			Allowed: true,
			Schema:  &types.Schema{Type: "integer"},
		},
	}

	value, err := r.Example(schema)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"": 0}, value)
}

func TestExampleResolvesRefs(t *testing.T) {
	r := NewResolver(map[string]*types.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*types.Schema{
				"name": {Type: "string"},
			},
		},
	})

	value, err := r.Example(&types.Schema{Ref: "#/definitions/User"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": ""}, value)
}

func TestExampleMissingRefFails(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.Example(&types.Schema{
		Type: "object",
		Properties: map[string]*types.Schema{
			"owner": {Ref: "#/definitions/Ghost"},
		},
	})

	var resErr *SchemaResolutionError
	require.True(t, errors.As(err, &resErr))
}

// A cyclic reference graph must terminate with an empty object
// substituted at the point of repetition.
func TestExampleCyclicRefs(t *testing.T) {
	r := NewResolver(map[string]*types.Schema{
		"Node": {
			Type: "object",
			Properties: map[string]*types.Schema{
				"value": {Type: "integer"},
				"next":  {Ref: "#/definitions/Node"},
			},
		},
	})

	value, err := r.Example(&types.Schema{Ref: "#/definitions/Node"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"value": 0,
		"next":  map[string]interface{}{},
	}, value)
}

// A ref schema that parameter normalization stamped with type "object"
// still resolves through the reference.
func TestExampleRefWinsOverStampedObjectType(t *testing.T) {
	r := NewResolver(map[string]*types.Schema{
		"Flag": {Type: "boolean"},
	})

	value, err := r.Example(&types.Schema{Type: "object", Ref: "#/definitions/Flag"})
	require.NoError(t, err)
	assert.Equal(t, false, value)
}
