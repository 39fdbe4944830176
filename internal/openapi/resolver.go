// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"fmt"
	"strings"

	"github.com/qinhj5/autoapi/pkg/types"
)

// SchemaResolutionError reports a $ref whose target is missing from
// the definitions table. Callers treat it as fatal for the operation
// being generated, not for the whole run.
type SchemaResolutionError struct {
	Ref string
}

func (e *SchemaResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve schema reference %q", e.Ref)
}

// Resolver resolves $ref pointers against a definitions table and
// synthesizes example values from schema fragments.
type Resolver struct {
	definitions map[string]*types.Schema
}

// NewResolver creates a Resolver over the given definitions table.
func NewResolver(definitions map[string]*types.Schema) *Resolver {
	if definitions == nil {
		definitions = map[string]*types.Schema{}
	}
	return &Resolver{definitions: definitions}
}

// ResolveRef looks up a "#/definitions/Name" or
// "#/components/schemas/Name" pointer in the definitions table.
func (r *Resolver) ResolveRef(ref string) (*types.Schema, error) {
	schema, ok := r.definitions[refName(ref)]
	if !ok {
		return nil, &SchemaResolutionError{Ref: ref}
	}
	return schema, nil
}

// Example synthesizes a minimal representative value for a schema:
// 0 for integers, "" for strings, false for booleans, a one-element
// slice for arrays, a map with one entry per property for objects
// (plus an empty-string key when additionalProperties is allowed),
// and an empty map for anything else. $ref fragments are resolved
// first; a reference cycle yields an empty map instead of recursing
// forever.
func (r *Resolver) Example(schema *types.Schema) (interface{}, error) {
	return r.example(schema, map[string]bool{})
}

func (r *Resolver) example(schema *types.Schema, visited map[string]bool) (interface{}, error) {
	if schema == nil {
		return map[string]interface{}{}, nil
	}

	// The $ref branch is checked after the primitives but before the
	// object branch: parameter normalization stamps type "object" onto
	// bare $ref schemas and the reference must still win.
	switch {
	case schema.Type == "array":
		item, err := r.example(schema.Items, visited)
		if err != nil {
			return nil, err
		}
		return []interface{}{item}, nil
	case schema.Type == "integer":
		return 0, nil
	case schema.Type == "string":
		return "", nil
	case schema.Type == "boolean":
		return false, nil
	case schema.Ref != "":
		name := refName(schema.Ref)
		if visited[name] {
			return map[string]interface{}{}, nil
		}
		target, err := r.ResolveRef(schema.Ref)
		if err != nil {
			return nil, err
		}
		visited[name] = true
		value, err := r.example(target, visited)
		delete(visited, name)
		return value, err
	case schema.Type == "object":
		sample := map[string]interface{}{}
		for name, prop := range schema.Properties {
			value, err := r.example(prop, visited)
			if err != nil {
				return nil, err
			}
			sample[name] = value
		}
		if ap := schema.AdditionalProperties; ap != nil && ap.Allowed {
			value, err := r.example(ap.Schema, visited)
			if err != nil {
				return nil, err
			}
			sample[""] = value
		}
		return sample, nil
	default:
		return map[string]interface{}{}, nil
	}
}

// refName returns the last segment of a $ref pointer.
func refName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}
