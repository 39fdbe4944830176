// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

// Package generator turns a Swagger document into the generated test
// harness: API-client classes, fixtures, and test stubs grouped by tag.
package generator

import (
	"sort"

	"github.com/qinhj5/autoapi/internal/util"
	"github.com/qinhj5/autoapi/pkg/types"
)

// RequestBodyParamName is the fixed name of the synthetic parameter
// appended when an operation declares a request body outside its
// parameters array.
const RequestBodyParamName = "request_body"

// ensureSchema normalizes a parameter so downstream code can rely on a
// non-nil schema with a type: a Swagger 2.0 inline type/items pair is
// folded into a schema, a parameter without any schema gets the
// dynamic "Any" type, and a schema with neither type nor $ref left
// untyped becomes an object.
func ensureSchema(p types.Parameter) types.Parameter {
	if p.Type != "" {
		p.Schema = &types.Schema{Type: p.Type, Items: p.Items}
	} else if p.Schema == nil {
		p.Schema = &types.Schema{Type: "Any"}
	} else {
		clone := *p.Schema
		p.Schema = &clone
	}

	if p.Schema.Type == "" {
		p.Schema.Type = "object"
	}
	return p
}

// Deduplicate reverses the parameter list and keeps the first
// occurrence of each snake_cased name, so among duplicates the entry
// nearest the end of the original list wins. Parameters without a name
// are dropped.
func Deduplicate(params []types.Parameter) []types.Parameter {
	seen := map[string]bool{}
	out := make([]types.Parameter, 0, len(params))

	for i := len(params) - 1; i >= 0; i-- {
		p := params[i]
		if p.Name == "" {
			continue
		}
		snake := util.PascalToSnake(p.Name)
		if seen[snake] {
			continue
		}
		seen[snake] = true
		out = append(out, ensureSchema(p))
	}

	return out
}

// Classified partitions an operation's parameters by the request
// group they are sent in. Path parameters belong to no group: they
// are interpolated into the uri instead.
type Classified struct {
	Query  []types.Parameter
	Header []types.Parameter
	Form   []types.Parameter
	Body   []types.Parameter
}

// Classify partitions parameters by their "in" location. A parameter
// with no location defaults to body; path parameters (and any other
// unrecognized location) are excluded from every group.
func Classify(params []types.Parameter) Classified {
	var c Classified
	for _, p := range params {
		switch p.In {
		case "query":
			c.Query = append(c.Query, p)
		case "header":
			c.Header = append(c.Header, p)
		case "formData":
			c.Form = append(c.Form, p)
		case "body", "":
			c.Body = append(c.Body, p)
		}
	}
	return c
}

// OrderForSignature stable-sorts parameters so required ones come
// first; generated signatures must place defaulted parameters last.
func OrderForSignature(params []types.Parameter) []types.Parameter {
	out := make([]types.Parameter, len(params))
	copy(out, params)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Required && !out[j].Required
	})
	return out
}

// WithRequestBody appends the synthetic request_body parameter when
// the operation declares a request body outside its parameters array.
func WithRequestBody(params []types.Parameter, body *types.RequestBody) []types.Parameter {
	if body == nil {
		return params
	}

	description := body.Description
	if description == "" {
		description = "request body"
	}

	return append(params, types.Parameter{
		Name:        RequestBodyParamName,
		In:          "body",
		Required:    body.Required,
		Description: description,
		Schema:      body.JSONSchema(),
	})
}

// Process runs the full parameter pipeline for one operation: append
// the synthetic body parameter, deduplicate with last-entry-wins, and
// order required parameters first.
func Process(op *types.Operation) []types.Parameter {
	params := make([]types.Parameter, len(op.Parameters))
	copy(params, op.Parameters)
	params = WithRequestBody(params, op.RequestBody)
	return OrderForSignature(Deduplicate(params))
}
