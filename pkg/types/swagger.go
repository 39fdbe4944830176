// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types provides the data model for Swagger/OpenAPI documents
// consumed by the generator and the coverage analyzer.
package types

// Document represents a Swagger 2.0 or OpenAPI 3.x API description.
// Only the parts the generator consumes are modeled; the document is
// read, never validated or written back.
type Document struct {
	// Swagger is the Swagger 2.0 version string (e.g., "2.0")
	Swagger string `json:"swagger,omitempty" yaml:"swagger,omitempty"`

	// OpenAPI is the OpenAPI 3.x version string (e.g., "3.0.3")
	OpenAPI string `json:"openapi,omitempty" yaml:"openapi,omitempty"`

	// Info provides metadata about the API
	Info *Info `json:"info,omitempty" yaml:"info,omitempty"`

	// BasePath is the Swagger 2.0 base path prefix
	BasePath string `json:"basePath,omitempty" yaml:"basePath,omitempty"`

	// Paths maps path templates to their operations
	Paths map[string]*PathItem `json:"paths" yaml:"paths"`

	// Definitions is the Swagger 2.0 reusable schema table
	Definitions map[string]*Schema `json:"definitions,omitempty" yaml:"definitions,omitempty"`

	// Components holds the OpenAPI 3.x reusable objects
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	// Title is the title of the API
	Title string `json:"title" yaml:"title"`

	// Description is a description of the API
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version is the version of the API
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Components holds OpenAPI 3.x reusable objects.
type Components struct {
	// Schemas is the reusable schema table
	Schemas map[string]*Schema `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

// PathItem represents the operations available on a single path.
type PathItem struct {
	// Get is the GET operation
	Get *Operation `json:"get,omitempty" yaml:"get,omitempty"`

	// Post is the POST operation
	Post *Operation `json:"post,omitempty" yaml:"post,omitempty"`

	// Put is the PUT operation
	Put *Operation `json:"put,omitempty" yaml:"put,omitempty"`

	// Delete is the DELETE operation
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`

	// Patch is the PATCH operation
	Patch *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Parameters are parameters shared by all operations on this path
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// MethodOperation pairs an operation with its lowercase HTTP method.
type MethodOperation struct {
	// Method is the lowercase HTTP method key from the document
	Method string

	// Operation is the operation declared under that method
	Operation *Operation
}

// Operations returns the operations of the path item in a fixed method
// order (get, post, put, delete, patch) so traversal is deterministic.
func (p *PathItem) Operations() []MethodOperation {
	ops := make([]MethodOperation, 0, 5)
	for _, m := range []MethodOperation{
		{Method: "get", Operation: p.Get},
		{Method: "post", Operation: p.Post},
		{Method: "put", Operation: p.Put},
		{Method: "delete", Operation: p.Delete},
		{Method: "patch", Operation: p.Patch},
	} {
		if m.Operation != nil {
			ops = append(ops, m)
		}
	}
	return ops
}

// Operation represents one (path, method) pair in the document.
type Operation struct {
	// Tags group operations into modules; the first tag wins
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Summary is a brief summary of the operation
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Description is a detailed description of the operation
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// OperationID is a unique identifier, may be absent
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`

	// Parameters is the declared parameter list
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// RequestBody is the OpenAPI 3.x request body, may be absent
	RequestBody *RequestBody `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`

	// Deprecated indicates if the operation is deprecated
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// Parameter represents one parameter of an operation.
type Parameter struct {
	// Name is the parameter name in its original casing
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// In is the parameter location (query, header, formData, body)
	In string `json:"in,omitempty" yaml:"in,omitempty"`

	// Description is a brief description of the parameter
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the parameter is required (defaults false)
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Type is the Swagger 2.0 inline parameter type
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Items is the Swagger 2.0 inline array item schema
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Schema is the parameter schema (inline type or $ref)
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody represents an OpenAPI 3.x request body.
type RequestBody struct {
	// Description is a brief description of the request body
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Required indicates if the request body is required
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Content maps media types to their schemas
	Content map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType represents one media type entry of a request body.
type MediaType struct {
	// Schema defines the structure of the content
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// JSONSchema returns the application/json schema of the request body,
// or nil when the body declares no JSON content.
func (r *RequestBody) JSONSchema() *Schema {
	if r == nil || r.Content == nil {
		return nil
	}
	media, ok := r.Content["application/json"]
	if !ok {
		return nil
	}
	return media.Schema
}
