// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Schema represents a JSON-schema fragment: a primitive type, a $ref
// pointer into the shared definitions table, or an object with
// properties. It is only ever used to synthesize an example value.
type Schema struct {
	// Ref is a reference to a reusable schema ($ref)
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	// Type is the data type (string, integer, boolean, array, object)
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Format is the data format (int64, date-time, etc.)
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Description is a description of the schema
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Items is the schema for array items
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Properties maps property names to their schemas
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`

	// Required is the list of required property names
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`

	// AdditionalProperties defines free-form extra properties
	AdditionalProperties *AdditionalProperties `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}

// AdditionalProperties models the additionalProperties keyword, which
// the JSON Schema grammar allows to be either a boolean or a schema.
type AdditionalProperties struct {
	// Allowed is set when the document used the boolean form
	Allowed bool

	// Schema is set when the document used the schema form
	Schema *Schema
}

// UnmarshalJSON accepts both the boolean and the schema form.
func (a *AdditionalProperties) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("true")) || bytes.Equal(trimmed, []byte("false")) {
		return json.Unmarshal(trimmed, &a.Allowed)
	}

	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return err
	}
	a.Allowed = true
	a.Schema = &schema
	return nil
}

// UnmarshalYAML accepts both the boolean and the schema form.
func (a *AdditionalProperties) UnmarshalYAML(value *yaml.Node) error {
	var allowed bool
	if err := value.Decode(&allowed); err == nil {
		a.Allowed = allowed
		return nil
	}

	var schema Schema
	if err := value.Decode(&schema); err != nil {
		return err
	}
	a.Allowed = true
	a.Schema = &schema
	return nil
}

// MarshalJSON writes back the form the document used.
func (a *AdditionalProperties) MarshalJSON() ([]byte, error) {
	if a.Schema != nil {
		return json.Marshal(a.Schema)
	}
	return json.Marshal(a.Allowed)
}
