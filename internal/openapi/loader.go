// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

// Package openapi provides Swagger/OpenAPI document loading, reference
// resolution, and document comparison.
package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	version "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"github.com/qinhj5/autoapi/pkg/types"
)

// Loader fetches and decodes Swagger/OpenAPI documents.
type Loader struct {
	client  *http.Client
	headers map[string]string
}

// NewLoader creates a Loader that sends the given headers with every
// document fetch.
func NewLoader(headers map[string]string) *Loader {
	return &Loader{
		client:  &http.Client{Timeout: 30 * time.Second},
		headers: headers,
	}
}

// Fetch retrieves the document from an HTTP(S) URL. A non-200 response
// or an undecodable body is an error; callers treat it as fatal for
// the whole run.
func (l *Loader) Fetch(ctx context.Context, url string) (*types.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build swagger request: %w", err)
	}
	for k, v := range l.headers {
		req.Header.Set(k, v)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request swagger url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot request swagger url: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read swagger response: %w", err)
	}

	return Parse(data, "json")
}

// ReadFile loads a document from a local file. The format is inferred
// from the file extension, defaulting to JSON.
func ReadFile(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read swagger file: %w", err)
	}

	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}

	return Parse(data, format)
}

// Parse decodes raw document bytes in the given format ("json" or
// "yaml") and checks it is a usable Swagger 2 / OpenAPI 3 document.
func Parse(data []byte, format string) (*types.Document, error) {
	var doc types.Document

	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid swagger document: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid swagger document: %w", err)
		}
	}

	if doc.Paths == nil {
		return nil, errors.New("invalid swagger document: missing paths")
	}
	if _, err := DocumentVersion(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// DocumentVersion returns the document's major version: 2 for Swagger
// 2.0, 3 for OpenAPI 3.x. Anything else is an error.
func DocumentVersion(doc *types.Document) (int, error) {
	raw := doc.OpenAPI
	if raw == "" {
		raw = doc.Swagger
	}
	if raw == "" {
		return 0, errors.New("invalid swagger document: neither swagger nor openapi version declared")
	}

	v, err := version.NewVersion(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid swagger document: bad version %q: %w", raw, err)
	}

	major := v.Segments()[0]
	if major != 2 && major != 3 {
		return 0, fmt.Errorf("unsupported swagger document version %q", raw)
	}
	return major, nil
}

// Definitions returns the document's reusable schema table: the v2
// definitions map or the v3 components.schemas map, keyed by name.
func Definitions(doc *types.Document) (map[string]*types.Schema, error) {
	major, err := DocumentVersion(doc)
	if err != nil {
		return nil, err
	}

	if major == 2 {
		if doc.Definitions == nil {
			return map[string]*types.Schema{}, nil
		}
		return doc.Definitions, nil
	}

	if doc.Components == nil || doc.Components.Schemas == nil {
		return map[string]*types.Schema{}, nil
	}
	return doc.Components.Schemas, nil
}
