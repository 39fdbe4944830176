// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"

	"github.com/qinhj5/autoapi/internal/config"
	"github.com/qinhj5/autoapi/internal/openapi"
	"github.com/qinhj5/autoapi/pkg/types"
)

// loadConfig loads the configuration, applies the global flag
// overrides, and validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply command-line overrides
	if swaggerURL != "" {
		cfg.Swagger.URL = swaggerURL
	}
	if swaggerFile != "" {
		cfg.Swagger.File = swaggerFile
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadDocument fetches the Swagger document from the configured URL,
// falling back to the configured file.
func loadDocument(ctx context.Context, cfg *config.Config) (*types.Document, error) {
	if cfg.Swagger.URL != "" {
		printVerbose("Fetching swagger document from %s", cfg.Swagger.URL)
		return openapi.NewLoader(cfg.Swagger.Headers).Fetch(ctx, cfg.Swagger.URL)
	}

	printVerbose("Reading swagger document from %s", cfg.Swagger.File)
	return openapi.ReadFile(cfg.Swagger.File)
}
