// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for autoapi.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the autoapi configuration.
type Config struct {
	// Swagger describes where the API document comes from
	Swagger SwaggerConfig `mapstructure:"swagger" yaml:"swagger" json:"swagger"`

	// BaseURL is the base URL the generated harness and the coverage
	// analyzer prepend to declared paths
	BaseURL string `mapstructure:"baseUrl" yaml:"baseUrl" json:"baseUrl"`

	// Output contains the generated-tree layout configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Coverage contains the coverage analyzer configuration
	Coverage CoverageConfig `mapstructure:"coverage" yaml:"coverage" json:"coverage"`

	// Diff contains the document snapshot comparison configuration
	Diff DiffConfig `mapstructure:"diff" yaml:"diff" json:"diff"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// SwaggerConfig describes the API document source.
type SwaggerConfig struct {
	// URL is the HTTP(S) location of the Swagger/OpenAPI document
	URL string `mapstructure:"url" yaml:"url" json:"url"`

	// File is a local document path, used instead of URL when set
	File string `mapstructure:"file" yaml:"file" json:"file"`

	// Headers are sent with the document fetch request
	Headers map[string]string `mapstructure:"headers" yaml:"headers" json:"headers"`
}

// OutputConfig contains the generated-tree layout configuration.
type OutputConfig struct {
	// Root is the output root directory, cleared before generation
	Root string `mapstructure:"root" yaml:"root" json:"root"`

	// APIDir is the API-client subdirectory name under Root
	APIDir string `mapstructure:"apiDir" yaml:"apiDir" json:"apiDir"`

	// TestcasesDir is the test subdirectory name under Root
	TestcasesDir string `mapstructure:"testcasesDir" yaml:"testcasesDir" json:"testcasesDir"`

	// PackagePrefix is the import prefix generated conftest files use
	// to reach the emitted API package (e.g. "template")
	PackagePrefix string `mapstructure:"packagePrefix" yaml:"packagePrefix" json:"packagePrefix"`
}

// CoverageConfig contains the coverage analyzer configuration.
type CoverageConfig struct {
	// LogDir is the directory holding recorded request logs
	LogDir string `mapstructure:"logDir" yaml:"logDir" json:"logDir"`

	// LogGlob selects the request log files inside LogDir
	LogGlob string `mapstructure:"logGlob" yaml:"logGlob" json:"logGlob"`

	// ReportPath is where the tabular coverage report is written
	ReportPath string `mapstructure:"reportPath" yaml:"reportPath" json:"reportPath"`
}

// DiffConfig contains the document snapshot comparison configuration.
type DiffConfig struct {
	// HistoryDir is where dated document snapshots are kept
	HistoryDir string `mapstructure:"historyDir" yaml:"historyDir" json:"historyDir"`

	// OutputDir is where diff results are written
	OutputDir string `mapstructure:"outputDir" yaml:"outputDir" json:"outputDir"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"autoapi.yaml",
	"autoapi.json",
	".autoapi.yaml",
	".autoapi.json",
}

// ErrConfigNotFound is returned when no config file is found.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Swagger: SwaggerConfig{
			Headers: map[string]string{},
		},
		Output: OutputConfig{
			Root:          "template",
			APIDir:        "api",
			TestcasesDir:  "testcases",
			PackagePrefix: "template",
		},
		Coverage: CoverageConfig{
			LogDir:     "log",
			LogGlob:    "request_*.log",
			ReportPath: "report/api_coverage.txt",
		},
		Diff: DiffConfig{
			HistoryDir: "tmp/history_swagger",
			OutputDir:  "tmp/swagger_diff",
		},
		Watch: WatchConfig{
			Debounce: 500,
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. autoapi.yaml
// 2. autoapi.json
// 3. .autoapi.yaml
// 4. .autoapi.json
//
// If configPath is provided, it will use that path instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		found := false
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				found = true
				break
			}
		}
		if !found {
			return Default(), nil
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.root", "template")
	v.SetDefault("output.apiDir", "api")
	v.SetDefault("output.testcasesDir", "testcases")
	v.SetDefault("output.packagePrefix", "template")
	v.SetDefault("coverage.logDir", "log")
	v.SetDefault("coverage.logGlob", "request_*.log")
	v.SetDefault("coverage.reportPath", "report/api_coverage.txt")
	v.SetDefault("diff.historyDir", "tmp/history_swagger")
	v.SetDefault("diff.outputDir", "tmp/swagger_diff")
	v.SetDefault("watch.debounce", 500)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Swagger.URL == "" && c.Swagger.File == "" {
		errs = append(errs, ValidationError{
			Field:   "swagger",
			Message: "either swagger.url or swagger.file is required",
		})
	}

	if c.Swagger.URL != "" && !strings.HasPrefix(c.Swagger.URL, "http") {
		errs = append(errs, ValidationError{
			Field:   "swagger.url",
			Message: fmt.Sprintf("invalid URL %q, must start with http(s)", c.Swagger.URL),
		})
	}

	if c.Output.Root == "" {
		errs = append(errs, ValidationError{
			Field:   "output.root",
			Message: "output root is required",
		})
	}

	if c.Output.APIDir == "" || c.Output.TestcasesDir == "" {
		errs = append(errs, ValidationError{
			Field:   "output",
			Message: "apiDir and testcasesDir are required",
		})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the loaded config file, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
