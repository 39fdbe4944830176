// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package generator

import (
	"github.com/qinhj5/autoapi/internal/config"
	"github.com/qinhj5/autoapi/internal/openapi"
	"github.com/qinhj5/autoapi/pkg/types"
)

// Generator drives a full generation run: group operations into
// modules, render the client class, fixture, and test stubs for each,
// and write the tree under the configured output root.
type Generator struct {
	cfg      *config.Config
	resolver *openapi.Resolver
	writer   *TreeWriter
}

// Summary reports what a generation run produced.
type Summary struct {
	// Modules is the number of module directories written
	Modules int

	// Operations is the number of client methods and test stubs written
	Operations int

	// Warnings holds non-fatal problems hit along the way, such as
	// untagged operations or unresolvable schema references
	Warnings []string
}

// New creates a generator for the given configuration and schema
// definition table.
func New(cfg *config.Config, definitions map[string]*types.Schema) *Generator {
	return &Generator{
		cfg:      cfg,
		resolver: openapi.NewResolver(definitions),
		writer:   NewTreeWriter(cfg.Output.Root, cfg.Output.APIDir, cfg.Output.TestcasesDir),
	}
}

// Run clears the output root and emits every module of the document.
// Individual operations that cannot be rendered are skipped with a
// warning; filesystem failures abort the run.
func (g *Generator) Run(doc *types.Document) (*Summary, error) {
	if err := g.writer.Clear(); err != nil {
		return nil, err
	}

	modules, warnings := Group(doc)
	summary := &Summary{Warnings: warnings}

	for _, module := range SortedModules(modules) {
		if err := g.writer.EnsureModuleDirs(module); err != nil {
			return nil, err
		}

		classCode, kept, classWarnings := RenderAPIClass(module, modules[module], g.resolver)
		summary.Warnings = append(summary.Warnings, classWarnings...)
		if err := g.writer.WriteAPIFile(module, classCode); err != nil {
			return nil, err
		}

		conftest := RenderFixture(module, g.cfg.Output.PackagePrefix, g.cfg.Output.APIDir)
		if err := g.writer.WriteConftest(module, conftest); err != nil {
			return nil, err
		}

		for _, mo := range kept {
			stub, fileName := RenderTestStub(module, mo)
			if err := g.writer.WriteTestFile(module, fileName, stub); err != nil {
				return nil, err
			}
			summary.Operations++
		}

		summary.Modules++
	}

	return summary, nil
}
