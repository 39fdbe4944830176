// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/qinhj5/autoapi/internal/util"
	"github.com/qinhj5/autoapi/pkg/types"
)

// ModuleOperation binds one operation to the path and lowercase method
// it was declared under.
type ModuleOperation struct {
	// Path is the path template (e.g. "/users/{id}")
	Path string

	// Method is the lowercase HTTP method
	Method string

	// Operation is the declared operation
	Operation *types.Operation
}

// Group buckets the document's operations into modules keyed by the
// snake_cased first tag. Operations without tags cannot be grouped;
// they are excluded and reported as warnings. Paths and methods are
// visited in a deterministic order.
func Group(doc *types.Document) (map[string][]ModuleOperation, []string) {
	modules := map[string][]ModuleOperation{}
	var warnings []string

	for _, path := range sortedPaths(doc.Paths) {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		for _, mo := range item.Operations() {
			op := mo.Operation
			if len(op.Tags) == 0 {
				warnings = append(warnings, fmt.Sprintf(
					"operation %s %s has no tags and cannot be grouped, skipped",
					strings.ToUpper(mo.Method), path))
				continue
			}
			module := util.PascalToSnake(op.Tags[0])
			modules[module] = append(modules[module], ModuleOperation{
				Path:      path,
				Method:    mo.Method,
				Operation: op,
			})
		}
	}

	return modules, warnings
}

// SortedModules returns the module names in sorted order for
// deterministic emission.
func SortedModules(modules map[string][]ModuleOperation) []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedPaths returns the path keys in sorted order.
func sortedPaths(paths map[string]*types.PathItem) []string {
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
