// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/qinhj5/autoapi/pkg/types"
)

// DiffType represents the type of change detected.
type DiffType string

const (
	// DiffTypeAdded indicates a new item was added.
	DiffTypeAdded DiffType = "added"

	// DiffTypeRemoved indicates an item was removed.
	DiffTypeRemoved DiffType = "removed"

	// DiffTypeModified indicates an item was modified.
	DiffTypeModified DiffType = "modified"
)

// PathChange represents a change to a path/operation.
type PathChange struct {
	Type        DiffType
	Path        string
	Method      string
	Description string
}

// SchemaChange represents a change to a definition schema.
type SchemaChange struct {
	Type        DiffType
	Name        string
	Description string
}

// DiffResult contains the differences between two documents.
type DiffResult struct {
	// PathChanges contains all path/operation changes.
	PathChanges []PathChange

	// SchemaChanges contains all definition changes.
	SchemaChanges []SchemaChange

	// HasBreakingChanges indicates if any breaking changes were detected.
	HasBreakingChanges bool

	// Summary provides a human-readable summary of changes.
	Summary string
}

// IsEmpty returns true if there are no differences.
func (d *DiffResult) IsEmpty() bool {
	return len(d.PathChanges) == 0 && len(d.SchemaChanges) == 0
}

// Differ compares two Swagger/OpenAPI documents.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff compares two documents and returns the differences between
// their paths maps and their definitions tables.
func (d *Differ) Diff(old, current *types.Document) *DiffResult {
	result := &DiffResult{
		PathChanges:   []PathChange{},
		SchemaChanges: []SchemaChange{},
	}

	d.diffPaths(old, current, result)
	d.diffSchemas(old, current, result)

	result.HasBreakingChanges = d.detectBreakingChanges(result)
	result.Summary = d.generateSummary(result)

	return result
}

// diffPaths compares the paths between two documents.
func (d *Differ) diffPaths(old, current *types.Document, result *DiffResult) {
	oldPaths := map[string]*types.PathItem{}
	currentPaths := map[string]*types.PathItem{}

	if old != nil && old.Paths != nil {
		oldPaths = old.Paths
	}
	if current != nil && current.Paths != nil {
		currentPaths = current.Paths
	}

	for path, oldItem := range oldPaths {
		currentItem, exists := currentPaths[path]
		if !exists {
			for _, op := range oldItem.Operations() {
				result.PathChanges = append(result.PathChanges, PathChange{
					Type:        DiffTypeRemoved,
					Path:        path,
					Method:      strings.ToUpper(op.Method),
					Description: fmt.Sprintf("Removed %s %s", strings.ToUpper(op.Method), path),
				})
			}
			continue
		}
		d.diffPathItem(path, oldItem, currentItem, result)
	}

	for path, currentItem := range currentPaths {
		if _, exists := oldPaths[path]; !exists {
			for _, op := range currentItem.Operations() {
				result.PathChanges = append(result.PathChanges, PathChange{
					Type:        DiffTypeAdded,
					Path:        path,
					Method:      strings.ToUpper(op.Method),
					Description: fmt.Sprintf("Added %s %s", strings.ToUpper(op.Method), path),
				})
			}
		}
	}
}

// diffPathItem compares operations within a path item.
func (d *Differ) diffPathItem(path string, old, current *types.PathItem, result *DiffResult) {
	methods := []struct {
		name      string
		oldOp     *types.Operation
		currentOp *types.Operation
	}{
		{"GET", old.Get, current.Get},
		{"POST", old.Post, current.Post},
		{"PUT", old.Put, current.Put},
		{"DELETE", old.Delete, current.Delete},
		{"PATCH", old.Patch, current.Patch},
	}

	for _, m := range methods {
		switch {
		case m.oldOp == nil && m.currentOp == nil:
			continue
		case m.oldOp == nil:
			result.PathChanges = append(result.PathChanges, PathChange{
				Type:        DiffTypeAdded,
				Path:        path,
				Method:      m.name,
				Description: fmt.Sprintf("Added %s %s", m.name, path),
			})
		case m.currentOp == nil:
			result.PathChanges = append(result.PathChanges, PathChange{
				Type:        DiffTypeRemoved,
				Path:        path,
				Method:      m.name,
				Description: fmt.Sprintf("Removed %s %s", m.name, path),
			})
		case !reflect.DeepEqual(m.oldOp, m.currentOp):
			result.PathChanges = append(result.PathChanges, PathChange{
				Type:        DiffTypeModified,
				Path:        path,
				Method:      m.name,
				Description: fmt.Sprintf("Modified %s %s", m.name, path),
			})
		}
	}
}

// diffSchemas compares the definitions tables between two documents.
func (d *Differ) diffSchemas(old, current *types.Document, result *DiffResult) {
	oldSchemas := rawDefinitions(old)
	currentSchemas := rawDefinitions(current)

	for name, oldSchema := range oldSchemas {
		currentSchema, exists := currentSchemas[name]
		if !exists {
			result.SchemaChanges = append(result.SchemaChanges, SchemaChange{
				Type:        DiffTypeRemoved,
				Name:        name,
				Description: fmt.Sprintf("Removed schema %s", name),
			})
			continue
		}
		if !reflect.DeepEqual(oldSchema, currentSchema) {
			result.SchemaChanges = append(result.SchemaChanges, SchemaChange{
				Type:        DiffTypeModified,
				Name:        name,
				Description: fmt.Sprintf("Modified schema %s", name),
			})
		}
	}

	for name := range currentSchemas {
		if _, exists := oldSchemas[name]; !exists {
			result.SchemaChanges = append(result.SchemaChanges, SchemaChange{
				Type:        DiffTypeAdded,
				Name:        name,
				Description: fmt.Sprintf("Added schema %s", name),
			})
		}
	}
}

// rawDefinitions returns whichever schema table the document carries
// without caring about its declared version.
func rawDefinitions(doc *types.Document) map[string]*types.Schema {
	if doc == nil {
		return map[string]*types.Schema{}
	}
	if doc.Definitions != nil {
		return doc.Definitions
	}
	if doc.Components != nil && doc.Components.Schemas != nil {
		return doc.Components.Schemas
	}
	return map[string]*types.Schema{}
}

// detectBreakingChanges reports whether any removal was recorded.
func (d *Differ) detectBreakingChanges(result *DiffResult) bool {
	for _, change := range result.PathChanges {
		if change.Type == DiffTypeRemoved {
			return true
		}
	}
	for _, change := range result.SchemaChanges {
		if change.Type == DiffTypeRemoved {
			return true
		}
	}
	return false
}

// generateSummary builds a human-readable change summary.
func (d *Differ) generateSummary(result *DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	pathAdded, pathRemoved, pathModified := 0, 0, 0
	for _, c := range result.PathChanges {
		switch c.Type {
		case DiffTypeAdded:
			pathAdded++
		case DiffTypeRemoved:
			pathRemoved++
		case DiffTypeModified:
			pathModified++
		}
	}

	schemaAdded, schemaRemoved, schemaModified := 0, 0, 0
	for _, c := range result.SchemaChanges {
		switch c.Type {
		case DiffTypeAdded:
			schemaAdded++
		case DiffTypeRemoved:
			schemaRemoved++
		case DiffTypeModified:
			schemaModified++
		}
	}

	if pathAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) added", pathAdded))
	}
	if pathRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) removed", pathRemoved))
	}
	if pathModified > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) modified", pathModified))
	}
	if schemaAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) added", schemaAdded))
	}
	if schemaRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) removed", schemaRemoved))
	}
	if schemaModified > 0 {
		parts = append(parts, fmt.Sprintf("%d schema(s) modified", schemaModified))
	}

	summary := strings.Join(parts, ", ")
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}

	return summary
}
