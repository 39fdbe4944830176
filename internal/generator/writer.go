// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	initFileName = "__init__.py"
	pyHeader     = "# -*- coding: utf-8 -*-\n"

	dirPerm  = 0755
	filePerm = 0644
)

// TreeWriter materializes the generated harness under the output root:
//
//	<root>/<apiDir>/<module>/<module>_api.py
//	<root>/<testcasesDir>/<module>/conftest.py
//	<root>/<testcasesDir>/<module>/test_<name>.py
//
// Every directory carries an __init__.py marker so the tree imports as
// a Python package.
type TreeWriter struct {
	root         string
	apiDir       string
	testcasesDir string
}

// NewTreeWriter creates a writer rooted at root with the given API and
// testcases directory names.
func NewTreeWriter(root, apiDir, testcasesDir string) *TreeWriter {
	return &TreeWriter{
		root:         root,
		apiDir:       filepath.Join(root, apiDir),
		testcasesDir: filepath.Join(root, testcasesDir),
	}
}

// Clear removes any previous output root and recreates it empty with a
// package marker. Callers run it exactly once, before the first module
// is written.
func (w *TreeWriter) Clear() error {
	if err := os.RemoveAll(w.root); err != nil {
		return fmt.Errorf("failed to clear output root %s: %w", w.root, err)
	}
	if err := os.MkdirAll(w.root, dirPerm); err != nil {
		return fmt.Errorf("failed to create output root %s: %w", w.root, err)
	}
	return w.writeMarker(w.root)
}

// EnsureModuleDirs creates the API and testcases directories for one
// module, each with a package marker. Safe to call repeatedly.
func (w *TreeWriter) EnsureModuleDirs(module string) error {
	for _, dir := range []string{w.apiDir, w.testcasesDir, w.apiModuleDir(module), w.testModuleDir(module)} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		if err := w.writeMarker(dir); err != nil {
			return err
		}
	}
	return nil
}

// WriteAPIFile writes the module's client class source.
func (w *TreeWriter) WriteAPIFile(module, code string) error {
	return w.writeFile(filepath.Join(w.apiModuleDir(module), module+"_api.py"), code)
}

// WriteConftest writes the module's fixture source.
func (w *TreeWriter) WriteConftest(module, code string) error {
	return w.writeFile(filepath.Join(w.testModuleDir(module), "conftest.py"), code)
}

// WriteTestFile writes one test stub. name must already carry the .py
// extension.
func (w *TreeWriter) WriteTestFile(module, name, code string) error {
	return w.writeFile(filepath.Join(w.testModuleDir(module), name), code)
}

func (w *TreeWriter) apiModuleDir(module string) string {
	return filepath.Join(w.apiDir, module)
}

func (w *TreeWriter) testModuleDir(module string) string {
	return filepath.Join(w.testcasesDir, module)
}

func (w *TreeWriter) writeMarker(dir string) error {
	return w.writeFile(filepath.Join(dir, initFileName), pyHeader)
}

func (w *TreeWriter) writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
