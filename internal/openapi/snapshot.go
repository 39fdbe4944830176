// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/qinhj5/autoapi/pkg/types"
)

// Snapshotter persists timestamped document snapshots and compares
// each new document against the previous run.
type Snapshotter struct {
	historyDir string
	outputDir  string
	now        func() time.Time
}

// NewSnapshotter creates a snapshotter storing history under
// historyDir and diff results under outputDir.
func NewSnapshotter(historyDir, outputDir string) *Snapshotter {
	return &Snapshotter{historyDir: historyDir, outputDir: outputDir, now: time.Now}
}

func (s *Snapshotter) stamp() string {
	t := s.now()
	return fmt.Sprintf("%s_%09d", t.Format("20060102_150405"), t.Nanosecond())
}

// Save writes the document as a JSON snapshot named after the current
// time and returns the snapshot path.
func (s *Snapshotter) Save(doc *types.Document) (string, error) {
	if err := os.MkdirAll(s.historyDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	path := filepath.Join(s.historyDir, s.stamp()+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return path, nil
}

// Latest loads the newest stored snapshot. ok is false when no
// snapshot exists yet.
func (s *Snapshotter) Latest() (doc *types.Document, ok bool, err error) {
	entries, err := os.ReadDir(s.historyDir)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read history directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, false, nil
	}
	sort.Strings(names)

	path := filepath.Join(s.historyDir, names[len(names)-1])
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	doc = &types.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return doc, true, nil
}

// Compare diffs the document against the latest stored snapshot and
// then stores the document as the new snapshot. firstRun is true when
// no previous snapshot existed, in which case result is nil. A
// non-empty diff result is also written under the output directory.
func (s *Snapshotter) Compare(doc *types.Document) (result *DiffResult, firstRun bool, err error) {
	previous, ok, err := s.Latest()
	if err != nil {
		return nil, false, err
	}

	if _, err := s.Save(doc); err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, true, nil
	}

	result = NewDiffer().Diff(previous, doc)
	if !result.IsEmpty() {
		if err := s.writeResult(result); err != nil {
			return nil, false, err
		}
	}
	return result, false, nil
}

func (s *Snapshotter) writeResult(result *DiffResult) error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create diff output directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode diff result: %w", err)
	}

	path := filepath.Join(s.outputDir, "diff_"+s.stamp()+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write diff result %s: %w", path, err)
	}
	return nil
}
