// Package testsupport loads conformance vector fixtures and provides
// writer fakes shared by the test suites, the verifier command, and
// the vector regeneration script.
package testsupport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// Vector is one conformance case: a template, the arguments it is
// rendered with, and the exact expected output. YAML keeps the corpus
// readable and lets scalar arguments carry their natural types.
type Vector struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Args     []any  `yaml:"args,omitempty"`
	Want     string `yaml:"want"`
}

// LoadVectors reads a vector file from the filesystem.
func LoadVectors(path string) ([]Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read vectors: %w", err)
	}
	return parseVectors(data)
}

// LoadVectorsFS reads a vector file from fsys, typically the embedded
// corpus the root package exposes.
func LoadVectorsFS(fsys fs.FS, path string) ([]Vector, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read vectors: %w", err)
	}
	return parseVectors(data)
}

// MustLoadVectors loads a vector file for a test.
func MustLoadVectors(t *testing.T, path string) []Vector {
	t.Helper()

	vectors, err := LoadVectors(path)
	if err != nil {
		t.Fatalf("load vectors: %v", err)
	}
	return vectors
}

func parseVectors(data []byte) ([]Vector, error) {
	var out []Vector
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal vectors: %w", err)
	}
	for i, v := range out {
		if v.Name == "" {
			return nil, fmt.Errorf("testsupport: vector %d: name is required", i)
		}
	}
	return out, nil
}

// WriteVectors marshals vectors back to a YAML file, creating parent
// directories as needed. Used by scripts/generate-vectors.
func WriteVectors(path string, vectors []Vector) error {
	payload, err := yaml.Marshal(vectors)
	if err != nil {
		return fmt.Errorf("testsupport: marshal vectors: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("testsupport: mkdir vector dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("testsupport: write vectors: %w", err)
	}
	return nil
}

// ErrWrite is the error a FailingWriter returns once its budget is
// spent.
var ErrWrite = errors.New("testsupport: write failed")

// FailingWriter accepts Budget bytes and then fails. The failing write
// stores nothing beyond the budget, mimicking a sink that dies mid
// stream.
type FailingWriter struct {
	Budget int

	n int
}

// Write accepts the prefix of p that fits the remaining budget.
func (w *FailingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.Budget {
		accepted := w.Budget - w.n
		if accepted < 0 {
			accepted = 0
		}
		w.n += accepted
		return accepted, ErrWrite
	}
	w.n += len(p)
	return len(p), nil
}

// Written reports how many bytes the writer accepted.
func (w *FailingWriter) Written() int {
	return w.n
}

// CaptureOutput runs a render function against a buffer and returns
// what it wrote, failing the test on error.
func CaptureOutput(t *testing.T, render func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}
