package dynfmt_test

import (
	"io/fs"
	"strings"
	"testing"

	dynfmt "github.com/goliatone/go-dynfmt"
)

func TestVectorsFSContainsCorpus(t *testing.T) {
	fsys := dynfmt.VectorsFS()
	for _, name := range []string{"core.yaml", "escapes.yaml", "width_precision.yaml", "unicode.yaml"} {
		if _, err := fs.ReadFile(fsys, name); err != nil {
			t.Errorf("expected vector file %s to be readable: %v", name, err)
		}
	}
}

func TestVectorsFSOnlyYAML(t *testing.T) {
	entries, err := fs.ReadDir(dynfmt.VectorsFS(), ".")
	if err != nil {
		t.Fatalf("read embedded vectors: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("embedded vector corpus is empty")
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			t.Errorf("unexpected embedded entry %q", e.Name())
		}
	}
}
