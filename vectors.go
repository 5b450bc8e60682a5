package dynfmt

import (
	"embed"
	"io/fs"
)

//go:embed testdata/vectors/*.yaml
var embeddedVectors embed.FS

// VectorsFS exposes the conformance vector corpus committed under
// testdata/vectors, rooted at the vectors directory, so tooling such
// as cmd/dynfmt-verify can run the corpus from a built binary without
// a source checkout.
func VectorsFS() fs.FS {
	sub, err := fs.Sub(embeddedVectors, "testdata/vectors")
	if err != nil {
		return embeddedVectors
	}
	return sub
}
