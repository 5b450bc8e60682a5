// Command dynfmt-verify runs conformance vectors against the renderer
// and reports every mismatch. With no arguments it runs the corpus
// embedded in the library; file arguments point at external vector
// files in the same YAML layout.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	dynfmt "github.com/goliatone/go-dynfmt"
	"github.com/goliatone/go-dynfmt/pkg/testsupport"
)

type mismatch struct {
	file   string
	vector string
	got    string
	want   string
}

func main() {
	verbose := flag.Bool("v", false, "print each vector as it runs")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [vector files...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nRun renderer conformance vectors. Without arguments the corpus\nembedded in the library is used.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		mismatches []mismatch
		total      int
	)

	if paths := flag.Args(); len(paths) > 0 {
		for _, path := range paths {
			vectors, err := testsupport.LoadVectors(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "verify %s: %v\n", path, err)
				os.Exit(1)
			}
			total += len(vectors)
			mismatches = append(mismatches, check(path, vectors, *verbose)...)
		}
	} else {
		fsys := dynfmt.VectorsFS()
		entries, err := fs.ReadDir(fsys, ".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify embedded corpus: %v\n", err)
			os.Exit(1)
		}
		for _, entry := range entries {
			vectors, err := testsupport.LoadVectorsFS(fsys, entry.Name())
			if err != nil {
				fmt.Fprintf(os.Stderr, "verify %s: %v\n", entry.Name(), err)
				os.Exit(1)
			}
			total += len(vectors)
			mismatches = append(mismatches, check(entry.Name(), vectors, *verbose)...)
		}
	}

	if len(mismatches) > 0 {
		sort.Slice(mismatches, func(i, j int) bool {
			if mismatches[i].file == mismatches[j].file {
				return mismatches[i].vector < mismatches[j].vector
			}
			return mismatches[i].file < mismatches[j].file
		})
		for _, m := range mismatches {
			fmt.Fprintf(os.Stderr, "%s: %s\n  got  %q\n  want %q\n", m.file, m.vector, m.got, m.want)
		}
		fmt.Fprintf(os.Stderr, "%d of %d vectors failed\n", len(mismatches), total)
		os.Exit(1)
	}

	fmt.Printf("verified %d vectors\n", total)
}

func check(file string, vectors []testsupport.Vector, verbose bool) []mismatch {
	var out []mismatch
	for _, v := range vectors {
		got := dynfmt.Format(v.Template, v.Args...)
		if verbose {
			fmt.Printf("%s: %s\n", file, v.Name)
		}
		if got != v.Want {
			out = append(out, mismatch{file: file, vector: v.Name, got: got, want: v.Want})
		}
	}
	return out
}
