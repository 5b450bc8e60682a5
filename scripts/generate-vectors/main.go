// Regenerates the want fields of the conformance vectors from the
// current renderer. Run without flags to report drift; pass -write to
// rewrite the files in place. Note that rewriting drops YAML comments.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	dynfmt "github.com/goliatone/go-dynfmt"
	"github.com/goliatone/go-dynfmt/pkg/testsupport"
)

func main() {
	var (
		dir   = flag.String("dir", filepath.Join("testdata", "vectors"), "vector directory to check")
		write = flag.Bool("write", false, "rewrite drifted want fields in place")
	)
	flag.Parse()

	paths, err := filepath.Glob(filepath.Join(*dir, "*.yaml"))
	if err != nil {
		log.Fatalf("glob vectors: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("no vector files under %s", *dir)
	}

	drifted := 0
	for _, path := range paths {
		vectors, err := testsupport.LoadVectors(path)
		if err != nil {
			log.Fatalf("load %s: %v", path, err)
		}

		changed := false
		for i, v := range vectors {
			got := dynfmt.Format(v.Template, v.Args...)
			if got == v.Want {
				continue
			}
			drifted++
			changed = true
			fmt.Printf("%s: %s\n  file   %q\n  render %q\n", path, v.Name, v.Want, got)
			vectors[i].Want = got
		}

		if changed && *write {
			if err := testsupport.WriteVectors(path, vectors); err != nil {
				log.Fatalf("write %s: %v", path, err)
			}
			fmt.Printf("rewrote %s\n", path)
		}
	}

	if drifted == 0 {
		fmt.Println("vectors match the renderer")
		return
	}
	if !*write {
		fmt.Printf("%d vectors drifted; rerun with -write to update\n", drifted)
		os.Exit(1)
	}
}
