package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB cap for corpus entries

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addBuiltinSeeds(f)
}

// addTestdataSeeds walks the repository testdata tree and feeds every .cin
// file into the corpus.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".cin" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addBuiltinSeeds guarantees a minimal corpus even on a bare checkout.
func addBuiltinSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("namespace App {\n}\n"))
	f.Add([]byte("namespace App {\n\tclass Box {\n\t\tpublic int value;\n\t}\n}\n"))
	f.Add([]byte("namespace App {\n\tclass Math {\n\t\tint addOne(int n) {\n\t\t\treturn n + 1;\n\t\t}\n\t}\n}\n"))
	f.Add([]byte("namespace App {\n\tclass App {\n\t\tpublic int result;\n\n\t\tvoid run() {\n\t\t\tthis.result = 42;\n\t\t}\n\t}\n}\n"))
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
