// Package testdata provides example resources and the FHIRPath test suite for tests.
package testdata

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed examples fhirpath
var files embed.FS

// Example returns the contents of the named example, like "patient-example.json".
func Example(name string) []byte {
	b, err := files.ReadFile(path.Join("examples", name))
	if err != nil {
		log.Fatal().Err(err).Str("example", name).Msg("reading example")
	}
	return b
}

// Examples returns all examples of the given format ("json" or "xml") by file name.
func Examples(format string) map[string][]byte {
	entries, err := fs.ReadDir(files, "examples")
	if err != nil {
		log.Fatal().Err(err).Msg("listing examples")
	}

	examples := map[string][]byte{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "."+format) {
			continue
		}
		examples[e.Name()] = Example(e.Name())
	}
	return examples
}
