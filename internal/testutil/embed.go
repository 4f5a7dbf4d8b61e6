// Package testutil gives tests access to the YAML element descriptions
// embedded from testdata.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"testing"
)

// TestdataFS holds the embedded element descriptions.
//
//go:embed testdata/*.yaml
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("testutil: cannot read %q: %w", name, err)
	}
	return data, nil
}

// MustReadTestData is ReadTestData for use inside a test.
func MustReadTestData(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := ReadTestData(name)
	if err != nil {
		tb.Fatal(err)
	}
	return data
}
