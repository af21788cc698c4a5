//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdfconcat/internal/pdf/pdftest"
)

// fixtureCount is the number of indices Fixtures covers. Every fifth
// index is left out so runs exercise the skip path.
const fixtureCount = 50

// Fixtures writes sample documents 1.pdf..50.pdf into in/, with page
// counts cycling from 1 to 4.
func Fixtures() error {
	if err := Init(); err != nil {
		return err
	}
	written := 0
	for i := 1; i <= fixtureCount; i++ {
		if i%5 == 0 {
			continue
		}
		sizes := pdftest.Pages(1+i%4, pdftest.Letter)
		path := filepath.Join(inputDir, fmt.Sprintf("%d.pdf", i))
		if err := os.WriteFile(path, pdftest.Build(sizes...), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written++
	}
	fmt.Printf("Wrote %d fixtures to %s\n", written, inputDir)
	return nil
}
