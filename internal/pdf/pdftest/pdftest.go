// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest writes small, valid PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"testing"
)

// Size is a page size in points.
type Size struct {
	Width, Height float64
}

// Common page sizes.
var (
	Letter = Size{612, 792}
	A4     = Size{595, 842}
)

// Build returns a PDF with one page per entry in sizes. Each page's
// content draws a single line so the page is not blank.
func Build(sizes ...Size) []byte {
	var buf bytes.Buffer
	n := len(sizes)
	// Objects: 1 catalog, 2 page tree, pages 3..n+2, contents n+3..2n+2.
	offsets := make([]int, 2*n+3)

	buf.WriteString("%PDF-1.4\n")

	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [")
	for i := range n {
		fmt.Fprintf(&buf, " %d 0 R", 3+i)
	}
	fmt.Fprintf(&buf, " ] /Count %d >>\nendobj\n", n)

	for i, s := range sizes {
		obj := 3 + i
		offsets[obj] = buf.Len()
		fmt.Fprintf(&buf,
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Resources << >> /Contents %d 0 R >>\nendobj\n",
			obj, s.Width, s.Height, 3+n+i)
	}

	for i := range n {
		obj := 3 + n + i
		content := fmt.Sprintf("%d %d m %d %d l S", 10+i, 10, 100+i, 100)
		offsets[obj] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			obj, len(content), content)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), xref)
	return buf.Bytes()
}

// WriteFile writes Build(sizes...) to path, failing the test on error.
func WriteFile(t testing.TB, path string, sizes ...Size) {
	t.Helper()
	if err := os.WriteFile(path, Build(sizes...), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// Pages returns n copies of s.
func Pages(n int, s Size) []Size {
	sizes := make([]Size, n)
	for i := range sizes {
		sizes[i] = s
	}
	return sizes
}

// WriteCorrupt writes a file that has a .pdf name but no PDF structure.
func WriteCorrupt(t testing.TB, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("this is not a pdf\n"), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
