// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watermark stamps a "Page N" label at the top center of every
// page of a document. N counts from 1 within the stamped document.
package watermark

import (
	"fmt"
	"io"
	"time"
)

// Fixed label appearance.
const (
	FontName = "Helvetica"
	FontSize = 14
	// FillColor is pure green as a hex RGB triple.
	FillColor = "#00FF00"
)

// Label is a text overlay placed on one page.
type Label struct {
	Text     string
	FontName string
	FontSize int
	Color    string
}

// PageLabel returns the label for the 1-based page number n.
func PageLabel(n int) Label {
	return Label{
		Text:     fmt.Sprintf("Page %d", n),
		FontName: FontName,
		FontSize: FontSize,
		Color:    FillColor,
	}
}

// Page describes the geometry of one page in points.
type Page struct {
	Number int
	Width  float64
	Height float64
}

// Canvas is a document that can be measured and stamped.
type Canvas interface {
	// Pages returns the geometry of every page in document order.
	Pages() ([]Page, error)

	// Measure returns the rendered width and height of l in points.
	Measure(l Label) (width, height float64, err error)

	// Place draws l on page number page with its lower-left corner at (x, y).
	Place(page int, l Label, x, y float64) error
}

// Origin returns the lower-left corner that centers a label of size
// (lw, lh) horizontally and pins it to the top edge of a page of size
// (w, h).
func Origin(w, h, lw, lh float64) (x, y float64) {
	return (w - lw) / 2, h - lh
}

// Apply stamps every page of c with its page label. The first failure
// stops stamping and is returned; the document may be partially stamped.
func Apply(c Canvas) (int, error) {
	pages, err := c.Pages()
	if err != nil {
		return 0, fmt.Errorf("reading page geometry: %w", err)
	}
	for i, p := range pages {
		l := PageLabel(i + 1)
		lw, lh, err := c.Measure(l)
		if err != nil {
			return i, fmt.Errorf("measuring %q: %w", l.Text, err)
		}
		x, y := Origin(p.Width, p.Height, lw, lh)
		if err := c.Place(p.Number, l, x, y); err != nil {
			return i, fmt.Errorf("placing %q on page %d: %w", l.Text, p.Number, err)
		}
	}
	return len(pages), nil
}

// ApplyTimed is Apply followed by a timing line on w.
func ApplyTimed(c Canvas, w io.Writer) error {
	start := time.Now()
	n, err := Apply(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Watermarking %d pages took: %v\n", n, time.Since(start))
	return nil
}
