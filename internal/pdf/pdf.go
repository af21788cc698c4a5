// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf adapts pdfcpu to the document operations a merge run needs:
// loading source files, stamping text onto their pages, appending their
// page trees to an accumulator and writing the result.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/pdfconcat/internal/watermark"
)

// defaultPaper sizes the empty page tree of a new accumulator. It only
// matters when nothing is appended.
const defaultPaper = "Letter"

// Engine creates and loads documents with a shared pdfcpu configuration.
type Engine struct {
	conf *model.Configuration
}

// NewEngine returns an engine using relaxed validation, so slightly
// malformed real-world files still load.
func NewEngine() *Engine {
	// Keep pdfcpu from installing its config dir under the user's home.
	api.DisableConfigDir()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.CreateBookmarks = false
	return &Engine{conf: conf}
}

// Create returns an empty accumulator document.
func (e *Engine) Create() (*Accumulator, error) {
	dim, ok := types.PaperSize[defaultPaper]
	if !ok {
		return nil, fmt.Errorf("unknown paper size %s", defaultPaper)
	}
	ctx, err := pdfcpu.CreateContextWithXRefTable(e.conf, dim)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	// A created context has no read or optimization state, but merging
	// folds the source's object-number sets into both.
	if ctx.LinearizationObjs == nil {
		ctx.LinearizationObjs = types.IntSet{}
	}
	ctx.Read = &model.ReadContext{
		ObjectStreams: types.IntSet{},
		XRefStreams:   types.IntSet{},
	}
	ctx.Optimize = &model.OptimizationContext{
		FontObjects:          map[int]*model.FontObject{},
		FormFontObjects:      map[int]*model.FontObject{},
		Fonts:                map[string][]int{},
		DuplicateFonts:       map[int]types.Dict{},
		DuplicateFontObjs:    types.IntSet{},
		ImageObjects:         map[int]*model.ImageObject{},
		DuplicateImages:      map[int]*types.StreamDict{},
		DuplicateImageObjs:   types.IntSet{},
		DuplicateInfoObjects: types.IntSet{},
		ContentStreamCache:   map[int]*types.StreamDict{},
		FormStreamCache:      map[int]*types.StreamDict{},
		Cache:                map[int]bool{},
	}
	return &Accumulator{ctx: ctx}, nil
}

// Open reads and validates the PDF at path. The file is read fully into
// memory and closed before Open returns.
func (e *Engine) Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ctx, err := api.ReadAndValidate(bytes.NewReader(data), e.conf)
	if err != nil {
		return nil, err
	}
	return &Document{path: path, ctx: ctx}, nil
}

// Document is a loaded source document. It implements watermark.Canvas.
type Document struct {
	path string
	ctx  *model.Context
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string { return d.path }

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	if d.ctx == nil {
		return 0
	}
	return d.ctx.PageCount
}

// Close drops the parsed document. The Document is unusable afterwards.
func (d *Document) Close() error {
	d.ctx = nil
	return nil
}

// Pages implements watermark.Canvas.
func (d *Document) Pages() ([]watermark.Page, error) {
	if d.ctx == nil {
		return nil, fmt.Errorf("%s: document closed", d.path)
	}
	dims, err := d.ctx.PageDims()
	if err != nil {
		return nil, err
	}
	pages := make([]watermark.Page, len(dims))
	for i, dim := range dims {
		pages[i] = watermark.Page{Number: i + 1, Width: dim.Width, Height: dim.Height}
	}
	return pages, nil
}

// Measure implements watermark.Canvas. Only the standard 14 fonts are
// supported. The height is the font's bounding-box line height, which is
// the height of the box the stamp is drawn in.
func (d *Document) Measure(l watermark.Label) (float64, float64, error) {
	if !font.IsCoreFont(l.FontName) {
		return 0, 0, fmt.Errorf("font %s is not a standard font", l.FontName)
	}
	if l.FontSize <= 0 {
		return 0, 0, fmt.Errorf("invalid font size %d", l.FontSize)
	}
	return font.TextWidth(l.Text, l.FontName, l.FontSize), font.LineHeight(l.FontName, l.FontSize), nil
}

// Place implements watermark.Canvas by adding an unscaled, unrotated text
// stamp anchored at the page's lower-left corner and offset to (x, y).
func (d *Document) Place(page int, l watermark.Label, x, y float64) error {
	if d.ctx == nil {
		return fmt.Errorf("%s: document closed", d.path)
	}
	desc := fmt.Sprintf(
		"fontname:%s, points:%d, fillcolor:%s, position:bl, offset:%.2f %.2f, scalefactor:1 abs, rotation:0, opacity:1",
		l.FontName, l.FontSize, l.Color, x, y,
	)
	wm, err := api.TextWatermark(l.Text, desc, true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("building stamp: %w", err)
	}
	if err := pdfcpu.AddWatermarks(d.ctx, types.IntSet{page: true}, wm); err != nil {
		return fmt.Errorf("stamping page %d: %w", page, err)
	}
	return nil
}

// Accumulator is the output document that source page trees are
// appended to.
type Accumulator struct {
	ctx   *model.Context
	pages int
}

// PageCount returns the number of pages appended so far.
func (a *Accumulator) PageCount() int { return a.pages }

// Append merges all pages of d onto the end of the accumulator. An empty
// document is a no-op.
func (a *Accumulator) Append(d *Document) error {
	if d.ctx == nil {
		return fmt.Errorf("%s: document closed", d.path)
	}
	n := d.PageCount()
	if n == 0 {
		return nil
	}
	if err := pdfcpu.MergeXRefTables(filepath.Base(d.path), d.ctx, a.ctx, false, false); err != nil {
		return err
	}
	a.pages += n
	return nil
}

// Save writes the accumulator to path, replacing any existing file.
func (a *Accumulator) Save(path string) error {
	return api.WriteContextFile(a.ctx, path)
}
