// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"

	"github.com/pdiddy/pdfconcat/internal/pdf"
	"github.com/pdiddy/pdfconcat/internal/watermark"
)

// Source is a loaded source document, owned by one loop iteration.
type Source interface {
	watermark.Canvas
	Path() string
	PageCount() int
	Close() error
}

// Target is the accumulator document receiving appended pages.
type Target interface {
	Append(src Source) error
	PageCount() int
	Save(path string) error
}

// Engine creates the accumulator and loads source documents.
type Engine interface {
	Create() (Target, error)
	Open(path string) (Source, error)
}

// PDFEngine adapts a pdfcpu-backed engine to Engine.
func PDFEngine(e *pdf.Engine) Engine {
	return pdfEngine{e: e}
}

type pdfEngine struct {
	e *pdf.Engine
}

func (p pdfEngine) Create() (Target, error) {
	acc, err := p.e.Create()
	if err != nil {
		return nil, err
	}
	return pdfTarget{acc: acc}, nil
}

func (p pdfEngine) Open(path string) (Source, error) {
	doc, err := p.e.Open(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

type pdfTarget struct {
	acc *pdf.Accumulator
}

func (t pdfTarget) Append(src Source) error {
	doc, ok := src.(*pdf.Document)
	if !ok {
		return fmt.Errorf("cannot append %T to a pdf document", src)
	}
	return t.acc.Append(doc)
}

func (t pdfTarget) PageCount() int { return t.acc.PageCount() }

func (t pdfTarget) Save(path string) error { return t.acc.Save(path) }
