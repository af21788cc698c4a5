// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders and exports the summary of a merge run: a console
// table, a YAML record and a Prometheus textfile.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/pdfconcat/pkg/types"
)

// Header lists the summary table columns in order.
var Header = table.Row{
	"Source", "Start", "Count", "Time Elapsed", "Max Memory", "Target File Size",
	"Imported", "Skipped", "Failed", "Pages",
}

// Row returns the summary table row for s.
func Row(s types.RunSummary) table.Row {
	return table.Row{
		s.SourceDir,
		strconv.Itoa(s.Start),
		strconv.Itoa(s.Count),
		s.Elapsed.String(),
		humanize.IBytes(s.PeakMemory),
		humanize.IBytes(uint64(max(s.TargetSize, 0))),
		strconv.Itoa(s.Imported),
		strconv.Itoa(s.Skipped),
		strconv.Itoa(s.Failed),
		strconv.Itoa(s.Pages),
	}
}

// tableStyle is the rounded style with headers printed as written rather
// than upper-cased.
func tableStyle() table.Style {
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	return style
}

// PrintSummary writes the elapsed time, the summary table and the target
// path to w.
func PrintSummary(w io.Writer, s types.RunSummary) {
	fmt.Fprintf(w, "Time elapsed is: %v\n", s.Elapsed)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle())
	t.AppendHeader(Header)
	t.AppendRow(Row(s))
	t.Render()

	fmt.Fprintf(w, "Target File: %s\n", s.Target)
}
