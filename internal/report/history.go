// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pdiddy/pdfconcat/pkg/types"
)

const startedAtLayout = "2006-01-02 15:04:05"

// PrintHistory writes one table row per run, in the order given.
func PrintHistory(w io.Writer, runs []types.RunSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle())
	t.AppendHeader(table.Row{
		"Started", "Source", "Start", "Count", "Watermark", "Pages", "Time Elapsed", "Max Memory", "Target File Size",
	})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.StartedAt.Local().Format(startedAtLayout),
			r.SourceDir,
			strconv.Itoa(r.Start),
			strconv.Itoa(r.Count),
			strconv.FormatBool(r.Watermark),
			strconv.Itoa(r.Pages),
			r.Elapsed.String(),
			humanize.IBytes(r.PeakMemory),
			humanize.IBytes(uint64(max(r.TargetSize, 0))),
		})
	}
	t.Render()
	fmt.Fprintf(w, "%d runs\n", len(runs))
}
