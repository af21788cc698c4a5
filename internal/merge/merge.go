// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge concatenates the numbered PDF files of a directory into one
// document, optionally stamping page numbers, and reports timing, memory
// and output size for the run.
package merge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/pdfconcat/internal/memstat"
	"github.com/pdiddy/pdfconcat/internal/watermark"
	"github.com/pdiddy/pdfconcat/pkg/types"
)

type outcome int

const (
	outcomeImported outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Run merges the documents cfg.Start through cfg.End()-1 into cfg.Target,
// printing progress lines to w. Missing files are skipped and files that
// fail to load are logged; both leave the run going. Engine init,
// watermark, append, save and stat failures abort the run with an *Error.
// The returned summary is filled in as far as the run got.
func Run(eng Engine, sampler memstat.Sampler, cfg types.MergeConfig, w io.Writer) (summary types.RunSummary, err error) {
	start := time.Now()
	summary = types.RunSummary{
		ID:          uuid.NewString(),
		StartedAt:   start,
		MergeConfig: cfg,
	}
	var peak memstat.Peak
	defer func() {
		summary.PeakMemory = peak.Max()
		summary.MemorySamples = peak.Samples()
	}()

	acc, err := eng.Create()
	if err != nil {
		return summary, &Error{Kind: KindEngineInit, Err: err}
	}

	fmt.Fprintf(w, "Merging %d documents\n", cfg.Count)
	memstat.Report(w, sampler, &peak)

	for i := cfg.Start; i < cfg.End(); i++ {
		path := cfg.SourcePath(i)
		out, err := mergeOne(eng, acc, path, cfg.Watermark, w)
		if err != nil {
			if kind, _ := KindOf(err); kind.Fatal() {
				summary.Pages = acc.PageCount()
				return summary, err
			}
			fmt.Fprintf(w, "Error while importing %s: %v\n", path, errors.Unwrap(err))
		}
		switch out {
		case outcomeImported:
			summary.Imported++
			memstat.Report(w, sampler, &peak)
		case outcomeSkipped:
			summary.Skipped++
		case outcomeFailed:
			summary.Failed++
		}
	}
	summary.Pages = acc.PageCount()

	fmt.Fprintf(w, "Creating %s\n", cfg.Target)
	memstat.Report(w, sampler, &peak)
	if err := acc.Save(cfg.Target); err != nil {
		return summary, &Error{Kind: KindSave, Path: cfg.Target, Err: err}
	}
	memstat.Report(w, sampler, &peak)
	summary.Elapsed = time.Since(start)

	info, err := os.Stat(cfg.Target)
	if err != nil {
		return summary, &Error{Kind: KindStat, Path: cfg.Target, Err: err}
	}
	summary.TargetSize = info.Size()

	fmt.Fprintf(w, "\nBatch summary: %d imported, %d skipped, %d failed (total: %d), %d pages\n",
		summary.Imported, summary.Skipped, summary.Failed, summary.Attempted(), summary.Pages)
	return summary, nil
}

// mergeOne handles a single candidate path. The loaded document is
// released before it returns, whatever the outcome.
func mergeOne(eng Engine, acc Target, path string, stamp bool, w io.Writer) (outcome, error) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "Skipping %s as it does not exist.\n", path)
		return outcomeSkipped, nil
	}

	fmt.Fprintf(w, "Adding %s\n", path)
	doc, err := eng.Open(path)
	if err != nil {
		return outcomeFailed, &Error{Kind: KindLoad, Path: path, Err: err}
	}
	defer doc.Close()
	fmt.Fprintf(w, "Imported document %s\n", path)

	if stamp {
		if err := watermark.ApplyTimed(doc, w); err != nil {
			return 0, &Error{Kind: KindWatermark, Path: path, Err: err}
		}
	}
	if err := acc.Append(doc); err != nil {
		return 0, &Error{Kind: KindAppend, Path: path, Err: err}
	}
	return outcomeImported, nil
}
