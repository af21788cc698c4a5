// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunSummary records the outcome of one merge run. It backs the summary
// table, the YAML report, the metrics textfile and the history ledger.
type RunSummary struct {
	// ID uniquely identifies the run.
	ID string `json:"id" yaml:"id"`

	// StartedAt is the wall-clock time the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	MergeConfig `yaml:",inline"`

	// Imported is the number of source documents appended to the output.
	Imported int `json:"imported" yaml:"imported"`

	// Skipped is the number of indices without a matching file.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Failed is the number of files that exist but could not be loaded.
	Failed int `json:"failed" yaml:"failed"`

	// Pages is the page count of the merged output.
	Pages int `json:"pages" yaml:"pages"`

	// Elapsed is the wall-clock duration from setup to the completed save.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`

	// PeakMemory is the maximum physical memory sample in bytes. Zero when
	// no sample could be taken.
	PeakMemory uint64 `json:"peak_memory" yaml:"peak_memory"`

	// MemorySamples is the number of successful memory samples.
	MemorySamples int `json:"memory_samples" yaml:"memory_samples"`

	// TargetSize is the on-disk size of the written target in bytes.
	TargetSize int64 `json:"target_size" yaml:"target_size"`
}

// Attempted returns the number of indices processed.
func (s RunSummary) Attempted() int {
	return s.Imported + s.Skipped + s.Failed
}
