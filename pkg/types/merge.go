// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default values for the merge flags.
const (
	DefaultStart     = 7000000
	DefaultCount     = 100
	DefaultSourceDir = "."
	DefaultTarget    = "merged.pdf"
)

// SourceExt is the extension every source document carries.
const SourceExt = ".pdf"

// MergeConfig holds the resolved settings for one merge run. It is built
// once from flags, config file and environment and never mutated.
type MergeConfig struct {
	// Start is the first document index to try.
	Start int `json:"start" yaml:"start"`

	// Count is the number of indices to attempt, starting at Start.
	Count int `json:"count" yaml:"count"`

	// Watermark enables the "Page N" overlay on every imported page.
	Watermark bool `json:"watermark" yaml:"watermark"`

	// SourceDir is the directory holding the <n>.pdf files.
	SourceDir string `json:"source_directory" yaml:"source_directory"`

	// Target is the path of the merged output file.
	Target string `json:"target" yaml:"target"`
}

// SourcePath returns the candidate path for document index i. The source
// directory is kept as given, so "./in" yields "./in/7.pdf".
func (c MergeConfig) SourcePath(i int) string {
	name := strconv.Itoa(i) + SourceExt
	if c.SourceDir == "" {
		return name
	}
	if strings.HasSuffix(c.SourceDir, string(os.PathSeparator)) {
		return c.SourceDir + name
	}
	return c.SourceDir + string(os.PathSeparator) + name
}

// End returns the first index past the range (exclusive).
func (c MergeConfig) End() int {
	return c.Start + c.Count
}

// Validate reports the first setting that cannot describe a run.
func (c MergeConfig) Validate() error {
	switch {
	case c.Start < 0:
		return fmt.Errorf("start must not be negative, got %d", c.Start)
	case c.Count < 0:
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	case c.SourceDir == "":
		return fmt.Errorf("source directory is required")
	case c.Target == "":
		return fmt.Errorf("target is required")
	}
	return nil
}
