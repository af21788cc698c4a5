// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package memstat samples the physical memory use of the running process
// and tracks the peak across a run.
package memstat

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/procfs"
)

// Unavailable is printed when a sample cannot be taken.
const Unavailable = "Couldn't get the current memory usage :("

// Sampler reports the current physical memory use in bytes. ok is false
// when the platform cannot provide a value.
type Sampler interface {
	Sample() (bytes uint64, ok bool)
}

// ProcSampler reads the resident set size of the current process from
// /proc. On platforms without procfs every sample is unavailable.
type ProcSampler struct {
	fs    procfs.FS
	fsErr error
}

// NewProcSampler returns a sampler backed by the default /proc mount.
func NewProcSampler() *ProcSampler {
	fs, err := procfs.NewDefaultFS()
	return &ProcSampler{fs: fs, fsErr: err}
}

// NewProcSamplerAt returns a sampler reading a procfs mounted at mountPoint.
func NewProcSamplerAt(mountPoint string) *ProcSampler {
	fs, err := procfs.NewFS(mountPoint)
	return &ProcSampler{fs: fs, fsErr: err}
}

// Sample implements Sampler.
func (s *ProcSampler) Sample() (uint64, bool) {
	if s.fsErr != nil {
		return 0, false
	}
	p, err := s.fs.Self()
	if err != nil {
		return 0, false
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, false
	}
	rss := stat.ResidentMemory()
	if rss <= 0 {
		return 0, false
	}
	return uint64(rss), true
}

// Peak is the running maximum of successful samples. The zero value is
// ready to use. It is passed explicitly to every sampling point.
type Peak struct {
	max     uint64
	samples int
}

// Max returns the largest sample observed, or zero.
func (p *Peak) Max() uint64 { return p.max }

// Samples returns the number of successful samples folded into the peak.
func (p *Peak) Samples() int { return p.samples }

// Observe folds one sample into the peak.
func (p *Peak) Observe(bytes uint64) {
	p.samples++
	if bytes > p.max {
		p.max = bytes
	}
}

// Report takes one sample, prints it to w and updates the peak. An
// unavailable sample prints the fixed notice and leaves the peak alone.
func Report(w io.Writer, s Sampler, p *Peak) {
	bytes, ok := s.Sample()
	if !ok {
		fmt.Fprintln(w, Unavailable)
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Physical memory usage: %s\n", humanize.IBytes(bytes))
	p.Observe(bytes)
}
