// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfconcat/pkg/types"
)

// WriteYAML writes s to path as YAML, replacing any existing file.
func WriteYAML(path string, s types.RunSummary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadYAML reads a run summary written by WriteYAML.
func ReadYAML(path string) (types.RunSummary, error) {
	var s types.RunSummary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return s, nil
}

const metricsNamespace = "pdfconcat"

// Registry returns a registry holding one gauge per run figure, labeled
// with the run ID, source directory and watermark flag.
func Registry(s types.RunSummary) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{
		"run_id":    s.ID,
		"source":    s.SourceDir,
		"watermark": strconv.FormatBool(s.Watermark),
	}

	gauges := []struct {
		name  string
		help  string
		value float64
	}{
		{"documents_imported", "Source documents appended to the output.", float64(s.Imported)},
		{"documents_skipped", "Indices without a matching source file.", float64(s.Skipped)},
		{"documents_failed", "Source files that failed to load.", float64(s.Failed)},
		{"output_pages", "Pages in the merged output.", float64(s.Pages)},
		{"elapsed_seconds", "Wall-clock duration of the run.", s.Elapsed.Seconds()},
		{"peak_memory_bytes", "Peak physical memory observed during the run.", float64(s.PeakMemory)},
		{"output_size_bytes", "On-disk size of the merged output.", float64(s.TargetSize)},
		{"last_run_timestamp_seconds", "Start time of the run.", float64(s.StartedAt.Unix())},
	}
	for _, g := range gauges {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        g.name,
			Help:        g.help,
			ConstLabels: labels,
		})
		gauge.Set(g.value)
		reg.MustRegister(gauge)
	}
	return reg
}

// WriteMetrics writes s in the Prometheus text format to path, suitable
// for the node exporter textfile collector.
func WriteMetrics(path string, s types.RunSummary) error {
	if err := prometheus.WriteToTextfile(path, Registry(s)); err != nil {
		return fmt.Errorf("writing metrics %s: %w", path, err)
	}
	return nil
}
