// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfconcat/pkg/types"
)

func sampleSummary() types.RunSummary {
	return types.RunSummary{
		ID:        "0b6c3f1e-8d1a-4f0e-9a55-2f1f5b9f3c10",
		StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		MergeConfig: types.MergeConfig{
			Start:     7000000,
			Count:     100,
			Watermark: true,
			SourceDir: "./in",
			Target:    "merged.pdf",
		},
		Imported:      40,
		Skipped:       55,
		Failed:        5,
		Pages:         320,
		Elapsed:       1500 * time.Millisecond,
		PeakMemory:    64 * 1024 * 1024,
		MemorySamples: 43,
		TargetSize:    5 * 1024 * 1024,
	}
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	PrintSummary(&out, sampleSummary())
	got := out.String()

	assert.True(t, strings.HasPrefix(got, "Time elapsed is: 1.5s\n"))
	for _, want := range []string{
		"Source", "Start", "Count", "Time Elapsed", "Max Memory", "Target File Size",
		"./in", "7000000", "100", "64 MiB", "5.0 MiB", "320",
	} {
		assert.Contains(t, got, want)
	}
	assert.True(t, strings.HasSuffix(got, "Target File: merged.pdf\n"))
}

func TestTables_KeepHeaderCase(t *testing.T) {
	tests := []struct {
		name  string
		print func(w *bytes.Buffer)
		want  []string
	}{
		{
			name:  "summary",
			print: func(w *bytes.Buffer) { PrintSummary(w, sampleSummary()) },
			want:  []string{"Time Elapsed", "Max Memory", "Target File Size"},
		},
		{
			name:  "history",
			print: func(w *bytes.Buffer) { PrintHistory(w, []types.RunSummary{sampleSummary()}) },
			want:  []string{"Started", "Watermark", "Max Memory"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.print(&out)
			got := out.String()
			for _, want := range tt.want {
				assert.Contains(t, got, want)
				assert.NotContains(t, got, strings.ToUpper(want))
			}
		})
	}
}

func TestRow_ZeroValues(t *testing.T) {
	row := Row(types.RunSummary{MergeConfig: types.MergeConfig{SourceDir: "."}})
	require.Len(t, row, len(Header))
	assert.Equal(t, ".", row[0])
	assert.Equal(t, "0 B", row[4])
	assert.Equal(t, "0 B", row[5])
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	want := sampleSummary()

	require.NoError(t, WriteYAML(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source_directory: ./in")
	assert.Contains(t, string(data), "elapsed: 1.5s")

	got, err := ReadYAML(path)
	require.NoError(t, err)
	assert.True(t, want.StartedAt.Equal(got.StartedAt))
	got.StartedAt = want.StartedAt
	assert.Equal(t, want, got)
}

func TestWriteYAML_BadPath(t *testing.T) {
	err := WriteYAML(filepath.Join(t.TempDir(), "missing", "report.yaml"), sampleSummary())
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	reg := Registry(sampleSummary())

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	expected := `
# HELP pdfconcat_output_pages Pages in the merged output.
# TYPE pdfconcat_output_pages gauge
pdfconcat_output_pages{run_id="0b6c3f1e-8d1a-4f0e-9a55-2f1f5b9f3c10",source="./in",watermark="true"} 320
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pdfconcat_output_pages"))
}

func TestWriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfconcat.prom")
	require.NoError(t, WriteMetrics(path, sampleSummary()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pdfconcat_peak_memory_bytes{")
	assert.Contains(t, string(data), "pdfconcat_elapsed_seconds{")
	assert.Contains(t, string(data), "} 1.5\n")
}

func TestPrintHistory(t *testing.T) {
	first := sampleSummary()
	second := sampleSummary()
	second.SourceDir = "./other"
	second.Watermark = false

	var out bytes.Buffer
	PrintHistory(&out, []types.RunSummary{first, second})
	got := out.String()

	assert.Contains(t, got, "Watermark")
	assert.Contains(t, got, "./in")
	assert.Contains(t, got, "./other")
	assert.Contains(t, got, "64 MiB")
	assert.True(t, strings.HasSuffix(got, "2 runs\n"))
}
