// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfconcat/internal/history"
	"github.com/pdiddy/pdfconcat/internal/memstat"
	"github.com/pdiddy/pdfconcat/internal/merge"
	"github.com/pdiddy/pdfconcat/internal/pdf"
	"github.com/pdiddy/pdfconcat/internal/report"
	"github.com/pdiddy/pdfconcat/pkg/types"
)

// Flag and config keys.
const (
	keyStart     = "start"
	keyCount     = "count"
	keyWatermark = "watermark"
	keySourceDir = "source-directory"
	keyTarget    = "target"
	keyReport    = "report"
	keyMetrics   = "metrics-file"
	keyHistory   = "history"
)

func init() {
	addMergeFlags(rootCmd.Flags())
	bindFlags(viper.GetViper(), rootCmd.Flags())
}

func addMergeFlags(f *pflag.FlagSet) {
	f.IntP(keyStart, "s", types.DefaultStart, "the number of the document to start with")
	f.IntP(keyCount, "c", types.DefaultCount, "the number of documents to process")
	f.BoolP(keyWatermark, "w", false, `stamp "Page N" at the top center of every imported page`)
	f.StringP(keySourceDir, "d", types.DefaultSourceDir, "the directory where the <n>.pdf files are stored")
	f.StringP(keyTarget, "t", types.DefaultTarget, "the path of the merged PDF file")
	f.String(keyReport, "", "write the run summary as YAML to this file")
	f.String(keyMetrics, "", "write the run summary in Prometheus text format to this file")
	f.String(keyHistory, "", "record the run in this SQLite history database")
}

func bindFlags(v *viper.Viper, f *pflag.FlagSet) {
	f.VisitAll(func(fl *pflag.Flag) {
		_ = v.BindPFlag(fl.Name, fl)
	})
}

// exports names the optional files a run summary is written to.
type exports struct {
	Report  string
	Metrics string
	History string
}

func mergeConfig(v *viper.Viper) types.MergeConfig {
	return types.MergeConfig{
		Start:     v.GetInt(keyStart),
		Count:     v.GetInt(keyCount),
		Watermark: v.GetBool(keyWatermark),
		SourceDir: v.GetString(keySourceDir),
		Target:    v.GetString(keyTarget),
	}
}

func exportConfig(v *viper.Viper) exports {
	return exports{
		Report:  v.GetString(keyReport),
		Metrics: v.GetString(keyMetrics),
		History: v.GetString(keyHistory),
	}
}

func runMerge(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	cfg := mergeConfig(v)
	if err := cfg.Validate(); err != nil {
		return err
	}
	eng := merge.PDFEngine(pdf.NewEngine())
	return execute(cmd.Context(), cmd.OutOrStdout(), eng, memstat.NewProcSampler(), cfg, exportConfig(v))
}

// execute runs the merge, prints the summary and writes the requested
// exports. Export failures are returned after the merged file is saved.
func execute(ctx context.Context, w io.Writer, eng merge.Engine, sampler memstat.Sampler, cfg types.MergeConfig, ex exports) error {
	summary, err := merge.Run(eng, sampler, cfg, w)
	if err != nil {
		return err
	}
	report.PrintSummary(w, summary)

	if ex.Report != "" {
		if err := report.WriteYAML(ex.Report, summary); err != nil {
			return err
		}
	}
	if ex.Metrics != "" {
		if err := report.WriteMetrics(ex.Metrics, summary); err != nil {
			return err
		}
	}
	if ex.History != "" {
		return recordRun(ctx, ex.History, summary)
	}
	return nil
}

func recordRun(ctx context.Context, dbPath string, summary types.RunSummary) error {
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(ctx, summary)
}
