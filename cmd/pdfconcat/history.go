// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfconcat/internal/history"
	"github.com/pdiddy/pdfconcat/internal/report"
	"github.com/pdiddy/pdfconcat/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent merge runs from the history database",
	Long: `History lists the runs recorded with --history, newest first, so that
elapsed time, peak memory and output size can be compared across runs.
The database path comes from --db, or from the history setting of the
config file or PDFCONCAT_HISTORY.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("db", "", "history database (default: the history setting)")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString(keyHistory)
	}
	if dbPath == "" {
		return fmt.Errorf("no history database: pass --db or set history in the config")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	return formatHistoryOutput(cmd.OutOrStdout(), runs, jsonOutput)
}

func formatHistoryOutput(w io.Writer, runs []types.RunSummary, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	report.PrintHistory(w, runs)
	return nil
}
