// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfconcat CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd merges documents when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pdfconcat",
	Short: "Concatenate numbered PDF documents into one",
	Long: `pdfconcat merges the files <start>.pdf through <start+count-1>.pdf from a
source directory into a single PDF. Missing indices are skipped and files
that fail to load are reported; neither stops the run. With --watermark every
imported page gets a green "Page N" label at the top center, where N counts
from 1 within its own source document.

After saving, pdfconcat prints the elapsed time, peak physical memory and
the size of the merged file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runMerge,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfconcat.yaml or ~/.config/pdfconcat/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfconcat")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfconcat"))
		}
	}

	viper.SetEnvPrefix("PDFCONCAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
