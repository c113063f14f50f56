// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// --- Global Command Variables ---
var (
	configPath string
	config     Config

	analyzeInput        string
	analyzeUnified      string
	analyzeOutput       string
	analyzeImplications bool
	analyzePretty       bool

	samplePretty bool

	rootCmd = &cobra.Command{
		Use:   "latticemeet",
		Short: "Minimal semantic footprint analysis for code changes",
		Long: `latticemeet computes, from a structured description of a code change,
the minimal set of semantic attributes the change necessarily implies,
using formal concept analysis (NextClosure over a diff-derived context).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			config = cfg
			configureLogging(config)
			return nil
		},
		SilenceUsage: true,
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a diff description and report its minimal meets",
		RunE:  runAnalyze, // Defined in cmd_analyze.go
	}

	sampleCmd = &cobra.Command{
		Use:   "sample",
		Short: "Run the built-in sample analysis",
		RunE:  runSample, // Defined in cmd_sample.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the latticemeet version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Diff description JSON file ('-' for stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeUnified, "unified", "u", "", "Unified diff file ('-' for stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report to this file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeImplications, "implications", false, "Include the implication basis in the report")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Print a human-readable summary instead of JSON")
	analyzeCmd.MarkFlagsMutuallyExclusive("input", "unified")

	sampleCmd.Flags().BoolVar(&samplePretty, "pretty", false, "Print a human-readable summary instead of JSON")

	rootCmd.AddCommand(analyzeCmd, sampleCmd, versionCmd)
}

// configureLogging installs the default slog handler per config.
func configureLogging(cfg Config) {
	opts := &slog.HandlerOptions{Level: cfg.Log.slogLevel()}
	var handler slog.Handler
	if cfg.Log.JSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
