// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/latticeworks/latticemeet/services/meet"
	"github.com/latticeworks/latticemeet/services/meet/diff"
)

// runAnalyze is the CLI handler for "latticemeet analyze".
//
// It reads a change description (structured JSON via --input or a
// unified diff via --unified), runs the minimal-meet analysis, and
// writes the report as JSON (or a pretty summary) to stdout or the
// --output file.
func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeInput == "" && analyzeUnified == "" {
		return fmt.Errorf("one of --input or --unified is required")
	}

	var desc diff.Description
	switch {
	case analyzeInput != "":
		data, err := readInput(analyzeInput)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, &desc); err != nil {
			return fmt.Errorf("decoding diff description: %w", err)
		}
	case analyzeUnified != "":
		data, err := readInput(analyzeUnified)
		if err != nil {
			return err
		}
		desc, err = diff.FromUnified(data)
		if err != nil {
			return err
		}
	}

	analyzer := meet.NewAnalyzer(&meet.Options{
		Classifier:          diff.NewTokenClassifier(config.tokenRules()),
		IncludeImplications: analyzeImplications,
	})
	report, err := analyzer.AnalyzeDiff(cmd.Context(), desc)
	if err != nil {
		return err
	}

	return writeReport(report, analyzeOutput, analyzePretty)
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// writeReport emits the report to the output path or stdout.
func writeReport(report *meet.Report, outputPath string, pretty bool) error {
	if pretty && outputPath == "" {
		fmt.Print(renderReport(report))
		return nil
	}

	if outputPath != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		if err := os.WriteFile(outputPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		if pretty {
			fmt.Print(renderReport(report))
		}
		return nil
	}

	return OutputJSON(report, false)
}
