// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"

	"github.com/latticeworks/latticemeet/services/meet"
	"github.com/latticeworks/latticemeet/services/meet/diff"
)

// sampleDescription is the canonical example: an API change with its
// accompanying tests.
func sampleDescription() diff.Description {
	return diff.Description{
		Files: map[string]diff.FileChanges{
			"src/api.py": {
				Added:    []string{"function:get_user", "function:create_user"},
				Modified: []string{"class:UserService"},
			},
			"tests/test_api.py": {
				Added: []string{"function:test_get_user", "function:test_create_user"},
			},
		},
	}
}

// runSample is the CLI handler for "latticemeet sample". It analyzes
// the built-in sample description, which is handy for smoke tests and
// for seeing the report shape without preparing an input file.
func runSample(cmd *cobra.Command, args []string) error {
	analyzer := meet.NewAnalyzer(&meet.Options{
		Classifier: diff.NewTokenClassifier(config.tokenRules()),
	})
	report, err := analyzer.AnalyzeDiff(cmd.Context(), sampleDescription())
	if err != nil {
		return err
	}
	return writeReport(report, "", samplePretty)
}
