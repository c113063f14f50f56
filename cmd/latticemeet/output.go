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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/latticeworks/latticemeet/services/meet"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4682B4"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	intentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#228B22"))
	extentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
)

// OutputJSON writes data to stdout as JSON.
func OutputJSON(data interface{}, compact bool) error {
	encoder := json.NewEncoder(os.Stdout)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// renderReport formats a report as a human-readable summary.
func renderReport(r *meet.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Minimal meet analysis"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d objects, %d attributes, density %.3f\n",
		labelStyle.Render("context:"),
		r.Analysis.ObjectsCount, r.Analysis.AttributesCount, r.Analysis.RelationDensity))
	b.WriteString(fmt.Sprintf("%s %d total, %d minimal\n",
		labelStyle.Render("concepts:"), r.TotalConcepts, r.MinimalMeets))

	for i, c := range r.Concepts {
		b.WriteString(fmt.Sprintf("\n%s\n", titleStyle.Render(fmt.Sprintf("minimal concept %d", i+1))))
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render("intent:"), intentStyle.Render(joinOrNone(c.Intent))))
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render("extent:"), extentStyle.Render(joinOrNone(c.Extent))))
	}

	if len(r.Implications) > 0 {
		b.WriteString(fmt.Sprintf("\n%s\n", titleStyle.Render("implications")))
		for _, imp := range r.Implications {
			b.WriteString(fmt.Sprintf("  %s → %s\n",
				intentStyle.Render(strings.Join(imp.Premise, ", ")),
				extentStyle.Render(strings.Join(imp.Conclusion, ", "))))
		}
	}
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
