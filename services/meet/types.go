// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package meet computes the minimal semantic footprint of a code change.
//
// # Description
//
// Given a structured diff description, the analyzer builds a formal
// context (objects are changed entities, attributes are semantic
// properties), enumerates its concept lattice, and reports the
// minimal-meet concepts: the concepts with the smallest extents, whose
// intents are the tightest attribute combinations the change actually
// exhibits. Downstream tooling uses the report to decide which checks a
// change necessarily implies.
//
// # Thread Safety
//
// Analyzer is safe for concurrent use; each AnalyzeDiff call constructs
// its own context, enumerator, and closure cache, and no state crosses
// call boundaries.
package meet

import (
	"github.com/latticeworks/latticemeet/services/meet/diff"
	"github.com/latticeworks/latticemeet/services/meet/lattice"
)

// Report is the structured result of one diff analysis.
//
// Concepts holds only the minimal-meet concepts; TotalConcepts counts
// the whole lattice. All sequences are deterministically ordered, so
// identical inputs produce identical reports (modulo AnalysisID).
type Report struct {
	AnalysisID    string                `json:"analysis_id"`
	TotalConcepts int                   `json:"total_concepts"`
	MinimalMeets  int                   `json:"minimal_meets"`
	Concepts      []ConceptSummary      `json:"concepts"`
	Implications  []lattice.Implication `json:"implications,omitempty"`
	Analysis      Stats                 `json:"analysis"`
}

// ConceptSummary is one concept in report form.
type ConceptSummary struct {
	Extent     []string `json:"extent"`
	Intent     []string `json:"intent"`
	ExtentSize int      `json:"extent_size"`
	IntentSize int      `json:"intent_size"`
}

// Stats describes the analyzed context.
type Stats struct {
	ObjectsCount    int     `json:"objects_count"`
	AttributesCount int     `json:"attributes_count"`
	RelationDensity float64 `json:"relation_density"`
}

// Options configures an Analyzer.
type Options struct {
	// Classifier overrides the semantic tagging heuristic used when
	// building contexts. Nil selects the default token classifier.
	Classifier diff.Classifier

	// IncludeImplications adds the minimal-generator implication basis
	// to every report. Off by default: basis construction is
	// exponential in intent size.
	IncludeImplications bool

	// MaxIntentSize bounds implication-basis subset enumeration.
	// 0 selects lattice.DefaultMaxIntentSize.
	MaxIntentSize int
}
