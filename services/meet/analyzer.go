// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package meet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/latticeworks/latticemeet/services/meet/diff"
	"github.com/latticeworks/latticemeet/services/meet/lattice"
)

// Analyzer computes minimal-meet reports for diff descriptions.
//
// # Description
//
// The analyzer is the orchestration layer over the lattice kernel:
// build a context from the description, enumerate the concept lattice,
// pick the minimal-meet concepts, and assemble the report. Either the
// whole report is produced or an error is returned; there is no partial
// output.
//
// # Thread Safety
//
// Safe for concurrent use. All mutable state (context, closure memo
// cache, enumerator) is created per call.
type Analyzer struct {
	builder             *diff.ContextBuilder
	includeImplications bool
	maxIntentSize       int
}

// NewAnalyzer creates an analyzer. Nil options select the defaults.
func NewAnalyzer(opts *Options) *Analyzer {
	var o Options
	if opts != nil {
		o = *opts
	}
	return &Analyzer{
		builder:             diff.NewContextBuilder(o.Classifier),
		includeImplications: o.IncludeImplications,
		maxIntentSize:       o.MaxIntentSize,
	}
}

// AnalyzeDiff analyzes one change description.
//
// # Description
//
// An empty description is not an error: it yields a report with zero
// concepts and zero counts (enumeration is skipped entirely, so the
// empty context never manufactures a phantom concept). The ctx
// parameter is checked between phases; the kernel itself is a finite,
// deterministic computation with no suspension points.
//
// # Inputs
//
//   - ctx: Context for cancellation between analysis phases.
//   - desc: The change description.
//
// # Outputs
//
//   - *Report: Complete analysis report.
//   - error: Context construction or enumeration failure, or ctx.Err().
func (a *Analyzer) AnalyzeDiff(ctx context.Context, desc diff.Description) (*Report, error) {
	start := time.Now()
	ctx, span := startAnalyzeSpan(ctx, len(desc.Files))
	defer span.End()

	report := &Report{
		AnalysisID: uuid.NewString(),
		Concepts:   make([]ConceptSummary, 0),
	}

	if desc.Empty() {
		slog.Debug("empty diff description, skipping enumeration",
			slog.String("analysis_id", report.AnalysisID))
		recordAnalyzeMetrics(ctx, time.Since(start), 0, true)
		return report, nil
	}

	fctx, err := a.builder.Build(desc)
	if err != nil {
		recordAnalyzeMetrics(ctx, time.Since(start), 0, false)
		return nil, err
	}
	report.Analysis = Stats{
		ObjectsCount:    len(fctx.Objects()),
		AttributesCount: len(fctx.Attributes()),
		RelationDensity: fctx.Density(),
	}

	if err := ctx.Err(); err != nil {
		recordAnalyzeMetrics(ctx, time.Since(start), 0, false)
		return nil, err
	}

	enum := lattice.NewEnumerator(fctx)
	concepts, err := enum.Concepts()
	if err != nil {
		recordAnalyzeMetrics(ctx, time.Since(start), 0, false)
		return nil, fmt.Errorf("enumerating concepts: %w", err)
	}

	minimal := FindMinimalMeets(concepts)
	report.TotalConcepts = len(concepts)
	report.MinimalMeets = len(minimal)
	for _, c := range minimal {
		report.Concepts = append(report.Concepts, ConceptSummary{
			Extent:     c.Extent,
			Intent:     c.Intent,
			ExtentSize: len(c.Extent),
			IntentSize: len(c.Intent),
		})
	}

	if a.includeImplications {
		if err := ctx.Err(); err != nil {
			recordAnalyzeMetrics(ctx, time.Since(start), 0, false)
			return nil, err
		}
		basis, err := lattice.NewBasisBuilder(fctx, a.maxIntentSize).Basis()
		if err != nil {
			recordAnalyzeMetrics(ctx, time.Since(start), 0, false)
			return nil, fmt.Errorf("building implication basis: %w", err)
		}
		report.Implications = basis
	}

	setAnalyzeSpanResult(span, report.TotalConcepts, report.MinimalMeets)
	recordAnalyzeMetrics(ctx, time.Since(start), report.TotalConcepts, true)
	slog.Debug("diff analysis complete",
		slog.String("analysis_id", report.AnalysisID),
		slog.Int("objects", report.Analysis.ObjectsCount),
		slog.Int("attributes", report.Analysis.AttributesCount),
		slog.Int("total_concepts", report.TotalConcepts),
		slog.Int("minimal_meets", report.MinimalMeets),
		slog.Duration("duration", time.Since(start)))
	return report, nil
}

// Meet computes the attributes guaranteed to co-occur with the query.
//
// # Description
//
// Collects every concept whose intent intersects the query attributes
// and returns the intersection of those intents. The result is a plain
// set intersection; it is not guaranteed to be a closed set. Returns
// the empty set for an empty query or when no concept intersects it.
//
// # Inputs
//
//   - concepts: Concepts of one analysis (as enumerated).
//   - query: Attribute names of interest.
//
// # Outputs
//
//   - []string: Sorted intersection of all relevant intents.
func Meet(concepts []lattice.Concept, query []string) []string {
	if len(query) == 0 {
		return []string{}
	}
	queried := make(map[string]struct{}, len(query))
	for _, q := range query {
		queried[q] = struct{}{}
	}

	var result map[string]struct{}
	var order []string // first relevant intent fixes result order
	for _, c := range concepts {
		relevant := false
		for _, attr := range c.Intent {
			if _, ok := queried[attr]; ok {
				relevant = true
				break
			}
		}
		if !relevant {
			continue
		}
		if result == nil {
			result = make(map[string]struct{}, len(c.Intent))
			for _, attr := range c.Intent {
				result[attr] = struct{}{}
			}
			order = append(order, c.Intent...)
			continue
		}
		keep := make(map[string]struct{})
		for _, attr := range c.Intent {
			if _, ok := result[attr]; ok {
				keep[attr] = struct{}{}
			}
		}
		result = keep
	}

	out := make([]string, 0, len(result))
	for _, attr := range order {
		if _, ok := result[attr]; ok {
			out = append(out, attr)
		}
	}
	return out
}

// FindMinimalMeets returns every concept whose extent size equals the
// global minimum among the given concepts. Ties are all preserved, in
// enumeration order.
func FindMinimalMeets(concepts []lattice.Concept) []lattice.Concept {
	if len(concepts) == 0 {
		return []lattice.Concept{}
	}
	minSize := len(concepts[0].Extent)
	for _, c := range concepts[1:] {
		if len(c.Extent) < minSize {
			minSize = len(c.Extent)
		}
	}
	minimal := make([]lattice.Concept, 0, 1)
	for _, c := range concepts {
		if len(c.Extent) == minSize {
			minimal = append(minimal, c)
		}
	}
	return minimal
}
