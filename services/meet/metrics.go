// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package meet

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for meet analyses.
var (
	tracer = otel.Tracer("latticemeet.meet")
	meter  = otel.Meter("latticemeet.meet")
)

// Metrics for diff analyses.
var (
	analyzeLatency metric.Float64Histogram
	analyzeTotal   metric.Int64Counter
	conceptCount   metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		analyzeLatency, err = meter.Float64Histogram(
			"meet_analyze_duration_seconds",
			metric.WithDescription("Duration of diff analyses"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		analyzeTotal, err = meter.Int64Counter(
			"meet_analyze_total",
			metric.WithDescription("Total number of diff analyses"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		conceptCount, err = meter.Int64Histogram(
			"meet_concepts_enumerated",
			metric.WithDescription("Number of concepts enumerated per analysis"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordAnalyzeMetrics records metrics for one analysis.
func recordAnalyzeMetrics(ctx context.Context, duration time.Duration, concepts int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("success", success))

	analyzeLatency.Record(ctx, duration.Seconds(), attrs)
	analyzeTotal.Add(ctx, 1, attrs)

	if success {
		conceptCount.Record(ctx, int64(concepts))
	}
}

// startAnalyzeSpan creates a span for one analysis.
func startAnalyzeSpan(ctx context.Context, fileCount int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Analyzer.AnalyzeDiff",
		trace.WithAttributes(
			attribute.Int("meet.file_count", fileCount),
		),
	)
}

// setAnalyzeSpanResult sets the result attributes on an analysis span.
func setAnalyzeSpanResult(span trace.Span, totalConcepts, minimalMeets int) {
	span.SetAttributes(
		attribute.Int("meet.total_concepts", totalConcepts),
		attribute.Int("meet.minimal_meets", minimalMeets),
	)
}
