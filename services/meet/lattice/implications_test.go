// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasis_ReferenceScenario(t *testing.T) {
	ctx := createABCContext(t)

	basis, err := NewBasisBuilder(ctx, 0).Basis()
	require.NoError(t, err)

	// Concepts in lectic order: {b}, {b,c}, {a,b}, {a,b,c}.
	// {b} has no proper generators; {b,c} is generated by {c}; {a,b}
	// by {a}; {a,b,c} only by {a,c} ({a,b} and {b,c} are closed
	// themselves).
	want := []Implication{
		{Premise: []string{"c"}, Conclusion: []string{"b"}},
		{Premise: []string{"a"}, Conclusion: []string{"b"}},
		{Premise: []string{"a", "c"}, Conclusion: []string{"b"}},
	}
	assert.Equal(t, want, basis)
}

func TestBasis_RetainsAllMinimalGenerators(t *testing.T) {
	// g1 carries everything, g2 only b, g3 only c. The intent {a,b,c}
	// then has two minimal generators: {a} and {b,c}. {a,b} and {a,c}
	// also close to it but contain {a}, so they must be skipped.
	ctx, err := NewContext(
		[]string{"g1", "g2", "g3"},
		[]string{"a", "b", "c"},
		[]Incidence{
			{"g1", "a"}, {"g1", "b"}, {"g1", "c"},
			{"g2", "b"},
			{"g3", "c"},
		},
	)
	require.NoError(t, err)

	basis, err := NewBasisBuilder(ctx, 0).Basis()
	require.NoError(t, err)

	var forFull []Implication
	for _, imp := range basis {
		union := append(slices.Clone(imp.Premise), imp.Conclusion...)
		slices.Sort(union)
		if slices.Equal(union, []string{"a", "b", "c"}) {
			forFull = append(forFull, imp)
		}
	}
	require.Len(t, forFull, 2, "both minimal generators must be retained")
	assert.Equal(t, Implication{Premise: []string{"a"}, Conclusion: []string{"b", "c"}}, forFull[0])
	assert.Equal(t, Implication{Premise: []string{"b", "c"}, Conclusion: []string{"a"}}, forFull[1])
}

// TestBasis_GeneratorProperties asserts the definitional invariants of
// every emitted implication: closure(Premise) == Premise ∪ Conclusion,
// and no proper subset of Premise closes to the same intent.
func TestBasis_GeneratorProperties(t *testing.T) {
	ctx := createABCContext(t)
	cl := NewClosureOperator(ctx)

	basis, err := NewBasisBuilder(ctx, 0).Basis()
	require.NoError(t, err)
	require.NotEmpty(t, basis)

	for _, imp := range basis {
		intent := append(slices.Clone(imp.Premise), imp.Conclusion...)
		slices.Sort(intent)

		closed, err := cl.Closure(imp.Premise)
		require.NoError(t, err)
		assert.Equal(t, intent, closed, "closure(%v) must be the full intent", imp.Premise)

		// Minimality: drop any one premise attribute and the closure
		// must shrink away from the intent.
		for drop := range imp.Premise {
			smaller := slices.Delete(slices.Clone(imp.Premise), drop, drop+1)
			if len(smaller) == 0 {
				continue
			}
			closedSmaller, err := cl.Closure(smaller)
			require.NoError(t, err)
			assert.NotEqual(t, intent, closedSmaller,
				"premise %v is not minimal: %v suffices", imp.Premise, smaller)
		}
	}
}

func TestBasis_IntentTooLarge(t *testing.T) {
	ctx := createABCContext(t)

	_, err := NewBasisBuilder(ctx, 2).Basis()
	require.ErrorIs(t, err, ErrIntentTooLarge)
}

func TestBasis_EmptyContext(t *testing.T) {
	ctx, err := NewContext(nil, nil, nil)
	require.NoError(t, err)

	basis, err := NewBasisBuilder(ctx, 0).Basis()
	require.NoError(t, err)
	assert.Empty(t, basis)
}
