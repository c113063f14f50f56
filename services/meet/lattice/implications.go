// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import "fmt"

// DefaultMaxIntentSize bounds explicit subset enumeration per intent.
// 2^16 subset closures per concept is the accepted worst case; larger
// intents are rejected rather than silently ground through.
const DefaultMaxIntentSize = 16

// BasisBuilder derives minimal-generator implications per concept.
//
// # Description
//
// For every concept intent I, all non-empty proper subsets are
// enumerated by increasing size; each minimal subset S with
// closure(S) == I yields the implication S → I \ S. Every minimal
// generator is retained: distinct minimal premises for the same intent
// each produce an implication. Supersets of an already-accepted premise
// are skipped, which is what makes the recorded premises minimal.
//
// # Limitations
//
// Subset enumeration is exponential in |I|. This is acceptable for the
// small attribute vocabularies produced by diff contexts (tens of
// attributes) and is bounded, not solved: intents larger than the
// configured maximum fail with ErrIntentTooLarge.
//
// # Thread Safety
//
// Not safe for concurrent use (owns an Enumerator).
type BasisBuilder struct {
	enum      *Enumerator
	maxIntent int
}

// NewBasisBuilder creates a builder for the given context. A
// maxIntentSize of 0 selects DefaultMaxIntentSize.
func NewBasisBuilder(ctx *Context, maxIntentSize int) *BasisBuilder {
	if maxIntentSize <= 0 {
		maxIntentSize = DefaultMaxIntentSize
	}
	return &BasisBuilder{
		enum:      NewEnumerator(ctx),
		maxIntent: maxIntentSize,
	}
}

// Basis computes the minimal-generator implications of the context.
//
// # Outputs
//
//   - []Implication: Implications in enumeration order of their target
//     concept, premises ordered smallest-first within a concept.
//   - error: ErrIntentTooLarge when a concept intent exceeds the bound,
//     or an enumeration failure from the underlying walk.
func (b *BasisBuilder) Basis() ([]Implication, error) {
	concepts, err := b.enum.Concepts()
	if err != nil {
		return nil, err
	}

	var implications []Implication
	for _, concept := range concepts {
		found, err := b.conceptGenerators(concept)
		if err != nil {
			return nil, err
		}
		implications = append(implications, found...)
	}
	return implications, nil
}

// conceptGenerators finds every minimal generator of one intent.
func (b *BasisBuilder) conceptGenerators(concept Concept) ([]Implication, error) {
	k := len(concept.Intent)
	if k < 2 {
		// Singleton and empty intents have no non-empty proper subsets.
		return nil, nil
	}
	if k > b.maxIntent {
		return nil, fmt.Errorf("%w: intent has %d attributes (max %d)", ErrIntentTooLarge, k, b.maxIntent)
	}

	intentBits, err := b.enum.ctx.attrBitset(concept.Intent)
	if err != nil {
		return nil, err
	}
	intentIdx := intentBits.indices()

	var implications []Implication
	var premises []bitset // accepted minimal generators for this intent

	for size := 1; size < k; size++ {
		forEachCombination(k, size, func(choice []int) {
			subset := newBitset(len(b.enum.ctx.attributes))
			for _, c := range choice {
				subset.set(intentIdx[c])
			}
			for _, p := range premises {
				if subset.containsAll(p) {
					return // superset of a known generator, not minimal
				}
			}
			if !b.enum.cl.closure(subset).equal(intentBits) {
				return
			}
			premises = append(premises, subset)

			conclusion := intentBits.clone()
			for _, c := range choice {
				conclusion.clearBit(intentIdx[c])
			}
			implications = append(implications, Implication{
				Premise:    b.enum.ctx.attributeNames(subset),
				Conclusion: b.enum.ctx.attributeNames(conclusion),
			})
		})
	}
	return implications, nil
}

// forEachCombination invokes fn with every size-r index combination of
// [0, n) in lexicographic order. The slice passed to fn is reused.
func forEachCombination(n, r int, fn func([]int)) {
	choice := make([]int, r)
	for i := range choice {
		choice[i] = i
	}
	for {
		fn(choice)
		// Advance the rightmost index that can still move.
		i := r - 1
		for i >= 0 && choice[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		choice[i]++
		for j := i + 1; j < r; j++ {
			choice[j] = choice[j-1] + 1
		}
	}
}
