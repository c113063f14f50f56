// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import "fmt"

// Enumerator walks the concept lattice of one context in lectic order
// using Ganter's NextClosure algorithm.
//
// # Description
//
// The attribute order underlying the lectic order is the context's
// sorted attribute slice. Enumeration starts at closure(∅) and each
// step yields the lectically smallest closed set greater than the
// current one, so the concept list is complete and duplicate-free by
// construction.
//
// # Thread Safety
//
// Not safe for concurrent use (owns a ClosureOperator and its memo
// cache). Construct one per analysis.
type Enumerator struct {
	ctx *Context
	cl  *ClosureOperator
}

// NewEnumerator creates an enumerator with a fresh closure operator.
func NewEnumerator(ctx *Context) *Enumerator {
	return &Enumerator{
		ctx: ctx,
		cl:  NewClosureOperator(ctx),
	}
}

// Closure exposes the enumerator's memoized closure operator.
func (e *Enumerator) Closure(attrs []string) ([]string, error) {
	return e.cl.Closure(attrs)
}

// NextClosure returns the lectically smallest closed set strictly
// greater than the given closed set.
//
// # Description
//
// Implements the standard Ganter step: candidate attributes m are
// scanned from largest to smallest; for each m not in the current set,
// the closure of (current ∩ {attributes < m}) ∪ {m} is accepted when it
// introduces no attribute smaller than m. Exhaustion is signaled by
// ok == false, never by an empty set: closure(∅) can itself be a
// legitimate (possibly empty) concept intent.
//
// # Inputs
//
//   - current: A closed attribute set (typically the previous result).
//
// # Outputs
//
//   - []string: The next closed set, sorted; nil when exhausted.
//   - bool: False when no lectically greater closed set exists.
//   - error: ErrUnknownAttribute when current contains foreign names.
func (e *Enumerator) NextClosure(current []string) ([]string, bool, error) {
	b, err := e.ctx.attrBitset(current)
	if err != nil {
		return nil, false, err
	}
	next, ok := e.nextClosure(b)
	if !ok {
		return nil, false, nil
	}
	return e.ctx.attributeNames(next), true, nil
}

// nextClosure is the index-space Ganter step.
func (e *Enumerator) nextClosure(current bitset) (bitset, bool) {
	n := len(e.ctx.attributes)
	a := current.clone()
	for i := n - 1; i >= 0; i-- {
		if a.has(i) {
			a.clearBit(i)
			continue
		}
		b := a.clone()
		b.set(i)
		d := e.cl.closure(b)
		if !d.newBitsBelow(a, i) {
			return d, true
		}
	}
	return nil, false
}

// Concepts enumerates every formal concept of the context.
//
// # Description
//
// Produces the full concept list in strictly increasing lectic order of
// intents, starting from closure(∅). Each extent is recovered as the
// intersection of the object sets of the intent's attributes. A step
// that fails to increase lectically is reported as
// ErrEnumerationInvariant; that is an internal bug, not an input error.
//
// # Outputs
//
//   - []Concept: All concepts, lectically ordered by intent.
//   - error: Non-nil only on an enumeration invariant violation.
func (e *Enumerator) Concepts() ([]Concept, error) {
	empty := newBitset(len(e.ctx.attributes))
	cur := e.cl.closure(empty)

	concepts := []Concept{e.concept(cur)}
	for {
		next, ok := e.nextClosure(cur)
		if !ok {
			return concepts, nil
		}
		if !lecticLess(cur, next) {
			return nil, fmt.Errorf("%w: step from %v did not increase lectically", ErrEnumerationInvariant, e.ctx.attributeNames(cur))
		}
		concepts = append(concepts, e.concept(next))
		cur = next
	}
}

func (e *Enumerator) concept(intent bitset) Concept {
	return Concept{
		Extent: e.ctx.objectNames(e.ctx.extentOf(intent)),
		Intent: e.ctx.attributeNames(intent),
	}
}
