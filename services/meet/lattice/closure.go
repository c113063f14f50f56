// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

// ClosureOperator computes attribute closures over one context.
//
// # Description
//
// The closure of an attribute set A is the set of attributes common to
// all objects that carry every attribute of A. When A is empty the
// object set is the whole context, so closure(∅) is the set of
// attributes shared by all objects; when no object carries all of A the
// closure is the full attribute set. The operator is extensive,
// monotone, and idempotent.
//
// Results are memoized per operator instance, keyed by the canonical
// bit representation of the argument. The cache never outlives the
// operator.
//
// # Thread Safety
//
// Not safe for concurrent use; the memo cache is unsynchronized by
// design. Give each goroutine its own operator.
type ClosureOperator struct {
	ctx  *Context
	memo map[string]bitset
}

// NewClosureOperator creates an operator with an empty memo cache.
func NewClosureOperator(ctx *Context) *ClosureOperator {
	return &ClosureOperator{
		ctx:  ctx,
		memo: make(map[string]bitset),
	}
}

// Closure computes the closure of the given attribute set.
//
// # Inputs
//
//   - attrs: Attribute names; all must belong to the context.
//
// # Outputs
//
//   - []string: The closed set, sorted in attribute order.
//   - error: ErrUnknownAttribute when a name is outside the context.
func (c *ClosureOperator) Closure(attrs []string) ([]string, error) {
	b, err := c.ctx.attrBitset(attrs)
	if err != nil {
		return nil, err
	}
	return c.ctx.attributeNames(c.closure(b)), nil
}

// closure is the index-space closure. The returned bitset is owned by
// the memo cache and must not be mutated by callers.
func (c *ClosureOperator) closure(a bitset) bitset {
	k := a.key()
	if cached, ok := c.memo[k]; ok {
		return cached
	}

	ext := c.ctx.extentOf(a)

	intent := newBitset(len(c.ctx.attributes))
	intent.setAll(len(c.ctx.attributes))
	for _, oi := range ext.indices() {
		intent.intersect(c.ctx.objAttrs[oi])
	}

	c.memo[k] = intent
	return intent
}
