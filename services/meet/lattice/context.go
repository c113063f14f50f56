// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package lattice implements the formal-concept-analysis kernel:
// a binary context, the attribute-closure operator, canonical concept
// enumeration via NextClosure, and a minimal-generator implication
// basis.
//
// # Description
//
// A formal context relates a finite set of objects to a finite set of
// attributes. The closure operator and the Galois connection it induces
// give rise to the concept lattice, which the enumerator walks in
// lectic order. Everything in this package is pure computation: no I/O,
// no goroutines, no global state.
//
// # Thread Safety
//
// Context is immutable after construction and safe for concurrent use.
// ClosureOperator, Enumerator, and BasisBuilder carry a private memo
// cache and must not be shared across goroutines; concurrent analyses
// should each construct their own.
package lattice

import (
	"fmt"
	"slices"
)

// Incidence is one (object, attribute) pair of the context relation.
type Incidence struct {
	Object    string
	Attribute string
}

// Context is an immutable formal context (objects, attributes, relation).
//
// The attribute slice is sorted lexicographically and fixes the base
// order used for lectic enumeration. Internally the relation is stored
// twice, as per-object attribute bitsets and per-attribute object
// bitsets, so closures reduce to word-wise intersections.
type Context struct {
	objects    []string
	attributes []string
	objIndex   map[string]int
	attrIndex  map[string]int
	objAttrs   []bitset // objAttrs[o] = attributes of object o
	attrObjs   []bitset // attrObjs[a] = objects carrying attribute a
	pairs      int      // number of distinct incidences
}

// NewContext builds a validated, immutable context.
//
// # Description
//
// Objects and attributes are deduplicated and sorted. Every incidence
// must reference a declared object and attribute; a dangling reference
// makes the whole construction fail with ErrMalformedContext. Duplicate
// incidences are collapsed.
//
// # Inputs
//
//   - objects: Declared object identifiers (order irrelevant).
//   - attributes: Declared attribute identifiers (order irrelevant).
//   - relation: Incidence pairs; may be empty.
//
// # Outputs
//
//   - *Context: Ready-to-query context.
//   - error: Non-nil when the relation references undeclared members.
func NewContext(objects, attributes []string, relation []Incidence) (*Context, error) {
	objs := slices.Clone(objects)
	slices.Sort(objs)
	objs = slices.Compact(objs)

	attrs := slices.Clone(attributes)
	slices.Sort(attrs)
	attrs = slices.Compact(attrs)

	c := &Context{
		objects:    objs,
		attributes: attrs,
		objIndex:   make(map[string]int, len(objs)),
		attrIndex:  make(map[string]int, len(attrs)),
		objAttrs:   make([]bitset, len(objs)),
		attrObjs:   make([]bitset, len(attrs)),
	}
	for i, o := range objs {
		c.objIndex[o] = i
		c.objAttrs[i] = newBitset(len(attrs))
	}
	for i, a := range attrs {
		c.attrIndex[a] = i
		c.attrObjs[i] = newBitset(len(objs))
	}

	for _, inc := range relation {
		oi, ok := c.objIndex[inc.Object]
		if !ok {
			return nil, fmt.Errorf("%w: relation references undeclared object %q", ErrMalformedContext, inc.Object)
		}
		ai, ok := c.attrIndex[inc.Attribute]
		if !ok {
			return nil, fmt.Errorf("%w: relation references undeclared attribute %q", ErrMalformedContext, inc.Attribute)
		}
		if !c.objAttrs[oi].has(ai) {
			c.objAttrs[oi].set(ai)
			c.attrObjs[ai].set(oi)
			c.pairs++
		}
	}
	return c, nil
}

// Objects returns the sorted object identifiers.
func (c *Context) Objects() []string {
	return slices.Clone(c.objects)
}

// Attributes returns the sorted attribute identifiers. Their order is
// the base order of the lectic enumeration.
func (c *Context) Attributes() []string {
	return slices.Clone(c.attributes)
}

// ObjectsWith returns the objects carrying the given attribute.
func (c *Context) ObjectsWith(attr string) ([]string, error) {
	ai, ok := c.attrIndex[attr]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	return c.objectNames(c.attrObjs[ai]), nil
}

// AttributesOf returns the attributes of the given object.
func (c *Context) AttributesOf(obj string) ([]string, error) {
	oi, ok := c.objIndex[obj]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, obj)
	}
	return c.attributeNames(c.objAttrs[oi]), nil
}

// Density returns |Relation| / (|Objects| * |Attributes|), or 0 when
// either side is empty.
func (c *Context) Density() float64 {
	if len(c.objects) == 0 || len(c.attributes) == 0 {
		return 0
	}
	return float64(c.pairs) / (float64(len(c.objects)) * float64(len(c.attributes)))
}

// IncidenceCount returns the number of distinct relation pairs.
func (c *Context) IncidenceCount() int { return c.pairs }

// attrBitset converts attribute names to index space, rejecting names
// outside the context.
func (c *Context) attrBitset(attrs []string) (bitset, error) {
	b := newBitset(len(c.attributes))
	for _, a := range attrs {
		ai, ok := c.attrIndex[a]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, a)
		}
		b.set(ai)
	}
	return b, nil
}

// extentOf returns the objects possessing every attribute of intent.
// An empty intent yields all objects.
func (c *Context) extentOf(intent bitset) bitset {
	ext := newBitset(len(c.objects))
	ext.setAll(len(c.objects))
	for _, ai := range intent.indices() {
		ext.intersect(c.attrObjs[ai])
	}
	return ext
}

func (c *Context) attributeNames(b bitset) []string {
	idx := b.indices()
	out := make([]string, len(idx))
	for i, ai := range idx {
		out[i] = c.attributes[ai]
	}
	return out
}

func (c *Context) objectNames(b bitset) []string {
	idx := b.indices()
	out := make([]string, len(idx))
	for i, oi := range idx {
		out[i] = c.objects[oi]
	}
	return out
}
