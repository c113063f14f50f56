// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createABCContext builds the reference context used across the kernel
// tests:
//
//	o1 -> {a, b}
//	o2 -> {b, c}
//	o3 -> {a, b, c}
func createABCContext(t *testing.T) *Context {
	t.Helper()

	ctx, err := NewContext(
		[]string{"o1", "o2", "o3"},
		[]string{"a", "b", "c"},
		[]Incidence{
			{"o1", "a"}, {"o1", "b"},
			{"o2", "b"}, {"o2", "c"},
			{"o3", "a"}, {"o3", "b"}, {"o3", "c"},
		},
	)
	require.NoError(t, err)
	return ctx
}

func TestNewContext_SortsAndDeduplicates(t *testing.T) {
	ctx, err := NewContext(
		[]string{"z", "a", "z"},
		[]string{"m2", "m1", "m1"},
		[]Incidence{{"a", "m1"}, {"a", "m1"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "z"}, ctx.Objects())
	assert.Equal(t, []string{"m1", "m2"}, ctx.Attributes())
	assert.Equal(t, 1, ctx.IncidenceCount(), "duplicate incidences collapse")
}

func TestNewContext_RejectsUndeclaredObject(t *testing.T) {
	_, err := NewContext(
		[]string{"o1"},
		[]string{"a"},
		[]Incidence{{"ghost", "a"}},
	)
	require.ErrorIs(t, err, ErrMalformedContext)
	assert.Contains(t, err.Error(), "ghost")
}

func TestNewContext_RejectsUndeclaredAttribute(t *testing.T) {
	_, err := NewContext(
		[]string{"o1"},
		[]string{"a"},
		[]Incidence{{"o1", "ghost"}},
	)
	require.ErrorIs(t, err, ErrMalformedContext)
}

func TestContext_ObjectsWith(t *testing.T) {
	ctx := createABCContext(t)

	withA, err := ctx.ObjectsWith("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"o1", "o3"}, withA)

	withB, err := ctx.ObjectsWith("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"o1", "o2", "o3"}, withB)

	_, err = ctx.ObjectsWith("nope")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestContext_AttributesOf(t *testing.T) {
	ctx := createABCContext(t)

	attrs, err := ctx.AttributesOf("o2")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, attrs)

	_, err = ctx.AttributesOf("nope")
	assert.ErrorIs(t, err, ErrUnknownObject)
}

func TestContext_Density(t *testing.T) {
	ctx := createABCContext(t)
	assert.InDelta(t, 7.0/9.0, ctx.Density(), 1e-12)

	empty, err := NewContext(nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Density())

	// Objects but no attributes: density is defined as 0, not NaN.
	noAttrs, err := NewContext([]string{"o1"}, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, noAttrs.Density())
}
