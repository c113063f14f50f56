// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import (
	"encoding/binary"
	"math/bits"
)

// bitset is a fixed-width bit vector over an index space that is decided
// at construction time. All lattice algorithms run in index space; the
// public API converts to and from attribute/object strings at the edges.
type bitset []uint64

const wordBits = 64

// newBitset returns an all-zero bitset able to hold n bits.
func newBitset(n int) bitset {
	return make(bitset, (n+wordBits-1)/wordBits)
}

func (b bitset) set(i int)      { b[i/wordBits] |= 1 << (i % wordBits) }
func (b bitset) clearBit(i int) { b[i/wordBits] &^= 1 << (i % wordBits) }

func (b bitset) has(i int) bool {
	return b[i/wordBits]&(1<<(i%wordBits)) != 0
}

func (b bitset) clone() bitset {
	c := make(bitset, len(b))
	copy(c, b)
	return c
}

// setAll sets bits [0, n).
func (b bitset) setAll(n int) {
	for i := range b {
		b[i] = ^uint64(0)
	}
	if r := n % wordBits; r != 0 {
		b[len(b)-1] = (1 << r) - 1
	}
}

// intersect removes from b every bit that is not set in o.
func (b bitset) intersect(o bitset) {
	for i := range b {
		b[i] &= o[i]
	}
}

func (b bitset) equal(o bitset) bool {
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// containsAll reports whether every bit of o is also set in b.
func (b bitset) containsAll(o bitset) bool {
	for i := range b {
		if o[i]&^b[i] != 0 {
			return false
		}
	}
	return true
}

// indices returns the set bits in ascending order.
func (b bitset) indices() []int {
	out := make([]int, 0, b.count())
	for wi, w := range b {
		for w != 0 {
			out = append(out, wi*wordBits+bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
	return out
}

// key returns a canonical map key for memoization.
func (b bitset) key() string {
	buf := make([]byte, len(b)*8)
	for i, w := range b {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}

// newBitsBelow reports whether b has a set bit below limit that a lacks.
func (b bitset) newBitsBelow(a bitset, limit int) bool {
	full, rem := limit/wordBits, limit%wordBits
	for i := 0; i < full; i++ {
		if b[i]&^a[i] != 0 {
			return true
		}
	}
	if rem != 0 {
		mask := uint64(1)<<rem - 1
		if (b[full]&^a[full])&mask != 0 {
			return true
		}
	}
	return false
}

// lecticLess reports whether a < b in lectic order: the smallest index
// where the two sets differ belongs to b.
func lecticLess(a, b bitset) bool {
	for i := range a {
		if d := a[i] ^ b[i]; d != 0 {
			low := uint64(1) << bits.TrailingZeros64(d)
			return b[i]&low != 0
		}
	}
	return false
}
