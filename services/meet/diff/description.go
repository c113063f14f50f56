// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package diff adapts structured change descriptions into formal
// contexts for the lattice kernel.
//
// The input is a plain description of a code change: which files
// changed and which named items were added, modified, or removed in
// each. It is typically decoded from JSON produced by surrounding tooling,
// or derived from a unified diff. The package never reads source files
// itself.
package diff

// Change kinds recognized in a description. Anything else in the input
// is ignored.
const (
	KindAdded    = "added"
	KindModified = "modified"
	KindRemoved  = "removed"
)

// kindOrder fixes the iteration order over change kinds so context
// construction is deterministic.
var kindOrder = []string{KindAdded, KindModified, KindRemoved}

// Description is a structured account of one code change.
type Description struct {
	Files map[string]FileChanges `json:"files"`
}

// FileChanges lists the changed item names in one file, grouped by
// change kind. Item names are opaque labels such as
// "function:get_user" or "class:UserService"; order is preserved.
type FileChanges struct {
	Added    []string `json:"added,omitempty"`
	Modified []string `json:"modified,omitempty"`
	Removed  []string `json:"removed,omitempty"`
}

// items returns the item list for a change kind.
func (fc FileChanges) items(kind string) []string {
	switch kind {
	case KindAdded:
		return fc.Added
	case KindModified:
		return fc.Modified
	case KindRemoved:
		return fc.Removed
	default:
		return nil
	}
}

// Empty reports whether the description names no files at all.
func (d Description) Empty() bool { return len(d.Files) == 0 }
