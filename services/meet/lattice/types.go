// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

// Concept is a formal concept: a fixed point of the context's Galois
// connection. Intent is closed under the closure operator, and Extent
// is exactly the set of objects carrying every attribute of Intent.
// Both slices are sorted.
type Concept struct {
	Extent []string `json:"extent"`
	Intent []string `json:"intent"`
}

// Implication is a minimal-generator implication: Premise is a minimal
// attribute set whose closure equals Premise ∪ Conclusion.
type Implication struct {
	Premise    []string `json:"premise"`
	Conclusion []string `json:"conclusion"`
}
