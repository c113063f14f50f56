// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import "errors"

// Sentinel errors for the lattice kernel.
var (
	// ErrMalformedContext indicates the incidence relation references an
	// object or attribute that was not declared.
	ErrMalformedContext = errors.New("malformed context")

	// ErrUnknownAttribute indicates a query used an attribute that is not
	// part of the context.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownObject indicates a query used an object that is not part
	// of the context.
	ErrUnknownObject = errors.New("unknown object")

	// ErrEnumerationInvariant indicates NextClosure produced a set that is
	// not strictly greater in lectic order. This is an internal bug, never
	// a recoverable condition.
	ErrEnumerationInvariant = errors.New("enumeration invariant violated")

	// ErrIntentTooLarge indicates a concept intent exceeds the bound for
	// explicit minimal-generator enumeration.
	ErrIntentTooLarge = errors.New("intent exceeds generator enumeration bound")
)
