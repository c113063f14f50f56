// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package diff

import (
	"fmt"
	"path"
	"slices"

	"github.com/latticeworks/latticemeet/services/meet/lattice"
)

// ContextBuilder turns a change description into a formal context.
//
// # Description
//
// Every file contributes one object ("file:<path>"); every changed item
// contributes one object ("<kind>:<path>:<item>"). Item objects carry a
// change-kind attribute ("type:<kind>"), a file-type attribute
// ("file_type:<suffix>"), and whatever the classifier derives from the
// item name. File objects carry no attributes; they widen the object
// set so closures reflect the whole change, not just its named items.
//
// Construction iterates files in sorted order and kinds in a fixed
// order, so the same description always yields the same context.
//
// # Thread Safety
//
// Safe for concurrent use as long as the Classifier is.
type ContextBuilder struct {
	classifier Classifier
}

// NewContextBuilder creates a builder; a nil classifier selects the
// default token classifier.
func NewContextBuilder(classifier Classifier) *ContextBuilder {
	if classifier == nil {
		classifier = NewTokenClassifier(nil)
	}
	return &ContextBuilder{classifier: classifier}
}

// Build constructs the formal context for a description.
//
// # Inputs
//
//   - desc: The change description; an empty one yields an empty
//     context, which is valid.
//
// # Outputs
//
//   - *lattice.Context: Validated, immutable context.
//   - error: Construction failure (should not happen for objects and
//     attributes derived here; surfaced rather than swallowed).
func (b *ContextBuilder) Build(desc Description) (*lattice.Context, error) {
	var (
		objects    []string
		attributes []string
		relation   []lattice.Incidence
		seenObj    = make(map[string]struct{})
		seenAttr   = make(map[string]struct{})
	)

	addObject := func(id string) {
		if _, ok := seenObj[id]; !ok {
			seenObj[id] = struct{}{}
			objects = append(objects, id)
		}
	}
	addAttribute := func(id string) {
		if _, ok := seenAttr[id]; !ok {
			seenAttr[id] = struct{}{}
			attributes = append(attributes, id)
		}
	}

	paths := make([]string, 0, len(desc.Files))
	for p := range desc.Files {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	for _, filePath := range paths {
		addObject("file:" + filePath)
		fileType := "file_type:" + path.Ext(filePath)

		for _, kind := range kindOrder {
			for _, item := range desc.Files[filePath].items(kind) {
				objID := kind + ":" + filePath + ":" + item
				addObject(objID)

				itemAttrs := append([]string{"type:" + kind, fileType}, b.classifier.Classify(item)...)
				for _, attr := range itemAttrs {
					addAttribute(attr)
					relation = append(relation, lattice.Incidence{Object: objID, Attribute: attr})
				}
			}
		}
	}

	ctx, err := lattice.NewContext(objects, attributes, relation)
	if err != nil {
		return nil, fmt.Errorf("building diff context: %w", err)
	}
	return ctx, nil
}
