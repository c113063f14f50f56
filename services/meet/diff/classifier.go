// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package diff

import "strings"

// Classifier assigns semantic attributes to a changed item name.
//
// # Description
//
// The default implementation is a lexical heuristic; this interface
// exists so a syntax-aware classifier can replace it without touching
// the lattice algorithms. Implementations must be deterministic for a
// given item name.
type Classifier interface {
	// Classify returns the semantic attributes for an item name.
	// The result may be empty; it must not contain duplicates.
	Classify(item string) []string
}

// TokenRule maps a case-insensitive substring token to the attribute it
// implies.
type TokenRule struct {
	Token     string `yaml:"token" json:"token"`
	Attribute string `yaml:"attribute" json:"attribute"`
}

// DefaultTokenRules returns the stock function/class/test tagging rules.
func DefaultTokenRules() []TokenRule {
	return []TokenRule{
		{Token: "function", Attribute: "semantic:function"},
		{Token: "class", Attribute: "semantic:class"},
		{Token: "test", Attribute: "semantic:test"},
	}
}

// TokenClassifier tags items by case-insensitive substring containment.
//
// # Limitations
//
// This is a lexical heuristic, not a syntactic fact: a function named
// "classify" contains the token "class" and will be tagged
// semantic:class. Swap in a parse-based Classifier where that matters.
type TokenClassifier struct {
	rules []TokenRule
}

// Verify interface compliance at compile time
var _ Classifier = (*TokenClassifier)(nil)

// NewTokenClassifier creates a classifier from the given rules; nil or
// empty rules select DefaultTokenRules.
func NewTokenClassifier(rules []TokenRule) *TokenClassifier {
	if len(rules) == 0 {
		rules = DefaultTokenRules()
	}
	return &TokenClassifier{rules: rules}
}

// Classify returns the attributes whose token occurs in the item name.
func (t *TokenClassifier) Classify(item string) []string {
	lowered := strings.ToLower(item)
	var attrs []string
	for _, r := range t.rules {
		if strings.Contains(lowered, strings.ToLower(r.Token)) {
			attrs = append(attrs, r.Attribute)
		}
	}
	return attrs
}
