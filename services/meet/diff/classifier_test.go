// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package diff

import (
	"slices"
	"testing"
)

func TestTokenClassifier_Defaults(t *testing.T) {
	c := NewTokenClassifier(nil)

	tests := []struct {
		item string
		want []string
	}{
		{"function:get_user", []string{"semantic:function"}},
		{"class:UserService", []string{"semantic:class"}},
		{"function:test_get_user", []string{"semantic:function", "semantic:test"}},
		{"FUNCTION:LOUD", []string{"semantic:function"}},
		{"var:counter", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := c.Classify(tt.item)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Classify(%q) = %v, want %v", tt.item, got, tt.want)
		}
	}
}

func TestTokenClassifier_HeuristicMisTag(t *testing.T) {
	// Documented limitation: substring matching tags a function named
	// "classify" as a class.
	c := NewTokenClassifier(nil)

	got := c.Classify("classify")
	if !slices.Contains(got, "semantic:class") {
		t.Errorf("Classify(\"classify\") = %v, expected the semantic:class mis-tag", got)
	}
}

func TestTokenClassifier_CustomRules(t *testing.T) {
	c := NewTokenClassifier([]TokenRule{
		{Token: "handler", Attribute: "semantic:handler"},
	})

	if got := c.Classify("function:request_handler"); !slices.Equal(got, []string{"semantic:handler"}) {
		t.Errorf("Classify() = %v, want custom rule only", got)
	}
	if got := c.Classify("function:get_user"); got != nil {
		t.Errorf("Classify() = %v, custom rules must replace the defaults", got)
	}
}
