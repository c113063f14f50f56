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

func TestBuild_SingleAddedFunction(t *testing.T) {
	b := NewContextBuilder(nil)

	ctx, err := b.Build(Description{
		Files: map[string]FileChanges{
			"src/api.py": {Added: []string{"function:get_user"}},
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantObjects := []string{
		"added:src/api.py:function:get_user",
		"file:src/api.py",
	}
	if got := ctx.Objects(); !slices.Equal(got, wantObjects) {
		t.Errorf("Objects() = %v, want %v", got, wantObjects)
	}

	wantAttrs := []string{"file_type:.py", "semantic:function", "type:added"}
	if got := ctx.Attributes(); !slices.Equal(got, wantAttrs) {
		t.Errorf("Attributes() = %v, want %v", got, wantAttrs)
	}

	itemAttrs, err := ctx.AttributesOf("added:src/api.py:function:get_user")
	if err != nil {
		t.Fatalf("AttributesOf() error = %v", err)
	}
	if !slices.Equal(itemAttrs, wantAttrs) {
		t.Errorf("item attributes = %v, want %v", itemAttrs, wantAttrs)
	}

	// The file object widens the context but carries no attributes.
	fileAttrs, err := ctx.AttributesOf("file:src/api.py")
	if err != nil {
		t.Fatalf("AttributesOf() error = %v", err)
	}
	if len(fileAttrs) != 0 {
		t.Errorf("file object attributes = %v, want none", fileAttrs)
	}
}

func TestBuild_AllChangeKinds(t *testing.T) {
	b := NewContextBuilder(nil)

	ctx, err := b.Build(Description{
		Files: map[string]FileChanges{
			"pkg/service.go": {
				Added:    []string{"function:Create"},
				Modified: []string{"function:Update"},
				Removed:  []string{"function:Delete"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, kind := range []string{"added", "modified", "removed"} {
		attr := "type:" + kind
		objs, err := ctx.ObjectsWith(attr)
		if err != nil {
			t.Fatalf("ObjectsWith(%q) error = %v", attr, err)
		}
		if len(objs) != 1 {
			t.Errorf("ObjectsWith(%q) = %v, want exactly one object", attr, objs)
		}
	}
}

func TestBuild_EmptyDescription(t *testing.T) {
	b := NewContextBuilder(nil)

	ctx, err := b.Build(Description{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if n := len(ctx.Objects()); n != 0 {
		t.Errorf("Objects() has %d entries, want 0", n)
	}
	if n := len(ctx.Attributes()); n != 0 {
		t.Errorf("Attributes() has %d entries, want 0", n)
	}
	if d := ctx.Density(); d != 0 {
		t.Errorf("Density() = %v, want 0", d)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	desc := Description{
		Files: map[string]FileChanges{
			"b.go": {Added: []string{"function:B"}},
			"a.go": {Added: []string{"function:A"}},
			"c.py": {Modified: []string{"class:C"}},
		},
	}
	b := NewContextBuilder(nil)

	first, err := b.Build(desc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := b.Build(desc)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if !slices.Equal(first.Objects(), again.Objects()) {
			t.Fatalf("object order not deterministic: %v vs %v", first.Objects(), again.Objects())
		}
		if !slices.Equal(first.Attributes(), again.Attributes()) {
			t.Fatalf("attribute order not deterministic: %v vs %v", first.Attributes(), again.Attributes())
		}
		if first.IncidenceCount() != again.IncidenceCount() {
			t.Fatalf("incidence count not deterministic")
		}
	}
}

func TestBuild_FileWithoutExtension(t *testing.T) {
	b := NewContextBuilder(nil)

	ctx, err := b.Build(Description{
		Files: map[string]FileChanges{
			"Makefile": {Modified: []string{"target:build"}},
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Suffix-less files still get a (bare) file-type attribute.
	if _, err := ctx.ObjectsWith("file_type:"); err != nil {
		t.Errorf("expected bare file_type attribute, got error: %v", err)
	}
}
