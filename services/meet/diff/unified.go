// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package diff

import (
	"bytes"
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

const devNull = "/dev/null"

// FromUnified derives a change description from a unified diff.
//
// # Description
//
// Each file diff becomes one entry: a file appearing only on the new
// side is "added", only on the old side is "removed", otherwise
// "modified". Item names are taken from hunk section headings (the
// "func Foo" part of "@@ ... @@ func Foo" lines) and normalized to the
// "function:<name>" / "class:<name>" labels the classifier understands.
// Hunks without a section heading contribute no item; a file with no
// items still appears in the description as a bare file entry.
//
// This is a convenience ingestion path. Tooling that knows the real
// symbol-level change should construct a Description directly.
//
// # Inputs
//
//   - patch: Unified diff text, possibly spanning many files.
//
// # Outputs
//
//   - Description: Structured change description.
//   - error: Non-nil when the patch cannot be parsed.
func FromUnified(patch []byte) (Description, error) {
	fileDiffs, err := godiff.NewMultiFileDiffReader(bytes.NewReader(patch)).ReadAllFiles()
	if err != nil {
		return Description{}, fmt.Errorf("parsing unified diff: %w", err)
	}
	// The reader treats content without file headers as trailing text,
	// so garbage input parses "successfully" to zero files. Reject it.
	if len(fileDiffs) == 0 && len(bytes.TrimSpace(patch)) > 0 {
		return Description{}, fmt.Errorf("parsing unified diff: no file diffs found")
	}

	desc := Description{Files: make(map[string]FileChanges, len(fileDiffs))}
	for _, fd := range fileDiffs {
		origName := trimDiffPrefix(fd.OrigName)
		newName := trimDiffPrefix(fd.NewName)

		kind := KindModified
		filePath := newName
		switch {
		case fd.OrigName == devNull:
			kind = KindAdded
		case fd.NewName == devNull:
			kind = KindRemoved
			filePath = origName
		}
		if filePath == "" {
			continue
		}

		items := sectionItems(fd)
		fc := desc.Files[filePath]
		switch kind {
		case KindAdded:
			fc.Added = append(fc.Added, items...)
		case KindModified:
			fc.Modified = append(fc.Modified, items...)
		case KindRemoved:
			fc.Removed = append(fc.Removed, items...)
		}
		desc.Files[filePath] = fc
	}
	return desc, nil
}

// trimDiffPrefix strips the conventional a/ and b/ name prefixes.
func trimDiffPrefix(name string) string {
	if name == devNull {
		return ""
	}
	name = strings.TrimPrefix(name, "a/")
	return strings.TrimPrefix(name, "b/")
}

// sectionItems collects the distinct normalized section headings of a
// file diff, in hunk order.
func sectionItems(fd *godiff.FileDiff) []string {
	var items []string
	seen := make(map[string]struct{})
	for _, hunk := range fd.Hunks {
		item := normalizeSection(hunk.Section)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}
	return items
}

// normalizeSection maps a hunk section heading to an item label.
//
// Git emits language-flavored headings ("func (g *Graph) AddNode(...)",
// "def get_user(...)", "class UserService:"); these are reduced to the
// "function:<name>" / "class:<name>" form. Unrecognized headings pass
// through verbatim.
func normalizeSection(section string) string {
	s := strings.TrimSpace(section)
	if s == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(s, "func "):
		return "function:" + headingName(strings.TrimPrefix(s, "func "))
	case strings.HasPrefix(s, "def "):
		return "function:" + headingName(strings.TrimPrefix(s, "def "))
	case strings.HasPrefix(s, "class "):
		return "class:" + headingName(strings.TrimPrefix(s, "class "))
	default:
		return s
	}
}

// headingName extracts the bare identifier from the remainder of a
// section heading, skipping a Go method receiver when present.
func headingName(rest string) string {
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "(") {
		// Method receiver: "(g *Graph) AddNode(...)"
		if end := strings.Index(rest, ")"); end >= 0 {
			rest = strings.TrimSpace(rest[end+1:])
		}
	}
	end := len(rest)
	for i, r := range rest {
		if r == '(' || r == ':' || r == ' ' {
			end = i
			break
		}
	}
	return rest[:end]
}
