// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command latticemeet analyzes a code change with formal concept
// analysis and reports its minimal semantic footprint.
//
// Usage:
//
//	# Analyze a structured diff description (JSON)
//	latticemeet analyze --input diff.json
//
//	# Analyze a unified diff (git diff output)
//	git diff | latticemeet analyze --unified -
//
//	# Include the implication basis and write the report to a file
//	latticemeet analyze --input diff.json --implications --output report.json
//
//	# Run the built-in sample analysis
//	latticemeet sample
//
// The input shape for --input is:
//
//	{
//	  "files": {
//	    "src/api.py": {
//	      "added": ["function:get_user"],
//	      "modified": ["class:UserService"],
//	      "removed": []
//	    }
//	  }
//	}
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
