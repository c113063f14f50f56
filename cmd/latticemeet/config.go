// Copyright (C) 2026 Lattice Works (oss@latticeworks.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/latticeworks/latticemeet/services/meet/diff"
)

// Config is the CLI configuration, loadable from a YAML file.
//
// Everything has a working default; the config file exists to tune log
// output and to extend or replace the semantic token rules without
// rebuilding, e.g.:
//
//	log:
//	  level: debug
//	  json: true
//	classifier:
//	  rules:
//	    - token: function
//	      attribute: semantic:function
//	    - token: handler
//	      attribute: semantic:handler
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

// LogConfig controls the slog default handler.
type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error, default info
	JSON  bool   `yaml:"json"`
}

// ClassifierConfig overrides the semantic tagging rules.
type ClassifierConfig struct {
	Rules []diff.TokenRule `yaml:"rules"`
}

// slogLevel maps the configured level name to a slog.Level.
func (l LogConfig) slogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig reads the config file at path. An empty path returns the
// zero config (all defaults); a named file must exist and parse.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// tokenRules returns the configured classifier rules, or nil to select
// the defaults.
func (c Config) tokenRules() []diff.TokenRule {
	return c.Classifier.Rules
}
