// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Package config handles girgen project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultInputDir is where most distributions install GIR files.
const DefaultInputDir = "/usr/share/gir-1.0"

// Config represents the girgen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`

	// InputDirs are the directories searched for .gir files, in order.
	InputDirs []string `yaml:"input-dirs"`

	// Output is the directory generated bindings are written to.
	Output string `yaml:"output"`

	// Repositories are the root repositories to translate, e.g. "Gtk-4.0".
	Repositories []string `yaml:"repositories"`

	// Format is the target translator name. Defaults to "zig".
	Format string `yaml:"format,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if len(c.InputDirs) == 0 {
		return errors.New("at least one input directory is required")
	}
	if c.Output == "" {
		return errors.New("output directory is required")
	}
	return nil
}
