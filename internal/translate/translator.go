// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Package translate turns parsed GIR repositories into target-language
// source modules, one output file per namespace.
package translate

import (
	"fmt"
	"sort"

	"github.com/blake-mills/zig-gobject/internal/gir"
)

// Import is one cross-namespace import a generated module needs: a module
// alias bound to the generated file of the dependency.
type Import struct {
	Alias string // lowercased dependency name, e.g. "glib"
	File  string // generated file name, e.g. "glib.zig"
}

// Translator defines the interface all target-language translators implement.
type Translator interface {
	// Translate renders one namespace, including its import lines, as a
	// complete source module.
	Translate(ns *gir.Namespace, imports []Import) ([]byte, error)

	// FileExtension returns the target's source-file suffix (e.g. ".zig").
	FileExtension() string
}

// Register maps format names to translators. It is passed explicitly through
// command construction rather than kept as package state so tests can build
// isolated sets.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
