// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package translate

import (
	"fmt"
	"strings"

	"github.com/blake-mills/zig-gobject/internal/errdefs"
	"github.com/blake-mills/zig-gobject/internal/gir"
)

// includeResolver walks the transitive closure of a namespace's declared
// dependencies depth-first, collecting one import per dependency. seen is
// shared across sibling branches so a dependency reachable twice is imported
// once; visiting guards the recursion against dependency cycles, which the
// GIR format does not forbid.
type includeResolver struct {
	reg      *Registry
	ext      string
	seen     map[string]bool
	visiting map[string]bool
	imports  []Import
}

// ResolveIncludes resolves the transitive closure of the given dependency
// declarations into an ordered, deduplicated import list. A dependency's own
// imports are collected before the dependency itself, so transitively
// required modules always precede their dependents; siblings keep their
// declaration order. seen may be pre-populated and is updated in place.
func ResolveIncludes(reg *Registry, includes []gir.Include, seen map[string]bool, ext string) ([]Import, error) {
	ir := &includeResolver{
		reg:      reg,
		ext:      ext,
		seen:     seen,
		visiting: make(map[string]bool),
	}
	if err := ir.walk(includes); err != nil {
		return nil, err
	}
	return ir.imports, nil
}

func (ir *includeResolver) walk(includes []gir.Include) error {
	for _, inc := range includes {
		key := inc.Key()
		if ir.seen[key] {
			continue
		}
		if ir.visiting[key] {
			return fmt.Errorf("%w: %s", errdefs.ErrCyclicDependency, key)
		}
		ir.visiting[key] = true

		repo, err := ir.reg.Resolve(key)
		if err != nil {
			return err
		}
		if err := ir.walk(repo.Includes); err != nil {
			return err
		}

		delete(ir.visiting, key)
		ir.seen[key] = true
		ir.imports = append(ir.imports, ImportFor(inc.Name, ir.ext))
	}
	return nil
}

// ImportFor builds the import binding for a dependency name: a lowercased
// alias bound to the dependency's generated file.
func ImportFor(name, ext string) Import {
	lower := strings.ToLower(name)
	return Import{Alias: lower, File: lower + ext}
}
