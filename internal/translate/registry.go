// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package translate

import (
	"fmt"
	"io/fs"

	"github.com/blake-mills/zig-gobject/internal/errdefs"
	"github.com/blake-mills/zig-gobject/internal/gir"
)

// Registry loads and caches repositories for the lifetime of one run. Each
// repository is parsed at most once per name; the cache exclusively owns the
// parsed values. A Registry is not safe for concurrent use.
type Registry struct {
	dirs  []fs.FS
	repos map[string]*gir.Repository
}

// NewRegistry creates a Registry that locates repository files in the given
// filesystems, searched in order.
func NewRegistry(dirs ...fs.FS) *Registry {
	return &Registry{
		dirs:  dirs,
		repos: make(map[string]*gir.Repository),
	}
}

// Resolve returns the repository registered under name (e.g. "Gtk-4.0"),
// loading and parsing <name>.gir on first use. The repository is registered
// before its dependencies are touched, so a dependency that refers back to a
// repository currently being loaded sees the cached value instead of
// triggering a second parse.
func (r *Registry) Resolve(name string) (*gir.Repository, error) {
	if repo, ok := r.repos[name]; ok {
		return repo, nil
	}

	repo, err := r.load(name)
	if err != nil {
		return nil, err
	}
	r.repos[name] = repo

	for _, inc := range repo.Includes {
		if _, err := r.Resolve(inc.Key()); err != nil {
			return nil, fmt.Errorf("dependency of %s: %w", name, err)
		}
	}

	return repo, nil
}

func (r *Registry) load(name string) (*gir.Repository, error) {
	fileName := name + ".gir"
	for _, dir := range r.dirs {
		if _, err := fs.Stat(dir, fileName); err != nil {
			continue
		}
		return gir.ParseFile(dir, fileName)
	}
	return nil, fmt.Errorf("%w: %s", errdefs.ErrRepositoryNotFound, fileName)
}
