// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package gir

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"

	"github.com/blake-mills/zig-gobject/internal/errdefs"
)

// Parse decodes a GIR document from r.
func Parse(r io.Reader) (*Repository, error) {
	var repo Repository
	if err := xml.NewDecoder(r).Decode(&repo); err != nil {
		return nil, fmt.Errorf("%w: %v", errdefs.ErrInvalidRepository, err)
	}
	if len(repo.Namespaces) == 0 {
		return nil, fmt.Errorf("%w: document declares no namespaces", errdefs.ErrInvalidRepository)
	}
	return &repo, nil
}

// ParseFile loads and decodes a GIR document from a filesystem.
func ParseFile(fsys fs.FS, path string) (*Repository, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	repo, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return repo, nil
}
