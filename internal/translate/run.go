// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package translate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/blake-mills/zig-gobject/internal/gir"
)

// Run translates every namespace of the given root repositories into
// outputDir, one file per namespace. Repositories are resolved through reg,
// so shared dependencies are parsed once no matter how many roots pull them
// in. The first error aborts the run.
func Run(reg *Registry, t Translator, roots []string, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, root := range roots {
		repo, err := reg.Resolve(root)
		if err != nil {
			return err
		}

		for i := range repo.Namespaces {
			ns := &repo.Namespaces[i]
			if err := runNamespace(reg, t, repo, ns, outputDir); err != nil {
				return fmt.Errorf("repository %s, namespace %s: %w", root, ns.Name, err)
			}
		}
	}
	return nil
}

func runNamespace(reg *Registry, t Translator, repo *gir.Repository, ns *gir.Namespace, outputDir string) error {
	seen := make(map[string]bool)
	imports, err := ResolveIncludes(reg, repo.Includes, seen, t.FileExtension())
	if err != nil {
		return err
	}

	// GLib itself never declares GObject as a dependency, but its bindings
	// refer to gobject.Type wherever a GType appears.
	if ns.Name == "GLib" && !seen["GObject-"+ns.Version] {
		imports = append(imports, ImportFor("GObject", t.FileExtension()))
	}

	data, err := t.Translate(ns, imports)
	if err != nil {
		return err
	}

	outFile := filepath.Join(outputDir, strings.ToLower(ns.Name)+t.FileExtension())
	if err := writeFileSynced(outFile, data); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"namespace": ns.Name,
		"file":      outFile,
		"bytes":     len(data),
	}).Debug("namespace translated")
	return nil
}

// writeFileSynced writes data to path through a buffer, then flushes and
// syncs before closing. Pre-existing files are truncated. On failure the
// created file may be left behind empty; it is never left half-written,
// because nothing is flushed until the whole namespace rendered.
func writeFileSynced(path string, data []byte) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is derived from the output flag
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
