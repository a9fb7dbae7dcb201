// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package translate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blake-mills/zig-gobject/internal/errdefs"
	"github.com/blake-mills/zig-gobject/internal/gir"
)

// stubTranslator renders a namespace as one line per import followed by the
// namespace name, enough to observe driver behavior without a real target.
type stubTranslator struct{}

func (stubTranslator) FileExtension() string { return ".zig" }

func (stubTranslator) Translate(ns *gir.Namespace, imports []Import) ([]byte, error) {
	var b strings.Builder
	for _, imp := range imports {
		fmt.Fprintf(&b, "import %s %s\n", imp.Alias, imp.File)
	}
	fmt.Fprintf(&b, "namespace %s\n", ns.Name)
	return []byte(b.String()), nil
}

func TestRun(t *testing.T) {
	reg := NewRegistry(girFS(map[string]string{
		"Gtk-4.0.gir":     girDoc("Gtk", "4.0", gir.Include{Name: "Pango", Version: "1.0"}),
		"Pango-1.0.gir":   girDoc("Pango", "1.0", gir.Include{Name: "GObject", Version: "2.0"}),
		"GObject-2.0.gir": girDoc("GObject", "2.0"),
	}))
	outDir := filepath.Join(t.TempDir(), "bindings", "out")

	err := Run(reg, stubTranslator{}, []string{"Gtk-4.0"}, outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "gtk.zig"))
	require.NoError(t, err)
	assert.Equal(t, "import gobject gobject.zig\nimport pango pango.zig\nnamespace Gtk\n", string(data))

	// Only the requested roots are emitted; dependencies are imports, not
	// output files of their own.
	_, err = os.Stat(filepath.Join(outDir, "pango.zig"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MultipleRoots(t *testing.T) {
	reg := NewRegistry(girFS(map[string]string{
		"Pango-1.0.gir": girDoc("Pango", "1.0", gir.Include{Name: "GLib", Version: "2.0"}),
		"Gdk-4.0.gir":   girDoc("Gdk", "4.0", gir.Include{Name: "GLib", Version: "2.0"}),
		"GLib-2.0.gir":  girDoc("GLib", "2.0"),
	}))
	outDir := t.TempDir()

	err := Run(reg, stubTranslator{}, []string{"Pango-1.0", "Gdk-4.0"}, outDir)
	require.NoError(t, err)

	for _, name := range []string{"pango.zig", "gdk.zig"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestRun_BaseLibraryImportsObjectSystem(t *testing.T) {
	// GLib never declares GObject as a dependency, but the generated module
	// refers to it for the type tag.
	reg := NewRegistry(girFS(map[string]string{
		"GLib-2.0.gir": girDoc("GLib", "2.0"),
	}))
	outDir := t.TempDir()

	err := Run(reg, stubTranslator{}, []string{"GLib-2.0"}, outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "glib.zig"))
	require.NoError(t, err)
	assert.Equal(t, "import gobject gobject.zig\nnamespace GLib\n", string(data))
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	reg := NewRegistry(girFS(map[string]string{
		"GObject-2.0.gir": girDoc("GObject", "2.0"),
	}))
	outDir := t.TempDir()
	outFile := filepath.Join(outDir, "gobject.zig")
	require.NoError(t, os.WriteFile(outFile, []byte("stale content that is longer than the fresh output\n"), 0o600))

	err := Run(reg, stubTranslator{}, []string{"GObject-2.0"}, outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "namespace GObject\n", string(data))
}

func TestRun_UnknownRoot(t *testing.T) {
	reg := NewRegistry(girFS(nil))

	err := Run(reg, stubTranslator{}, []string{"Nope-1.0"}, t.TempDir())
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
}
