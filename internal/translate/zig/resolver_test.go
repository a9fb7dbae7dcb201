// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package zig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blake-mills/zig-gobject/internal/gir"
)

func simple(name, ctype string) gir.TypeNode {
	return gir.TypeNode{Type: &gir.Type{Name: name, CType: ctype}}
}

func TestMapType_GenericPointers(t *testing.T) {
	// The untyped pointer spelling wins regardless of the declared name.
	assert.Equal(t, "?*anyopaque", mapType(simple("gpointer", "gpointer"), "GLib"))
	assert.Equal(t, "?*anyopaque", mapType(simple("Object", "gpointer"), "GObject"))
	assert.Equal(t, "?*anyopaque", mapType(simple("gpointer", "void*"), "GLib"))
	assert.Equal(t, "?*const anyopaque", mapType(simple("gconstpointer", "gconstpointer"), "GLib"))
	assert.Equal(t, "?*const anyopaque", mapType(simple("utf8", "const void*"), "GLib"))
}

func TestMapType_Untranslatable(t *testing.T) {
	assert.Equal(t, errPlaceholder, mapType(simple("", ""), "GLib"))
	assert.Equal(t, errPlaceholder, mapType(gir.TypeNode{}, "GLib"))
}

func TestMapType_TypeTag(t *testing.T) {
	assert.Equal(t, "gobject.Type", mapType(simple("GType", "GType"), "Gtk"))
	assert.Equal(t, "gobject.Type", mapType(simple("GType", "GType"), "GLib"))
	assert.Equal(t, "Type", mapType(simple("GType", "GType"), "GObject"))
}

func TestMapType_Strings(t *testing.T) {
	assert.Equal(t, "[*:0]const u8", mapType(simple("utf8", "const char*"), "GLib"))
	assert.Equal(t, "[*:0]const u8", mapType(simple("filename", "const gchar*"), "GLib"))
	assert.Equal(t, "[*:0]u8", mapType(simple("utf8", "char*"), "GLib"))
	assert.Equal(t, "*[*:0]u8", mapType(simple("utf8", "char**"), "GLib"))
	assert.Equal(t, "u8", mapType(simple("utf8", "gchar"), "GLib"))
}

func TestMapType_PointerDecomposition(t *testing.T) {
	tests := []struct {
		name  string
		ctype string
		ns    string
		want  string
	}{
		{"Widget", "GtkWidget*", "Gtk", "*Widget"},
		{"Widget", "GtkWidget**", "Gtk", "**Widget"},
		{"Widget", "const GtkWidget*", "Gtk", "*const Widget"},
		{"Widget", "const GtkWidget**", "Gtk", "**const Widget"},
		{"gint", "const int", "GLib", "c_int"}, // bare const carries no meaning
		{"guint8", "guint8*", "GLib", "*u8"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapType(simple(tt.name, tt.ctype), tt.ns), "%s / %s", tt.name, tt.ctype)
	}
}

func TestMapType_Primitives(t *testing.T) {
	tests := []struct {
		name, ctype, want string
	}{
		{"gboolean", "gboolean", "bool"},
		{"gint8", "gint8", "i8"},
		{"guint16", "guint16", "u16"},
		{"gint32", "gint32", "i32"},
		{"guint64", "guint64", "u64"},
		{"gint", "int", "c_int"},
		{"guint", "unsigned int", "c_uint"},
		{"glong", "long", "c_long"},
		{"gsize", "size_t", "usize"},
		{"gssize", "gssize", "isize"},
		{"gfloat", "float", "f32"},
		{"gdouble", "double", "f64"},
		{"none", "void", "void"},
		{"gunichar", "gunichar", "u32"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapType(simple(tt.name, tt.ctype), "GLib"), tt.name)
	}
}

func TestMapType_PrimitiveByNameOnly(t *testing.T) {
	// Array element types frequently carry no C spelling at all.
	assert.Equal(t, "f64", mapType(simple("gdouble", ""), "GLib"))
	assert.Equal(t, "c_int", mapType(simple("gint", ""), "GLib"))
}

func TestMapType_NamespaceQualification(t *testing.T) {
	assert.Equal(t, "*gdk.Rectangle", mapType(simple("Gdk.Rectangle", "GdkRectangle*"), "Gtk"))
	assert.Equal(t, "Rectangle", mapType(simple("Gdk.Rectangle", ""), "Gdk"))
	// Comparison against the current namespace is case-insensitive.
	assert.Equal(t, "Rectangle", mapType(simple("GDK.Rectangle", ""), "gdk"))
	assert.Equal(t, "Variant", mapType(simple("Variant", ""), "GLib"))
}

func TestMapType_Arrays(t *testing.T) {
	fixed := gir.TypeNode{Array: &gir.Array{
		FixedSize: "16",
		Type:      &gir.Type{Name: "guint8", CType: "guint8"},
	}}
	assert.Equal(t, "[16]u8", mapType(fixed, "GLib"))

	unbounded := gir.TypeNode{Array: &gir.Array{
		Type: &gir.Type{Name: "Widget", CType: "GtkWidget*"},
	}}
	assert.Equal(t, "[*]*Widget", mapType(unbounded, "Gtk"))

	nested := gir.TypeNode{Array: &gir.Array{
		FixedSize: "4",
		Array:     &gir.Array{Type: &gir.Type{Name: "gdouble", CType: "gdouble"}},
	}}
	assert.Equal(t, "[4][*]f64", mapType(nested, "GLib"))
}

func TestMapType_InlineCallback(t *testing.T) {
	cb := gir.TypeNode{Callback: &gir.Callback{
		Name: "CompareFunc",
		Parameters: &gir.Parameters{Params: []gir.Parameter{
			{Name: "a", TypeNode: simple("gconstpointer", "gconstpointer")},
			{Name: "b", TypeNode: simple("gconstpointer", "gconstpointer")},
		}},
		ReturnValue: &gir.ReturnValue{TypeNode: simple("gint", "gint")},
	}}
	assert.Equal(t, "?*const fn (a: ?*const anyopaque, b: ?*const anyopaque) callconv(.C) c_int", mapType(cb, "GLib"))
}

func TestMapReturnType_Nullable(t *testing.T) {
	rv := &gir.ReturnValue{Nullable: true, TypeNode: simple("Widget", "GtkWidget*")}
	assert.Equal(t, "?*Widget", mapReturnType(rv, "Gtk"))

	// Nullability cannot wrap a non-pointer type.
	scalar := &gir.ReturnValue{Nullable: true, TypeNode: simple("gint", "gint")}
	assert.Equal(t, "c_int", mapReturnType(scalar, "GLib"))

	// Untyped pointers already include their optionality.
	ptr := &gir.ReturnValue{Nullable: true, TypeNode: simple("gpointer", "gpointer")}
	assert.Equal(t, "?*anyopaque", mapReturnType(ptr, "GLib"))

	assert.Equal(t, "void", mapReturnType(nil, "GLib"))
}
