// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package zig

import (
	"strconv"
	"strings"

	"github.com/blake-mills/zig-gobject/internal/gir"
)

// errPlaceholder is emitted wherever a type reference carries too little
// information to translate. The run keeps going; the failure surfaces only if
// the generated declaration is actually referenced by Zig code.
const errPlaceholder = `@compileError("not enough type information available")`

// primitives maps GIR primitive names and unqualified C spellings to Zig
// primitives. Both the introspected name ("gint32") and the stripped C base
// type ("unsigned int") are looked up here.
var primitives = map[string]string{
	"gboolean": "bool",
	"gchar":    "u8", "guchar": "u8", "char": "u8",
	"gint8": "i8", "guint8": "u8",
	"gint16": "i16", "guint16": "u16",
	"gint32": "i32", "guint32": "u32",
	"gint64": "i64", "guint64": "u64",
	"gint": "c_int", "int": "c_int",
	"guint": "c_uint", "unsigned": "c_uint", "unsigned int": "c_uint",
	"gshort": "c_short", "short": "c_short",
	"gushort": "c_ushort", "unsigned short": "c_ushort",
	"glong": "c_long", "long": "c_long",
	"gulong": "c_ulong", "unsigned long": "c_ulong",
	"gsize": "usize", "size_t": "usize",
	"gssize": "isize", "ssize_t": "isize",
	"gintptr": "isize", "guintptr": "usize",
	"gunichar": "u32", "gunichar2": "u16",
	"gfloat": "f32", "float": "f32",
	"gdouble": "f64", "double": "f64",
	"none": "void", "void": "void",
	"gpointer": "?*anyopaque", "gconstpointer": "?*const anyopaque",
}

// mapType translates a type usage site into Zig type syntax. currentNS is
// the namespace being emitted; references into it are left unqualified.
func mapType(n gir.TypeNode, currentNS string) string {
	switch {
	case n.Callback != nil:
		return mapCallbackType(n.Callback, currentNS)
	case n.Array != nil:
		return mapArrayType(n.Array, currentNS)
	case n.Type != nil:
		return mapSimpleType(n.Type, currentNS)
	default:
		return errPlaceholder
	}
}

func mapArrayType(a *gir.Array, currentNS string) string {
	elem := mapType(gir.TypeNode{Type: a.Type, Array: a.Array}, currentNS)
	if a.FixedSize != "" {
		return "[" + a.FixedSize + "]" + elem
	}
	return "[*]" + elem
}

func mapSimpleType(t *gir.Type, currentNS string) string {
	// Generic untyped pointers short-circuit every other rule.
	switch t.CType {
	case "gpointer", "void*":
		return "?*anyopaque"
	case "gconstpointer", "const void*":
		return "?*const anyopaque"
	}

	if t.Name == "" {
		return errPlaceholder
	}

	// The type tag lives in GObject no matter which namespace spelled it.
	if t.Name == "GType" || t.Name == "GObject.Type" {
		return nsPrefix("GObject", currentNS) + "Type"
	}

	if t.Name == "utf8" || t.Name == "filename" {
		return mapStringType(t.CType)
	}

	prefix, base := decompose(t.CType)
	if prim, ok := primitives[base]; ok {
		return prefix + prim
	}
	if prim, ok := primitives[t.Name]; ok {
		return prefix + prim
	}

	local := t.Name
	q := ""
	if i := strings.IndexByte(local, '.'); i >= 0 {
		q, local = local[:i], local[i+1:]
	}
	return prefix + nsPrefix(q, currentNS) + local
}

// mapStringType renders utf8/filename references. A pointer-shaped C
// spelling becomes a null-terminated pointer to u8; anything else is the
// bare character type.
func mapStringType(ctype string) string {
	stars := 0
	base := strings.TrimSpace(ctype)
	for strings.HasSuffix(base, "*") {
		stars++
		base = strings.TrimSpace(strings.TrimSuffix(base, "*"))
	}
	if stars == 0 {
		return "u8"
	}
	qual := ""
	if strings.HasPrefix(base, "const ") || strings.HasSuffix(base, " const") || base == "const" {
		qual = "const "
	}
	return strings.Repeat("*", stars-1) + "[*:0]" + qual + "u8"
}

// decompose strips trailing pointer stars and const qualifiers from a C type
// spelling, returning the accumulated Zig pointer prefix and the bare base
// type. A const on a non-pointer type has no meaning in a declaration and is
// dropped.
func decompose(ctype string) (prefix, base string) {
	base = strings.TrimSpace(ctype)
	for {
		switch {
		case strings.HasSuffix(base, "*"):
			prefix += "*"
			base = strings.TrimSpace(strings.TrimSuffix(base, "*"))
		case strings.HasSuffix(base, " const"):
			base = strings.TrimSpace(strings.TrimSuffix(base, " const"))
			if prefix != "" {
				prefix += "const "
			}
		case strings.HasPrefix(base, "const "):
			base = strings.TrimSpace(strings.TrimPrefix(base, "const "))
			if prefix != "" {
				prefix += "const "
			}
		default:
			return prefix, base
		}
	}
}

// nsPrefix returns the module-alias prefix for a namespace reference, or ""
// when the reference stays within the namespace being emitted.
func nsPrefix(ns, currentNS string) string {
	if ns == "" || strings.EqualFold(ns, currentNS) {
		return ""
	}
	return strings.ToLower(ns) + "."
}

// mapReturnType renders a callable return type, wrapping pointer-shaped
// nullable returns in an optional.
func mapReturnType(rv *gir.ReturnValue, currentNS string) string {
	if rv == nil {
		return "void"
	}
	t := mapType(rv.TypeNode, currentNS)
	if rv.Nullable && isPointerType(t) {
		return "?" + t
	}
	return t
}

func isPointerType(t string) bool {
	return strings.HasPrefix(t, "*") || strings.HasPrefix(t, "[*")
}

// mapCallbackType renders an inline function-pointer signature. Function
// pointers coming from introspection data are always nullable.
func mapCallbackType(cb *gir.Callback, currentNS string) string {
	var b strings.Builder
	b.WriteString("?*const fn (")
	if cb.Parameters != nil {
		for i, p := range cb.Parameters.Params {
			if p.Varargs != nil {
				return errPlaceholder
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(paramName(p, i))
			b.WriteString(": ")
			b.WriteString(mapType(p.TypeNode, currentNS))
		}
	}
	b.WriteString(") callconv(.C) ")
	b.WriteString(mapReturnType(cb.ReturnValue, currentNS))
	return b.String()
}

func paramName(p gir.Parameter, i int) string {
	if p.Name == "" {
		return "p" + strconv.Itoa(i)
	}
	return escapeIdent(toLowerCamelCase(p.Name, "_"))
}
