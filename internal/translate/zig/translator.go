// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Package zig translates GIR namespaces into Zig source modules.
//
// Classes keep their C layout as extern structs holding data fields only;
// everything callable lives in a parametric "Methods" unit attached with
// usingnamespace, so a subclass can incorporate its parent's unit at its own
// concrete type. Method resolution is purely lexical: no vtables, no virtual
// dispatch.
package zig

import (
	"bytes"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/blake-mills/zig-gobject/internal/gir"
	"github.com/blake-mills/zig-gobject/internal/translate"
)

// Translator translates GIR namespaces to Zig bindings.
type Translator struct{}

// FileExtension returns the file extension for Zig source files.
func (t *Translator) FileExtension() string {
	return ".zig"
}

// Translate renders one namespace as a complete Zig module. Declarations are
// emitted in a fixed kind order: aliases, classes, interfaces, records,
// unions, enums, bitfields, functions, callbacks, constants.
func (t *Translator) Translate(ns *gir.Namespace, imports []translate.Import) ([]byte, error) {
	w := &writer{ns: ns}

	for _, imp := range imports {
		w.printf("const %s = @import(\"%s\");\n", imp.Alias, imp.File)
	}

	for i := range ns.Aliases {
		w.sep()
		w.emitAlias(&ns.Aliases[i])
	}
	for i := range ns.Classes {
		w.sep()
		w.emitClass(&ns.Classes[i])
	}
	for i := range ns.Interfaces {
		w.sep()
		w.emitInterface(&ns.Interfaces[i])
	}
	for i := range ns.Records {
		w.sep()
		w.emitRecord(&ns.Records[i])
	}
	for i := range ns.Unions {
		w.sep()
		w.emitUnion(&ns.Unions[i])
	}
	for i := range ns.Enums {
		w.sep()
		w.emitEnum(&ns.Enums[i])
	}
	for i := range ns.Bitfields {
		w.sep()
		w.emitBitfield(&ns.Bitfields[i])
	}
	for i := range ns.Functions {
		if ns.Functions[i].MovedTo != "" {
			continue
		}
		w.sep()
		w.emitCallable(&ns.Functions[i], "", "", "")
	}
	for i := range ns.Callbacks {
		w.sep()
		w.emitCallbackDecl(&ns.Callbacks[i])
	}
	for i := range ns.Constants {
		w.sep()
		w.emitConstant(&ns.Constants[i], "")
	}

	return w.buf.Bytes(), nil
}

// writer accumulates one namespace's output.
type writer struct {
	buf bytes.Buffer
	ns  *gir.Namespace
}

func (w *writer) printf(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

// sep separates the upcoming declaration from whatever came before it.
func (w *writer) sep() {
	if w.buf.Len() > 0 {
		w.buf.WriteByte('\n')
	}
}

func (w *writer) emitAlias(a *gir.Alias) {
	w.printf("pub const %s = %s;\n", escapeIdent(a.Name), mapType(a.TypeNode, w.ns.Name))
}

func (w *writer) emitField(f *gir.Field) {
	w.printf("    %s: %s,\n", escapeIdent(f.Name), mapType(f.TypeNode, w.ns.Name))
}

func (w *writer) emitClass(c *gir.Class) {
	name := escapeIdent(c.Name)
	w.printf("pub const %s = extern struct {\n", name)
	for i := range c.Fields {
		w.emitField(&c.Fields[i])
	}
	if len(c.Fields) > 0 {
		w.printf("\n")
	}
	w.printf("    pub usingnamespace %sMethods(%s);\n", c.Name, name)
	w.printf("};\n")

	w.sep()
	w.emitMethodsUnit(c.Name, c.Parent, c.Constructors, c.Methods, c.Functions, c.Signals, c.Constants)
}

func (w *writer) emitInterface(iface *gir.Interface) {
	name := escapeIdent(iface.Name)
	w.printf("pub const %s = opaque {\n", name)
	w.printf("    pub usingnamespace %sMethods(%s);\n", iface.Name, name)
	w.printf("};\n")

	w.sep()
	w.emitMethodsUnit(iface.Name, "", nil, iface.Methods, iface.Functions, iface.Signals, iface.Constants)
}

func (w *writer) emitRecord(r *gir.Record) {
	name := escapeIdent(r.Name)
	w.printf("pub const %s = extern struct {\n", name)
	for i := range r.Fields {
		w.emitField(&r.Fields[i])
	}
	if len(r.Fields) > 0 {
		w.printf("\n")
	}
	w.printf("    pub usingnamespace %sMethods(%s);\n", r.Name, name)
	w.printf("};\n")

	w.sep()
	w.emitMethodsUnit(r.Name, "", r.Constructors, r.Methods, r.Functions, nil, nil)
}

func (w *writer) emitUnion(u *gir.Union) {
	name := escapeIdent(u.Name)
	w.printf("pub const %s = extern union {\n", name)
	for i := range u.Fields {
		w.emitField(&u.Fields[i])
	}
	if len(u.Fields) > 0 {
		w.printf("\n")
	}
	w.printf("    pub usingnamespace %sMethods(%s);\n", u.Name, name)
	w.printf("};\n")

	w.sep()
	w.emitMethodsUnit(u.Name, "", nil, u.Methods, u.Functions, nil, nil)
}

// emitMethodsUnit writes the parametric capability set of a composite type.
// A parented type incorporates the parent's unit instantiated at the same
// concrete type and gains an upcast accessor; since instances of a subclass
// are layout-compatible with the parent, the upcast is a pointer
// reinterpretation.
func (w *writer) emitMethodsUnit(name, parent string, ctors, methods, fns []gir.Function, signals []gir.Signal, consts []gir.Constant) {
	w.printf("pub fn %sMethods(comptime Self: type) type {\n", name)
	w.printf("    return struct {\n")

	first := true
	item := func() {
		if !first {
			w.printf("\n")
		}
		first = false
	}

	for i := range consts {
		item()
		w.emitConstant(&consts[i], "        ")
	}
	for i := range ctors {
		if ctors[i].MovedTo != "" {
			continue
		}
		item()
		w.emitCallable(&ctors[i], "        ", "", "*Self")
	}
	for i := range methods {
		if methods[i].MovedTo != "" {
			continue
		}
		item()
		w.emitCallable(&methods[i], "        ", "Self", "")
	}
	for i := range fns {
		if fns[i].MovedTo != "" {
			continue
		}
		item()
		w.emitCallable(&fns[i], "        ", "", "")
	}
	for i := range signals {
		item()
		w.emitSignal(&signals[i], "        ")
	}

	if parent != "" {
		prefix, local := splitQualified(parent, w.ns.Name)
		item()
		w.printf("        pub fn as%s(self: *Self) *%s%s {\n", local, prefix, local)
		w.printf("            return @ptrCast(self);\n")
		w.printf("        }\n")
		w.printf("\n")
		w.printf("        pub usingnamespace %s%sMethods(Self);\n", prefix, local)
	}

	w.printf("    };\n")
	w.printf("}\n")
}

func (w *writer) emitEnum(e *gir.Enum) {
	width := "i32"
	for _, m := range e.Members {
		if v, err := strconv.ParseInt(m.Value, 10, 64); err == nil && (v > math.MaxInt32 || v < math.MinInt32) {
			width = "i64"
		}
	}

	name := escapeIdent(e.Name)
	w.printf("pub const %s = enum(%s) {\n", name, width)

	// Zig enums forbid duplicate values, but GIR members freely alias each
	// other; later duplicates become constants of the enum type.
	seen := make(map[string]bool)
	var dups []gir.Member
	for _, m := range e.Members {
		if seen[m.Value] {
			dups = append(dups, m)
			continue
		}
		seen[m.Value] = true
		w.printf("    %s = %s,\n", escapeIdent(m.Name), m.Value)
	}
	for i, m := range dups {
		if i == 0 {
			w.printf("\n")
		}
		w.printf("    pub const %s: %s = @enumFromInt(%s);\n", escapeIdent(m.Name), name, m.Value)
	}
	for i := range e.Functions {
		if e.Functions[i].MovedTo != "" {
			continue
		}
		w.printf("\n")
		w.emitCallable(&e.Functions[i], "    ", "", "")
	}
	w.printf("};\n")
}

func (w *writer) emitBitfield(bf *gir.Bitfield) {
	values := make([]uint64, len(bf.Members))
	var maxVal uint64
	for i, m := range bf.Members {
		v, err := strconv.ParseUint(m.Value, 10, 64)
		if err != nil {
			if sv, serr := strconv.ParseInt(m.Value, 10, 64); serr == nil {
				v = uint64(sv)
			}
		}
		values[i] = v
		if v > maxVal {
			maxVal = v
		}
	}
	width := 32
	if maxVal >= 1<<31 {
		width = 64
	}

	// Single-bit members become bool fields at their bit position; combined
	// masks and aliases of an already-claimed bit become constants. The zero
	// value means "no flags" and needs no storage at all.
	claimed := make(map[int]string, len(bf.Members))
	var consts []gir.Member
	var constVals []uint64
	for i, m := range bf.Members {
		v := values[i]
		if v == 0 {
			continue
		}
		if v&(v-1) == 0 {
			bit := bits.TrailingZeros64(v)
			if _, taken := claimed[bit]; !taken {
				claimed[bit] = m.Name
				continue
			}
		}
		consts = append(consts, m)
		constVals = append(constVals, v)
	}

	name := escapeIdent(bf.Name)
	w.printf("pub const %s = packed struct(u%d) {\n", name, width)
	last := 0
	for bit := 0; bit < width; bit++ {
		fieldName, ok := claimed[bit]
		if !ok {
			continue
		}
		if bit > last {
			w.printf("    _padding%d: u%d = 0,\n", last, bit-last)
		}
		w.printf("    %s: bool = false,\n", escapeIdent(fieldName))
		last = bit + 1
	}
	if width > last {
		w.printf("    _padding%d: u%d = 0,\n", last, width-last)
	}
	for i, m := range consts {
		if i == 0 {
			w.printf("\n")
		}
		w.printf("    pub const %s: %s = @bitCast(@as(u%d, %d));\n", escapeIdent(m.Name), name, width, constVals[i])
	}
	for i := range bf.Functions {
		if bf.Functions[i].MovedTo != "" {
			continue
		}
		w.printf("\n")
		w.emitCallable(&bf.Functions[i], "    ", "", "")
	}
	w.printf("};\n")
}

func (w *writer) emitCallbackDecl(cb *gir.Callback) {
	// The introspection data for DestroyNotify describes the callback in
	// terms of itself; its real C signature is fixed.
	if cb.Name == "DestroyNotify" {
		w.printf("pub const DestroyNotify = ?*const fn (data: ?*anyopaque) callconv(.C) void;\n")
		return
	}
	w.printf("pub const %s = %s;\n", escapeIdent(cb.Name), mapCallbackType(cb, w.ns.Name))
}

func (w *writer) emitConstant(c *gir.Constant, indent string) {
	typ := mapType(c.TypeNode, w.ns.Name)
	val := c.Value
	if c.Type != nil && (c.Type.Name == "utf8" || c.Type.Name == "filename") {
		typ = "[*:0]const u8"
		val = quoteString(c.Value)
	}
	w.printf("%spub const %s: %s = %s;\n", indent, escapeIdent(c.Name), typ, val)
}

// splitQualified splits a possibly namespace-qualified type name into its
// module-alias prefix and local name, relative to the current namespace.
func splitQualified(name, currentNS string) (prefix, local string) {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return nsPrefix(name[:i], currentNS), name[i+1:]
	}
	return "", name
}
