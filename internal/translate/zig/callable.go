// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package zig

import (
	"strings"

	"github.com/blake-mills/zig-gobject/internal/gir"
)

// externParams renders the parameter list of a foreign-call declaration.
// receiver, when non-empty, names the comptime instance type the receiver
// pointer is typed against. ok is false when the callable has a variadic
// parameter and therefore no sound translation.
func externParams(ps *gir.Parameters, currentNS, receiver string) (params string, ok bool) {
	var parts []string
	if receiver != "" {
		parts = append(parts, "self: *"+receiver)
	}
	if ps != nil {
		for i, p := range ps.Params {
			if p.Varargs != nil {
				return "", false
			}
			parts = append(parts, paramName(p, i)+": "+mapType(p.TypeNode, currentNS))
		}
	}
	return strings.Join(parts, ", "), true
}

// emitCallable writes one foreign-call binding: the extern declaration with
// the C calling convention preserved, plus a camel-cased re-export of the
// symbol. receiver types the instance parameter; retOverride, when non-empty,
// replaces the declared return type (constructors are known to under-declare
// theirs). moved-to callables are superseded elsewhere and produce nothing.
func (w *writer) emitCallable(fn *gir.Function, indent, receiver, retOverride string) {
	if fn.MovedTo != "" {
		return
	}

	alias := escapeIdent(toLowerCamelCase(fn.Name, "_"))
	params, ok := externParams(fn.Parameters, w.ns.Name, receiver)
	if !ok {
		w.printf("%spub const %s = @compileError(\"functions with variadic parameters are not supported\");\n", indent, alias)
		return
	}

	ret := retOverride
	if ret == "" {
		ret = mapReturnType(fn.ReturnValue, w.ns.Name)
	}

	w.printf("%sextern fn %s(%s) %s;\n", indent, fn.CIdentifier, params, ret)
	w.printf("%spub const %s = %s;\n", indent, alias, fn.CIdentifier)
}

// emitSignal writes a connection helper for one signal. The helper takes a
// receiver pointer, a callback typed against the signal's declared
// parameters, and an opaque user-data pointer, and forwards to GObject's
// generic connection primitive with the signal's literal name. The cast to
// the generic callback type is the one intentional type erasure in the
// generated bindings; the helper's own signature is what keeps it honest.
func (w *writer) emitSignal(sig *gir.Signal, indent string) {
	gp := nsPrefix("GObject", w.ns.Name)
	name := "connect" + upperFirst(toLowerCamelCase(sig.Name, "-"))

	var cb strings.Builder
	cb.WriteString("*const fn (self: *Self")
	if sig.Parameters != nil {
		for i, p := range sig.Parameters.Params {
			cb.WriteString(", ")
			cb.WriteString(paramName(p, i))
			cb.WriteString(": ")
			cb.WriteString(mapType(p.TypeNode, w.ns.Name))
		}
	}
	cb.WriteString(", user_data: ?*anyopaque) callconv(.C) ")
	cb.WriteString(mapReturnType(sig.ReturnValue, w.ns.Name))

	w.printf("%spub fn %s(self: *Self, callback: %s, user_data: ?*anyopaque) c_ulong {\n", indent, name, cb.String())
	w.printf("%s    return %ssignalConnectData(@ptrCast(self), %s, @as(%sCallback, @ptrCast(callback)), user_data, null, .{});\n",
		indent, gp, quoteString(sig.Name), gp)
	w.printf("%s}\n", indent)
}
