// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package zig

import (
	"fmt"
	"strings"
)

// toLowerCamelCase converts a separator-delimited identifier to lowerCamelCase:
// the first non-empty segment is lowercased, every later segment gets its
// first character upper-cased. Used for snake_case function names and
// kebab-case signal names.
func toLowerCamelCase(s, sep string) string {
	var b strings.Builder
	first := true
	for _, part := range strings.Split(s, sep) {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(part))
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// upperFirst upper-cases the first character of s.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// zigKeywords are identifiers that must be escaped in generated Zig source.
var zigKeywords = map[string]bool{
	"addrspace": true, "align": true, "allowzero": true, "and": true,
	"anyframe": true, "anytype": true, "asm": true, "async": true,
	"await": true, "break": true, "callconv": true, "catch": true,
	"comptime": true, "const": true, "continue": true, "defer": true,
	"else": true, "enum": true, "errdefer": true, "error": true,
	"export": true, "extern": true, "fn": true, "for": true, "if": true,
	"inline": true, "linksection": true, "noalias": true, "noinline": true,
	"nosuspend": true, "opaque": true, "or": true, "orelse": true,
	"packed": true, "pub": true, "resume": true, "return": true,
	"struct": true, "suspend": true, "switch": true, "test": true,
	"threadlocal": true, "try": true, "union": true, "unreachable": true,
	"usingnamespace": true, "var": true, "volatile": true, "while": true,
	"null": true, "true": true, "false": true, "undefined": true,
}

// escapeIdent escapes identifiers that collide with a Zig keyword or that
// are not plain identifiers (leading digit) using @"..." syntax.
func escapeIdent(s string) string {
	if s == "" {
		return s
	}
	if zigKeywords[s] || (s[0] >= '0' && s[0] <= '9') {
		return `@"` + s + `"`
	}
	return s
}

// quoteString renders s as a Zig string literal, escaping quotes, backslashes
// and control characters so the generated literal parses back to s.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
