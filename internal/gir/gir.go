// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Package gir models GObject Introspection Repository (GIR) documents.
//
// The types here mirror the GIR XML schema closely enough for binding
// generation; everything a translator does not need (docs, annotations,
// virtual methods, properties) is ignored by the decoder. Parsed values
// are treated as read-only by all consumers.
package gir

import "encoding/xml"

// Repository is one parsed GIR document. It declares the repositories it
// depends on and the namespaces it defines.
type Repository struct {
	XMLName    xml.Name    `xml:"repository"`
	Includes   []Include   `xml:"include"`
	Namespaces []Namespace `xml:"namespace"`
}

// Include is a cross-repository dependency declaration, e.g. name="GLib"
// version="2.0" referring to GLib-2.0.gir.
type Include struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
}

// Key returns the canonical dependency key, e.g. "GLib-2.0".
func (i Include) Key() string {
	return i.Name + "-" + i.Version
}

// Namespace is a named group of declarations. Each namespace is emitted as
// one output module.
type Namespace struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`

	Aliases    []Alias     `xml:"alias"`
	Classes    []Class     `xml:"class"`
	Interfaces []Interface `xml:"interface"`
	Records    []Record    `xml:"record"`
	Unions     []Union     `xml:"union"`
	Enums      []Enum      `xml:"enumeration"`
	Bitfields  []Bitfield  `xml:"bitfield"`
	Functions  []Function  `xml:"function"`
	Callbacks  []Callback  `xml:"callback"`
	Constants  []Constant  `xml:"constant"`
}

// TypeNode is a type usage site: exactly one of Type, Array or Callback is
// set. A TypeNode with none of them set carries no usable type information.
type TypeNode struct {
	Type     *Type     `xml:"type"`
	Array    *Array    `xml:"array"`
	Callback *Callback `xml:"callback"`
}

// Type is a simple type reference: an introspected name (possibly qualified
// with a namespace, e.g. "Gdk.Rectangle") plus the C spelling it came from.
type Type struct {
	Name  string `xml:"name,attr"`
	CType string `xml:"type,attr"`
}

// Array is an array type reference. FixedSize is empty for unbounded arrays.
type Array struct {
	CType     string `xml:"type,attr"`
	FixedSize string `xml:"fixed-size,attr"`
	Type      *Type  `xml:"type"`
	Array     *Array `xml:"array"`
}

// Alias is a named type alias, e.g. GLib.Quark -> guint32.
type Alias struct {
	Name  string `xml:"name,attr"`
	CType string `xml:"type,attr"`
	TypeNode
}

// Field is a data member of a class, record or union.
type Field struct {
	Name string `xml:"name,attr"`
	Bits string `xml:"bits,attr"`
	TypeNode
}

// Parameters groups the receiver and the ordinary parameters of a callable.
type Parameters struct {
	Instance *Parameter  `xml:"instance-parameter"`
	Params   []Parameter `xml:"parameter"`
}

// Parameter is a single callable parameter. Varargs is non-nil for a C
// variadic placeholder parameter, which has no sound translation.
type Parameter struct {
	Name    string    `xml:"name,attr"`
	Varargs *struct{} `xml:"varargs"`
	TypeNode
}

// ReturnValue is a callable return type plus its nullability.
type ReturnValue struct {
	Nullable bool `xml:"nullable,attr"`
	TypeNode
}

// Function is any introspected callable bound to a C symbol: free functions,
// methods and constructors all share this shape. MovedTo, when set, marks the
// declaration as superseded by another symbol and it must not be emitted.
type Function struct {
	Name        string       `xml:"name,attr"`
	CIdentifier string       `xml:"identifier,attr"`
	MovedTo     string       `xml:"moved-to,attr"`
	Parameters  *Parameters  `xml:"parameters"`
	ReturnValue *ReturnValue `xml:"return-value"`
}

// Callback is a named function-pointer type.
type Callback struct {
	Name        string       `xml:"name,attr"`
	CType       string       `xml:"type,attr"`
	Parameters  *Parameters  `xml:"parameters"`
	ReturnValue *ReturnValue `xml:"return-value"`
}

// Signal is a GObject signal declaration.
type Signal struct {
	Name        string       `xml:"name,attr"`
	Parameters  *Parameters  `xml:"parameters"`
	ReturnValue *ReturnValue `xml:"return-value"`
}

// Class is an instantiable object type with single inheritance.
type Class struct {
	Name         string     `xml:"name,attr"`
	Parent       string     `xml:"parent,attr"`
	GLibTypeName string     `xml:"type-name,attr"`
	Fields       []Field    `xml:"field"`
	Constructors []Function `xml:"constructor"`
	Methods      []Function `xml:"method"`
	Functions    []Function `xml:"function"`
	Signals      []Signal   `xml:"signal"`
	Constants    []Constant `xml:"constant"`
}

// Interface is a non-instantiable type; instances are always accessed
// through pointers, so it carries no layout of its own.
type Interface struct {
	Name      string     `xml:"name,attr"`
	Methods   []Function `xml:"method"`
	Functions []Function `xml:"function"`
	Signals   []Signal   `xml:"signal"`
	Constants []Constant `xml:"constant"`
}

// Record is a plain C struct.
type Record struct {
	Name         string     `xml:"name,attr"`
	Fields       []Field    `xml:"field"`
	Constructors []Function `xml:"constructor"`
	Methods      []Function `xml:"method"`
	Functions    []Function `xml:"function"`
}

// Union is a C union.
type Union struct {
	Name      string     `xml:"name,attr"`
	Fields    []Field    `xml:"field"`
	Methods   []Function `xml:"method"`
	Functions []Function `xml:"function"`
}

// Member is one named value of an enumeration or bit-flag set.
type Member struct {
	Name        string `xml:"name,attr"`
	Value       string `xml:"value,attr"`
	CIdentifier string `xml:"identifier,attr"`
}

// Enum is an enumeration of mutually exclusive integer values.
type Enum struct {
	Name      string     `xml:"name,attr"`
	Members   []Member   `xml:"member"`
	Functions []Function `xml:"function"`
}

// Bitfield is an enumeration of independently combinable single-bit flags.
type Bitfield struct {
	Name      string     `xml:"name,attr"`
	Members   []Member   `xml:"member"`
	Functions []Function `xml:"function"`
}

// Constant is a named literal value.
type Constant struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	TypeNode
}
