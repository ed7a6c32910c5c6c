// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema provides the normalized schema model shared by all translators:
// schema nodes, the merged definitions table and the dependency graph between definitions.
package schema

// Kind identifies a schema node variant.
type Kind int

const (
	KindPrimitive Kind = iota
	KindString
	KindObject
	KindArray
	KindMap
	KindEnum
	KindUnion
	KindNullable
	KindReference
	KindAny
)

var kindNames = [...]string{
	KindPrimitive: "primitive",
	KindString:    "string",
	KindObject:    "object",
	KindArray:     "array",
	KindMap:       "map",
	KindEnum:      "enum",
	KindUnion:     "union",
	KindNullable:  "nullable",
	KindReference: "reference",
	KindAny:       "any",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is one node of a schema's structural shape.
type Node interface {
	Kind() Kind
}

// PrimitiveType names a JSON primitive.
type PrimitiveType string

const (
	TypeString  PrimitiveType = "string"
	TypeNumber  PrimitiveType = "number"
	TypeInteger PrimitiveType = "integer"
	TypeBoolean PrimitiveType = "boolean"
	TypeNull    PrimitiveType = "null"
)

// FormatDateTime is the string format mapped to a coerced date.
const FormatDateTime = "date-time"

// Primitive is a plain JSON primitive.
type Primitive struct {
	Type PrimitiveType
}

func (*Primitive) Kind() Kind { return KindPrimitive }

// StringWithFormat is a string carrying a format annotation such as "date-time".
type StringWithFormat struct {
	Format string
}

func (*StringWithFormat) Kind() Kind { return KindString }

// Property is a single named field of an Object.
type Property struct {
	Name     string
	Schema   Node
	Required bool
}

// Object is an object with an ordered list of properties.
type Object struct {
	Properties []Property
}

func (*Object) Kind() Kind { return KindObject }

// Array is a homogeneous list.
type Array struct {
	Item Node
}

func (*Array) Kind() Kind { return KindArray }

// Map is a string-keyed dictionary.
type Map struct {
	Value Node
}

func (*Map) Kind() Kind { return KindMap }

// Enum is an ordered set of literal values (string, float64, bool or nil).
type Enum struct {
	Values []any
}

func (*Enum) Kind() Kind { return KindEnum }

// Union is an ordered list of alternatives.
type Union struct {
	Variants []Node
}

func (*Union) Kind() Kind { return KindUnion }

// Nullable admits null in addition to Inner.
type Nullable struct {
	Inner Node
}

func (*Nullable) Kind() Kind { return KindNullable }

// Reference points to a named definition.
type Reference struct {
	Name string
}

func (*Reference) Kind() Kind { return KindReference }

// Any accepts every value.
type Any struct{}

func (*Any) Kind() Kind { return KindAny }

// Walk calls fn for n and every node nested below it, depth first.
// Returning false from fn skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch v := n.(type) {
	case *Object:
		for _, p := range v.Properties {
			Walk(p.Schema, fn)
		}
	case *Array:
		Walk(v.Item, fn)
	case *Map:
		Walk(v.Value, fn)
	case *Union:
		for _, variant := range v.Variants {
			Walk(variant, fn)
		}
	case *Nullable:
		Walk(v.Inner, fn)
	}
}
