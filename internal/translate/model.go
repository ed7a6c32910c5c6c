// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// Declaration is one named validator: the unit a translator emits.
type Declaration struct {
	Name string
	Expr Expr
}

// Expr is a node of a validator-expression tree, the target-independent
// form a translator turns into source text.
type Expr interface {
	expr()
}

// LeafKind identifies a primitive validator.
type LeafKind int

const (
	LeafString LeafKind = iota
	LeafNumber
	LeafInteger
	LeafBoolean
	LeafNull
	LeafDate // coerces date-like input to a date value
	LeafUnknown
)

// Leaf is a primitive validator.
type Leaf struct {
	Kind LeafKind
}

// Field is one entry of an ObjectExpr.
type Field struct {
	Name  string // emitted name, after the naming policy
	Value Expr
}

// ObjectExpr validates an object with a fixed set of fields, in source order.
type ObjectExpr struct {
	Fields []Field
}

// ArrayExpr validates a list of Item.
type ArrayExpr struct {
	Item Expr
}

// RecordExpr validates a string-keyed dictionary of Value.
type RecordExpr struct {
	Value Expr
}

// LiteralUnionExpr accepts exactly one of Values.
type LiteralUnionExpr struct {
	Values []any
}

// UnionExpr accepts any of Variants.
type UnionExpr struct {
	Variants []Expr
}

// OptionalExpr marks a field that may be absent.
type OptionalExpr struct {
	Inner Expr
}

// NullableExpr admits null in addition to Inner.
type NullableExpr struct {
	Inner Expr
}

// RefExpr refers to another declaration by name, evaluated eagerly.
type RefExpr struct {
	Name string
}

// LazyExpr defers evaluation of Ref until the validator is first used.
// It is the only way a declaration may refer to one declared later or to itself.
type LazyExpr struct {
	Ref RefExpr
}

func (Leaf) expr()             {}
func (ObjectExpr) expr()       {}
func (ArrayExpr) expr()        {}
func (RecordExpr) expr()       {}
func (LiteralUnionExpr) expr() {}
func (UnionExpr) expr()        {}
func (OptionalExpr) expr()     {}
func (NullableExpr) expr()     {}
func (RefExpr) expr()          {}
func (LazyExpr) expr()         {}
