// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/audiocloud/schemars-zod/internal/translate/schema"
)

// Option configures Prepare and Convert.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report pipeline progress at debug level.
// If not provided, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Prepare merges the roots into a single definitions table, builds the dependency
// graph and maps every definition to a validator-expression tree.
// Declarations are returned with dependencies before dependents.
func Prepare(roots []schema.Root, opts ...Option) ([]Declaration, error) {
	o := newOptions(opts)

	table, err := schema.Merge(roots)
	if err != nil {
		return nil, fmt.Errorf("failed to merge schemas: %w", err)
	}
	o.logger.Debug("merged schemas", "roots", len(roots), "definitions", table.Len())

	graph := schema.BuildGraph(table)
	cyclic := graph.Cyclic()
	if len(cyclic) > 0 {
		o.logger.Debug("found cyclic definitions", "names", schema.SortedKeys(cyclic))
	}

	mapper := NewMapper(table, cyclic)

	var errs []error
	decls := make([]Declaration, 0, table.Len())
	for name, def := range graph.Definitions() {
		expr, err := mapper.MapDefinition(def)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decls = append(decls, Declaration{Name: name, Expr: expr})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return decls, nil
}

// Mapper turns schema nodes into validator-expression trees.
type Mapper struct {
	table  *schema.Table
	cyclic map[string]bool
}

// NewMapper creates a Mapper resolving references against table. References to
// names in cyclic are mapped to deferred references.
func NewMapper(table *schema.Table, cyclic map[string]bool) *Mapper {
	return &Mapper{table: table, cyclic: cyclic}
}

// MapDefinition maps the body of a definition using its naming policy.
func (m *Mapper) MapDefinition(def schema.Definition) (Expr, error) {
	c := &mapContext{mapper: m, from: def.Name, naming: def.Naming}
	return c.mapNode(def.Body)
}

type mapContext struct {
	mapper *Mapper
	from   string
	naming schema.NamingPolicy
}

func (c *mapContext) mapNode(n schema.Node) (Expr, error) {
	switch v := n.(type) {
	case *schema.Primitive:
		return mapPrimitive(v.Type)

	case *schema.StringWithFormat:
		if v.Format == schema.FormatDateTime {
			return Leaf{Kind: LeafDate}, nil
		}
		return Leaf{Kind: LeafString}, nil

	case *schema.Object:
		return c.mapObject(v)

	case *schema.Array:
		item, err := c.mapNode(v.Item)
		if err != nil {
			return nil, err
		}
		return ArrayExpr{Item: item}, nil

	case *schema.Map:
		value, err := c.mapNode(v.Value)
		if err != nil {
			return nil, err
		}
		return RecordExpr{Value: value}, nil

	case *schema.Enum:
		return LiteralUnionExpr{Values: append([]any(nil), v.Values...)}, nil

	case *schema.Union:
		variants := make([]Expr, 0, len(v.Variants))
		for _, variant := range v.Variants {
			e, err := c.mapNode(variant)
			if err != nil {
				return nil, err
			}
			variants = append(variants, e)
		}
		return UnionExpr{Variants: variants}, nil

	case *schema.Nullable:
		inner, err := c.mapNode(v.Inner)
		if err != nil {
			return nil, err
		}
		return NullableExpr{Inner: inner}, nil

	case *schema.Reference:
		if !c.mapper.table.Has(v.Name) {
			return nil, &schema.UnresolvedReferenceError{Name: v.Name, From: c.from}
		}
		if c.mapper.cyclic[v.Name] {
			return LazyExpr{Ref: RefExpr{Name: v.Name}}, nil
		}
		return RefExpr{Name: v.Name}, nil

	case *schema.Any:
		return Leaf{Kind: LeafUnknown}, nil

	case nil:
		return nil, fmt.Errorf("%s: missing schema node", c.from)
	}

	return nil, fmt.Errorf("%s: unsupported %s node %T", c.from, n.Kind(), n)
}

func mapPrimitive(t schema.PrimitiveType) (Expr, error) {
	switch t {
	case schema.TypeString:
		return Leaf{Kind: LeafString}, nil
	case schema.TypeNumber:
		return Leaf{Kind: LeafNumber}, nil
	case schema.TypeInteger:
		return Leaf{Kind: LeafInteger}, nil
	case schema.TypeBoolean:
		return Leaf{Kind: LeafBoolean}, nil
	case schema.TypeNull:
		return Leaf{Kind: LeafNull}, nil
	}
	return nil, fmt.Errorf("unsupported primitive type %q", t)
}

// mapObject renames every property with the active naming policy. A property that
// is not required is wrapped in OptionalExpr, outside any NullableExpr.
// Fields keep the source order of the properties.
func (c *mapContext) mapObject(obj *schema.Object) (Expr, error) {
	fields := make([]Field, 0, len(obj.Properties))
	seen := make(map[string]string, len(obj.Properties))
	for _, prop := range obj.Properties {
		name := c.naming.Apply(prop.Name)
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: properties %q and %q both map to field %q under naming policy %s",
				c.from, prev, prop.Name, name, c.naming.Name())
		}
		seen[name] = prop.Name

		value, err := c.mapNode(prop.Schema)
		if err != nil {
			return nil, err
		}
		if !prop.Required {
			value = OptionalExpr{Inner: value}
		}
		fields = append(fields, Field{Name: name, Value: value})
	}

	return ObjectExpr{Fields: fields}, nil
}
