// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"fmt"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"

	model "github.com/audiocloud/schemars-zod/internal/translate/schema"
)

// NamingFunc returns the naming policy for the definition with the given name.
type NamingFunc func(name string) model.NamingPolicy

// ToRoot adapts a parsed document to a schema root. The document title names
// the root; an untitled document contributes only its definitions.
func ToRoot(doc *Document, naming NamingFunc) (model.Root, error) {
	if naming == nil {
		naming = func(string) model.NamingPolicy { return model.Identity }
	}
	a := &adapter{keyOrder: doc.KeyOrder, file: doc.Path}

	root := model.Root{
		Name:             doc.Schema.Title,
		Naming:           naming(doc.Schema.Title),
		Definitions:      make(map[string]model.Node),
		DefinitionNaming: make(map[string]model.NamingPolicy),
	}

	defTables := []struct {
		key  string
		defs map[string]*jsonschema.Schema
	}{
		{"definitions", doc.Schema.Definitions},
		{"$defs", doc.Schema.Defs},
	}
	for _, table := range defTables {
		for _, name := range sortedKeys(table.defs) {
			if _, dup := root.Definitions[name]; dup {
				return model.Root{}, fmt.Errorf("%s: %q is declared in both definitions and $defs", doc.Path, name)
			}
			node, err := a.node(table.defs[name], table.key+"."+name)
			if err != nil {
				return model.Root{}, err
			}
			root.Definitions[name] = node
			root.DefinitionNaming[name] = naming(name)
		}
	}

	if root.Name != "" {
		body, err := a.node(withoutDefinitions(doc.Schema), "")
		if err != nil {
			return model.Root{}, err
		}
		root.Body = body
	}

	return root, nil
}

// ToRoots adapts every document in order.
func ToRoots(docs []*Document, naming NamingFunc) ([]model.Root, error) {
	roots := make([]model.Root, 0, len(docs))
	for _, doc := range docs {
		root, err := ToRoot(doc, naming)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}
	return roots, nil
}

func withoutDefinitions(s *jsonschema.Schema) *jsonschema.Schema {
	c := *s
	c.Defs = nil
	c.Definitions = nil
	return &c
}

type adapter struct {
	keyOrder KeyOrder
	file     string
}

func (a *adapter) errorf(path, format string, args ...any) error {
	if path == "" {
		path = "(root)"
	}
	return fmt.Errorf("%s: %s: %s", a.file, path, fmt.Sprintf(format, args...))
}

// node converts one JSON Schema to a schema node. path is the dotted document
// path of s, used to look up property order.
func (a *adapter) node(s *jsonschema.Schema, path string) (model.Node, error) {
	if s == nil {
		return &model.Any{}, nil
	}

	if s.Ref != "" {
		name := RefName(s.Ref)
		if name == "" {
			return nil, a.errorf(path, "unsupported $ref %q", s.Ref)
		}
		return &model.Reference{Name: name}, nil
	}

	// schemars wraps a described $ref in a single-element allOf.
	if len(s.AllOf) > 0 {
		if len(s.AllOf) > 1 || s.Type != "" || len(s.Types) > 0 || len(s.Properties) > 0 {
			return nil, a.errorf(path, "allOf is only supported with a single subschema")
		}
		return a.node(s.AllOf[0], joinPath(path, "allOf"))
	}

	if s.Const != nil {
		return &model.Enum{Values: []any{*s.Const}}, nil
	}
	if len(s.Enum) > 0 {
		return &model.Enum{Values: slices.Clone(s.Enum)}, nil
	}

	if len(s.AnyOf) > 0 {
		return a.union(s.AnyOf, joinPath(path, "anyOf"))
	}
	if len(s.OneOf) > 0 {
		return a.union(s.OneOf, joinPath(path, "oneOf"))
	}

	types := s.Types
	if s.Type != "" {
		types = []string{s.Type}
	}

	var nullable bool
	nonNull := make([]string, 0, len(types))
	for _, t := range types {
		if t == "null" {
			nullable = true
			continue
		}
		nonNull = append(nonNull, t)
	}

	var node model.Node
	switch len(nonNull) {
	case 0:
		if nullable {
			return &model.Primitive{Type: model.TypeNull}, nil
		}
		return a.untyped(s, path)
	case 1:
		n, err := a.typed(s, nonNull[0], path)
		if err != nil {
			return nil, err
		}
		node = n
	default:
		variants := make([]model.Node, 0, len(nonNull))
		for _, t := range nonNull {
			n, err := a.typed(s, t, path)
			if err != nil {
				return nil, err
			}
			variants = append(variants, n)
		}
		node = &model.Union{Variants: variants}
	}

	if nullable {
		return &model.Nullable{Inner: node}, nil
	}
	return node, nil
}

// union maps anyOf/oneOf. Null alternatives turn into a Nullable wrapper, which
// is how optional values are described (`anyOf: [X, {type: null}]`).
func (a *adapter) union(subs []*jsonschema.Schema, path string) (model.Node, error) {
	var nullable bool
	variants := make([]model.Node, 0, len(subs))
	for _, sub := range subs {
		if isNullSchema(sub) {
			nullable = true
			continue
		}
		n, err := a.node(sub, path)
		if err != nil {
			return nil, err
		}
		variants = append(variants, n)
	}

	var node model.Node
	switch len(variants) {
	case 0:
		return &model.Primitive{Type: model.TypeNull}, nil
	case 1:
		node = variants[0]
	default:
		node = &model.Union{Variants: variants}
	}

	if nullable {
		return &model.Nullable{Inner: node}, nil
	}
	return node, nil
}

func isNullSchema(s *jsonschema.Schema) bool {
	if s == nil || s.Ref != "" {
		return false
	}
	return s.Type == "null" || (len(s.Types) == 1 && s.Types[0] == "null")
}

// untyped handles schemas without a "type" keyword.
func (a *adapter) untyped(s *jsonschema.Schema, path string) (model.Node, error) {
	switch {
	case len(s.Properties) > 0:
		return a.object(s, path)
	case s.AdditionalProperties != nil && !isFalseSchema(s.AdditionalProperties):
		return a.typed(s, "object", path)
	}
	return &model.Any{}, nil
}

func (a *adapter) typed(s *jsonschema.Schema, typ, path string) (model.Node, error) {
	switch typ {
	case "object":
		if len(s.Properties) == 0 && s.AdditionalProperties != nil && !isFalseSchema(s.AdditionalProperties) {
			value, err := a.node(s.AdditionalProperties, joinPath(path, "additionalProperties"))
			if err != nil {
				return nil, err
			}
			return &model.Map{Value: value}, nil
		}
		return a.object(s, path)
	case "array":
		item, err := a.node(s.Items, joinPath(path, "items"))
		if err != nil {
			return nil, err
		}
		return &model.Array{Item: item}, nil
	case "string":
		if s.Format != "" {
			return &model.StringWithFormat{Format: s.Format}, nil
		}
		return &model.Primitive{Type: model.TypeString}, nil
	case "number":
		return &model.Primitive{Type: model.TypeNumber}, nil
	case "integer":
		return &model.Primitive{Type: model.TypeInteger}, nil
	case "boolean":
		return &model.Primitive{Type: model.TypeBoolean}, nil
	case "null":
		return &model.Primitive{Type: model.TypeNull}, nil
	}
	return nil, a.errorf(path, "unsupported type %q", typ)
}

func (a *adapter) object(s *jsonschema.Schema, path string) (model.Node, error) {
	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	obj := &model.Object{Properties: make([]model.Property, 0, len(s.Properties))}
	for _, name := range a.propertyOrder(s, path) {
		n, err := a.node(s.Properties[name], joinPath(path, "properties."+name))
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, model.Property{Name: name, Schema: n, Required: required[name]})
	}
	return obj, nil
}

// propertyOrder returns property names in their source order when known,
// otherwise sorted alphabetically for deterministic output.
func (a *adapter) propertyOrder(s *jsonschema.Schema, path string) []string {
	order, ok := a.keyOrder.Lookup(path)
	if !ok {
		return sortedKeys(s.Properties)
	}

	seen := make(map[string]bool, len(s.Properties))
	result := make([]string, 0, len(s.Properties))
	for _, key := range order {
		if _, exists := s.Properties[key]; exists && !seen[key] {
			result = append(result, key)
			seen[key] = true
		}
	}
	for _, key := range sortedKeys(s.Properties) {
		if !seen[key] {
			result = append(result, key)
		}
	}
	return result
}

// isFalseSchema reports whether s is the boolean schema false, which the
// jsonschema package represents as {"not": {}}.
func isFalseSchema(s *jsonschema.Schema) bool {
	return s.Not != nil && s.Type == "" && s.Ref == "" && len(s.Properties) == 0 &&
		s.Not.Type == "" && s.Not.Ref == "" && len(s.Not.Properties) == 0
}

func sortedKeys[V any](m map[string]V) []string {
	return model.SortedKeys(m)
}
