// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"iter"

	"github.com/google/jsonschema-go/jsonschema"
)

// Traverse returns an iterator over all schemas in the tree, parents first.
// It handles shared subschemas by tracking visited pointers. $refs are not followed.
func Traverse(schema *jsonschema.Schema) iter.Seq[*jsonschema.Schema] {
	return func(yield func(*jsonschema.Schema) bool) {
		visited := make(map[*jsonschema.Schema]struct{})
		traverseWithVisited(schema, yield, visited)
	}
}

func traverseWithVisited(schema *jsonschema.Schema, yield func(*jsonschema.Schema) bool, visited map[*jsonschema.Schema]struct{}) bool {
	if schema == nil {
		return true
	}
	if _, ok := visited[schema]; ok {
		return true
	}
	visited[schema] = struct{}{}

	if !yield(schema) {
		return false
	}

	var children []*jsonschema.Schema

	// Objects
	for _, name := range sortedKeys(schema.Properties) {
		children = append(children, schema.Properties[name])
	}
	for _, name := range sortedKeys(schema.PatternProperties) {
		children = append(children, schema.PatternProperties[name])
	}
	children = append(children, schema.AdditionalProperties)

	// Arrays
	children = append(children, schema.Items)
	children = append(children, schema.PrefixItems...)

	// Logic
	children = append(children, schema.AllOf...)
	children = append(children, schema.AnyOf...)
	children = append(children, schema.OneOf...)
	children = append(children, schema.Not)

	// Conditional
	children = append(children, schema.If, schema.Then, schema.Else)

	// Definitions
	for _, name := range sortedKeys(schema.Defs) {
		children = append(children, schema.Defs[name])
	}
	for _, name := range sortedKeys(schema.Definitions) {
		children = append(children, schema.Definitions[name])
	}

	for _, c := range children {
		if !traverseWithVisited(c, yield, visited) {
			return false
		}
	}
	return true
}
