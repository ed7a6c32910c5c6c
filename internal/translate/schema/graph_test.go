// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(name string) Node { return &Reference{Name: name} }

func objectOf(fields map[string]Node) Node {
	obj := &Object{}
	for _, name := range SortedKeys(fields) {
		obj.Properties = append(obj.Properties, Property{Name: name, Schema: fields[name]})
	}
	return obj
}

func buildTable(t *testing.T, defs map[string]Node) *Table {
	t.Helper()
	table, err := Merge([]Root{{Definitions: defs}})
	require.NoError(t, err)
	return table
}

func TestCollectDependencies_NestedReferences(t *testing.T) {
	body := objectOf(map[string]Node{
		"list":   &Array{Item: ref("B")},
		"dict":   &Map{Value: ref("C")},
		"either": &Union{Variants: []Node{ref("D"), &Primitive{Type: TypeString}}},
		"maybe":  &Nullable{Inner: ref("B")},
	})

	assert.Equal(t, []string{"B", "C", "D"}, CollectDependencies(body))
}

func TestBuildGraph_Acyclic(t *testing.T) {
	g := BuildGraph(buildTable(t, map[string]Node{
		"Segment": objectOf(map[string]Node{"start": ref("Point"), "end": ref("Point")}),
		"Point":   objectOf(map[string]Node{"x": &Primitive{Type: TypeNumber}}),
	}))

	assert.Empty(t, g.Cyclic())
	assert.Equal(t, []string{"Point"}, g.Dependencies("Segment"))
	assert.Equal(t, []string{"Point", "Segment"}, g.Order())
}

func TestBuildGraph_SelfReference(t *testing.T) {
	g := BuildGraph(buildTable(t, map[string]Node{
		"Tree": objectOf(map[string]Node{"children": &Array{Item: ref("Tree")}}),
		"Leaf": objectOf(map[string]Node{"value": &Primitive{Type: TypeString}}),
	}))

	assert.True(t, g.IsCyclic("Tree"))
	assert.False(t, g.IsCyclic("Leaf"))
}

func TestBuildGraph_TwoNodeCycle(t *testing.T) {
	g := BuildGraph(buildTable(t, map[string]Node{
		"A": objectOf(map[string]Node{"next": ref("B")}),
		"B": objectOf(map[string]Node{"next": ref("A")}),
		"C": objectOf(map[string]Node{"a": ref("A")}),
	}))

	assert.Equal(t, map[string]bool{"A": true, "B": true}, g.Cyclic())
	assert.False(t, g.IsCyclic("C"))
	assert.Equal(t, []string{"A", "B", "C"}, g.Order())
}

func TestBuildGraph_LongCycle(t *testing.T) {
	g := BuildGraph(buildTable(t, map[string]Node{
		"A": objectOf(map[string]Node{"b": ref("B")}),
		"B": objectOf(map[string]Node{"c": &Array{Item: ref("C")}}),
		"C": objectOf(map[string]Node{"a": &Nullable{Inner: ref("A")}}),
		"D": objectOf(map[string]Node{}),
	}))

	assert.Equal(t, map[string]bool{"A": true, "B": true, "C": true}, g.Cyclic())
}

func TestBuildGraph_OrderPutsDependenciesFirst(t *testing.T) {
	g := BuildGraph(buildTable(t, map[string]Node{
		"A": objectOf(map[string]Node{"z": ref("Z")}),
		"M": objectOf(map[string]Node{}),
		"Z": objectOf(map[string]Node{"m": ref("M")}),
	}))

	assert.Equal(t, []string{"M", "Z", "A"}, g.Order())

	var names []string
	for name, def := range g.Definitions() {
		assert.Equal(t, name, def.Name)
		names = append(names, name)
	}
	assert.Equal(t, g.Order(), names)
}

func TestBuildGraph_MissingTargetIsKeptAsDependency(t *testing.T) {
	g := BuildGraph(buildTable(t, map[string]Node{
		"A": objectOf(map[string]Node{"ghost": ref("Ghost")}),
	}))

	assert.Equal(t, []string{"Ghost"}, g.Dependencies("A"))
	assert.Equal(t, []string{"A"}, g.Order())
	assert.False(t, g.IsCyclic("A"))
}
