// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"iter"
	"sort"
)

// Graph is the dependency graph between the definitions of a Table.
// An edge A -> B exists iff A's body contains a Reference to B.
type Graph struct {
	table  *Table
	deps   map[string][]string // sorted, deduplicated direct dependencies
	cyclic map[string]bool
	order  []string
}

// BuildGraph computes dependencies, cyclic names and the emission order for a table.
func BuildGraph(table *Table) *Graph {
	g := &Graph{
		table:  table,
		deps:   make(map[string][]string, table.Len()),
		cyclic: make(map[string]bool),
	}

	for _, name := range table.Names() {
		def, _ := table.Get(name)
		g.deps[name] = CollectDependencies(def.Body)
	}

	components := g.components()
	for _, members := range components {
		if len(members) > 1 || g.dependsOn(members[0], members[0]) {
			for _, m := range members {
				g.cyclic[m] = true
			}
		}
	}
	g.order = g.topoOrder(components)

	return g
}

// CollectDependencies returns the names of all definitions directly referenced by n,
// sorted and deduplicated. It does not follow references into their targets.
func CollectDependencies(n Node) []string {
	seen := make(map[string]bool)
	Walk(n, func(n Node) bool {
		if ref, ok := n.(*Reference); ok {
			seen[ref.Name] = true
		}
		return true
	})
	return SortedKeys(seen)
}

// Dependencies returns the direct dependencies of name, including names that
// are not present in the table.
func (g *Graph) Dependencies(name string) []string {
	return g.deps[name]
}

// IsCyclic reports whether name participates in at least one cycle.
func (g *Graph) IsCyclic(name string) bool {
	return g.cyclic[name]
}

// Cyclic returns the set of names that participate in a cycle.
func (g *Graph) Cyclic() map[string]bool {
	out := make(map[string]bool, len(g.cyclic))
	for name := range g.cyclic {
		out[name] = true
	}
	return out
}

// Order returns the definition names with dependencies before dependents.
// Ties, and members of the same cycle, are ordered lexicographically.
func (g *Graph) Order() []string {
	return append([]string(nil), g.order...)
}

// Definitions yields the definitions in emission order.
func (g *Graph) Definitions() iter.Seq2[string, Definition] {
	return func(yield func(string, Definition) bool) {
		for _, name := range g.order {
			def, _ := g.table.Get(name)
			if !yield(name, def) {
				return
			}
		}
	}
}

func (g *Graph) dependsOn(from, to string) bool {
	deps := g.deps[from]
	i := sort.SearchStrings(deps, to)
	return i < len(deps) && deps[i] == to
}

// components returns the strongly connected components (Tarjan), each sorted by name.
func (g *Graph) components() [][]string {
	var (
		index   = make(map[string]int)
		lowlink = make(map[string]int)
		onStack = make(map[string]bool)
		stack   []string
		next    int
		result  [][]string
	)

	var connect func(v string)
	connect = func(v string) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.deps[v] {
			if !g.table.Has(w) {
				continue
			}
			if _, visited := index[w]; !visited {
				connect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], index[w])
			}
		}

		if lowlink[v] == index[v] {
			var members []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				members = append(members, w)
				if w == v {
					break
				}
			}
			sort.Strings(members)
			result = append(result, members)
		}
	}

	for _, name := range g.table.Names() {
		if _, visited := index[name]; !visited {
			connect(name)
		}
	}
	return result
}

// topoOrder orders the condensation of the graph so that every component comes
// after the components it depends on, breaking ties by the component's first name.
func (g *Graph) topoOrder(components [][]string) []string {
	compOf := make(map[string]int)
	for i, members := range components {
		for _, m := range members {
			compOf[m] = i
		}
	}

	pending := make([]int, len(components))
	dependents := make([][]int, len(components))
	for i, members := range components {
		seen := make(map[int]bool)
		for _, m := range members {
			for _, dep := range g.deps[m] {
				j, ok := compOf[dep]
				if !ok || j == i || seen[j] {
					continue
				}
				seen[j] = true
				pending[i]++
				dependents[j] = append(dependents[j], i)
			}
		}
	}

	var ready []int
	for i := range components {
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]string, 0, len(compOf))
	for len(ready) > 0 {
		sort.Slice(ready, func(a, b int) bool {
			return components[ready[a]][0] < components[ready[b]][0]
		})
		c := ready[0]
		ready = ready[1:]
		order = append(order, components[c]...)

		for _, d := range dependents[c] {
			pending[d]--
			if pending[d] == 0 {
				ready = append(ready, d)
			}
		}
	}
	return order
}
