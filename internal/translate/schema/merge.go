// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

// Root is one top-level schema as produced by a schema loader. A root may be
// unnamed, in which case only its nested definitions are registered.
type Root struct {
	Name        string
	Body        Node
	Definitions map[string]Node
	Naming      NamingPolicy
	// DefinitionNaming overrides Naming for individual nested definitions.
	DefinitionNaming map[string]NamingPolicy
}

// Definition is a named schema body together with the naming policy for its fields.
type Definition struct {
	Name   string
	Body   Node
	Naming NamingPolicy
}

// Table holds named definitions keyed by name.
type Table struct {
	defs map[string]Definition
}

// NewTable returns an empty definitions table.
func NewTable() *Table {
	return &Table{defs: make(map[string]Definition)}
}

// Add registers a definition. Adding an identical definition twice is a no-op;
// adding a different definition under an existing name returns a *NameConflictError.
func (t *Table) Add(def Definition) error {
	existing, ok := t.defs[def.Name]
	if !ok {
		t.defs[def.Name] = def
		return nil
	}
	if existing.Naming.Name() == def.Naming.Name() && Equal(existing.Body, def.Body) {
		return nil
	}
	return &NameConflictError{Name: def.Name, First: existing, Second: def}
}

// Get returns the definition registered under name.
func (t *Table) Get(name string) (Definition, bool) {
	def, ok := t.defs[name]
	return def, ok
}

// Has reports whether name is a registered definition.
func (t *Table) Has(name string) bool {
	_, ok := t.defs[name]
	return ok
}

// Names returns the registered names, sorted.
func (t *Table) Names() []string {
	return SortedKeys(t.defs)
}

// Len returns the number of definitions.
func (t *Table) Len() int {
	return len(t.defs)
}

// Merge flattens the nested definitions of every root, and every named root
// itself, into a single definitions table.
func Merge(roots []Root) (*Table, error) {
	table := NewTable()
	for _, root := range roots {
		for _, name := range SortedKeys(root.Definitions) {
			naming := root.Naming
			if override, ok := root.DefinitionNaming[name]; ok {
				naming = override
			}
			if err := table.Add(Definition{Name: name, Body: root.Definitions[name], Naming: naming}); err != nil {
				return nil, err
			}
		}

		if root.Name == "" || root.Body == nil {
			continue
		}
		if err := table.Add(Definition{Name: root.Name, Body: root.Body, Naming: root.Naming}); err != nil {
			return nil, err
		}
	}
	return table, nil
}
