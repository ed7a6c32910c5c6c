// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// NamingPolicy maps a declared field name to the name emitted in generated code.
// A policy is attached to a whole definition and applied to every property of it.
type NamingPolicy struct {
	name  string
	apply func(string) string
}

// NewNamingPolicy creates a policy identified by name. Two policies with the same
// name are treated as the same policy when definitions are merged.
func NewNamingPolicy(name string, fn func(string) string) NamingPolicy {
	return NamingPolicy{name: name, apply: fn}
}

// Name returns the policy identifier, e.g. "camelCase".
func (p NamingPolicy) Name() string {
	if p.name == "" {
		return Identity.name
	}
	return p.name
}

// Apply renames a field. The zero NamingPolicy is the identity.
func (p NamingPolicy) Apply(field string) string {
	if p.apply == nil {
		return field
	}
	return p.apply(field)
}

var (
	Identity           = NewNamingPolicy("identity", func(s string) string { return s })
	CamelCase          = NewNamingPolicy("camelCase", ToCamelCase)
	PascalCase         = NewNamingPolicy("PascalCase", ToPascalCase)
	SnakeCase          = NewNamingPolicy("snake_case", ToSnakeCase)
	KebabCase          = NewNamingPolicy("kebab-case", ToKebabCase)
	ScreamingSnakeCase = NewNamingPolicy("SCREAMING_SNAKE_CASE", func(s string) string { return strings.ToUpper(ToSnakeCase(s)) })
	LowerCase          = NewNamingPolicy("lowercase", strings.ToLower)
	UpperCase          = NewNamingPolicy("UPPERCASE", strings.ToUpper)
)

var namingPolicies = map[string]NamingPolicy{}

func init() {
	for _, p := range []NamingPolicy{Identity, CamelCase, PascalCase, SnakeCase, KebabCase, ScreamingSnakeCase, LowerCase, UpperCase} {
		namingPolicies[p.name] = p
	}
}

// LookupNamingPolicy returns the built-in policy with the given name.
// An empty name resolves to Identity.
func LookupNamingPolicy(name string) (NamingPolicy, error) {
	if name == "" {
		return Identity, nil
	}
	p, ok := namingPolicies[name]
	if !ok {
		return NamingPolicy{}, fmt.Errorf("unknown naming policy %q (available: %s)", name, strings.Join(NamingPolicies(), ", "))
	}
	return p, nil
}

// NamingPolicies returns the names of all built-in policies, sorted.
func NamingPolicies() []string {
	return SortedKeys(namingPolicies)
}

// splitWords breaks an identifier into words on separators and case boundaries,
// keeping acronyms together ("HTTPServer" -> "HTTP", "Server").
func splitWords(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := current[len(current)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}

func capitalize(word string) string {
	lower := strings.ToLower(word)
	for i, r := range lower {
		return string(unicode.ToUpper(r)) + lower[i+len(string(r)):]
	}
	return lower
}

// ToCamelCase converts snake_case, kebab-case or PascalCase to camelCase.
func ToCamelCase(s string) string {
	words := splitWords(s)
	var sb strings.Builder
	for i, w := range words {
		if i == 0 {
			sb.WriteString(strings.ToLower(w))
			continue
		}
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// ToPascalCase converts an identifier to PascalCase.
func ToPascalCase(s string) string {
	var sb strings.Builder
	for _, w := range splitWords(s) {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// ToSnakeCase converts an identifier to snake_case.
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// ToKebabCase converts an identifier to kebab-case.
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}

// SortedKeys returns map keys sorted alphabetically.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
