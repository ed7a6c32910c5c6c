// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

import (
	"strings"
	"testing"

	"github.com/audiocloud/schemars-zod/internal/translate"
	"github.com/audiocloud/schemars-zod/internal/translate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func number() schema.Node      { return &schema.Primitive{Type: schema.TypeNumber} }
func str() schema.Node         { return &schema.Primitive{Type: schema.TypeString} }
func ref(n string) schema.Node { return &schema.Reference{Name: n} }

func required(name string, n schema.Node) schema.Property {
	return schema.Property{Name: name, Schema: n, Required: true}
}

func optional(name string, n schema.Node) schema.Property {
	return schema.Property{Name: name, Schema: n}
}

func object(props ...schema.Property) schema.Node {
	return &schema.Object{Properties: props}
}

func convert(t *testing.T, roots ...schema.Root) string {
	t.Helper()
	out, err := translate.Convert(roots, &Translator{}, translate.FileOptions{})
	require.NoError(t, err)
	return string(out)
}

func TestTranslate_PointAndSegment(t *testing.T) {
	out := convert(t,
		schema.Root{Name: "Point", Body: object(required("x", number()), required("y", number()))},
		schema.Root{Name: "Segment", Body: object(required("start", ref("Point")), required("end", ref("Point")))},
	)

	want := `export const Point = z.object({ x: z.number(), y: z.number() });
export type Point = z.infer<typeof Point>;

export const Segment = z.object({ end: Point, start: Point });
export type Segment = z.infer<typeof Segment>;
`
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "z.lazy")
}

func TestTranslate_TwoNodeCycle(t *testing.T) {
	out := convert(t,
		schema.Root{Name: "A", Body: object(optional("next", ref("B")))},
		schema.Root{Name: "B", Body: object(optional("next", ref("A")))},
	)

	assert.Contains(t, out, "export const A = z.object({ next: z.lazy(() => B).optional() });")
	assert.Contains(t, out, "export const B = z.object({ next: z.lazy(() => A).optional() });")
	assertBalanced(t, out)
}

func TestTranslate_SelfReference(t *testing.T) {
	out := convert(t, schema.Root{
		Name: "Tree",
		Body: object(
			required("value", str()),
			required("children", &schema.Array{Item: ref("Tree")}),
			optional("parent", &schema.Nullable{Inner: ref("Tree")}),
		),
	})

	assert.Contains(t, out, "children: z.array(z.lazy(() => Tree))")
	assert.Contains(t, out, "parent: z.lazy(() => Tree).nullable().optional()")
	assertBalanced(t, out)
}

func TestTranslate_DependencyOfCycleIsLazyOnlyForCyclicTargets(t *testing.T) {
	out := convert(t,
		schema.Root{Name: "Node", Body: object(optional("next", ref("Node")), required("meta", ref("Meta")))},
		schema.Root{Name: "Meta", Body: object(required("id", str()))},
	)

	assert.Contains(t, out, "meta: Meta")
	assert.Contains(t, out, "next: z.lazy(() => Node).optional()")
	assert.Less(t, strings.Index(out, "export const Meta"), strings.Index(out, "export const Node"))
}

func TestTranslate_Modifiers(t *testing.T) {
	out := convert(t, schema.Root{
		Name: "Profile",
		Body: object(
			required("a", str()),
			optional("b", str()),
			required("c", &schema.Nullable{Inner: str()}),
			optional("d", &schema.Nullable{Inner: str()}),
		),
	})

	assert.Contains(t, out, "a: z.string(), ")
	assert.Contains(t, out, "b: z.string().optional(), ")
	assert.Contains(t, out, "c: z.string().nullable(), ")
	assert.Contains(t, out, "d: z.string().nullable().optional() })")
}

func TestTranslate_NamingPolicy(t *testing.T) {
	out := convert(t,
		schema.Root{
			Name:   "MyOtherStruct",
			Body:   object(required("more_more", &schema.Map{Value: ref("MyStruct")}), required("time", &schema.StringWithFormat{Format: "date-time"})),
			Naming: schema.CamelCase,
		},
		schema.Root{
			Name: "MyStruct",
			Body: object(required("field_a", str()), required("field-b", &schema.Primitive{Type: schema.TypeInteger})),
		},
	)

	assert.Contains(t, out, "export const MyOtherStruct = z.object({ moreMore: z.record(z.string(), MyStruct), time: z.coerce.date() });")
	assert.Contains(t, out, `export const MyStruct = z.object({ "field-b": z.number().int(), field_a: z.string() });`)
}

func TestTranslate_DeterministicUnderPermutation(t *testing.T) {
	roots := []schema.Root{
		{Name: "C", Body: object(required("a", ref("A")), optional("b", ref("B")))},
		{Name: "A", Body: object(required("z", str()), required("m", number()), optional("c", ref("C")))},
		{Name: "B", Body: &schema.Enum{Values: []any{"x", "y"}}},
	}
	first := convert(t, roots...)
	again := convert(t, roots...)
	reversed := convert(t, roots[2], roots[1], roots[0])

	assert.Equal(t, first, again)
	assert.Equal(t, first, reversed)
}

func TestTranslate_Header(t *testing.T) {
	out, err := translate.Convert(
		[]schema.Root{{Name: "Flag", Body: &schema.Primitive{Type: schema.TypeBoolean}}},
		&Translator{},
		translate.FileOptions{Header: true},
	)
	require.NoError(t, err)

	assert.Equal(t, `import { z } from "zod";

export const Flag = z.boolean();
export type Flag = z.infer<typeof Flag>;
`, string(out))
}

func TestTranslate_Errors(t *testing.T) {
	t.Run("unresolved reference", func(t *testing.T) {
		_, err := translate.Convert(
			[]schema.Root{{Name: "A", Body: object(required("b", ref("Missing")))}},
			&Translator{}, translate.FileOptions{},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrUnresolvedReference)

		var unresolved *schema.UnresolvedReferenceError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, "Missing", unresolved.Name)
		assert.Equal(t, "A", unresolved.From)
	})

	t.Run("name conflict", func(t *testing.T) {
		_, err := translate.Convert(
			[]schema.Root{
				{Name: "A", Body: str()},
				{Name: "A", Body: number()},
			},
			&Translator{}, translate.FileOptions{},
		)
		assert.ErrorIs(t, err, schema.ErrNameConflict)
	})

	t.Run("invalid identifier", func(t *testing.T) {
		_, err := translate.Convert(
			[]schema.Root{{Name: "Wrapper<T>", Body: str()}},
			&Translator{}, translate.FileOptions{},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid TypeScript identifier")
	})

	for _, name := range []string{"default", "class", "enum", "function", "delete"} {
		t.Run("reserved word "+name, func(t *testing.T) {
			_, err := translate.Convert(
				[]schema.Root{{Name: name, Body: object(required("a", str()))}},
				&Translator{}, translate.FileOptions{},
			)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "is a reserved word")
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		expr translate.Expr
		want string
	}{
		{"string", translate.Leaf{Kind: translate.LeafString}, "z.string()"},
		{"integer", translate.Leaf{Kind: translate.LeafInteger}, "z.number().int()"},
		{"null", translate.Leaf{Kind: translate.LeafNull}, "z.null()"},
		{"unknown", translate.Leaf{Kind: translate.LeafUnknown}, "z.unknown()"},
		{"empty object", translate.ObjectExpr{}, "z.object({})"},
		{"string enum", translate.LiteralUnionExpr{Values: []any{"b", "a"}}, `z.enum(["b", "a"])`},
		{"single literal", translate.LiteralUnionExpr{Values: []any{"only"}}, `z.literal("only")`},
		{"mixed literals", translate.LiteralUnionExpr{Values: []any{1.0, "a", true, nil}}, `z.union([z.literal(1), z.literal("a"), z.literal(true), z.null()])`},
		{"union", translate.UnionExpr{Variants: []translate.Expr{translate.Leaf{Kind: translate.LeafString}, translate.Leaf{Kind: translate.LeafNumber}}}, "z.union([z.string(), z.number()])"},
		{"single variant union", translate.UnionExpr{Variants: []translate.Expr{translate.Leaf{Kind: translate.LeafBoolean}}}, "z.boolean()"},
		{"record", translate.RecordExpr{Value: translate.RefExpr{Name: "X"}}, "z.record(z.string(), X)"},
		{"lazy", translate.LazyExpr{Ref: translate.RefExpr{Name: "X"}}, "z.lazy(() => X)"},
		{"fields sorted by name", translate.ObjectExpr{Fields: []translate.Field{
			{Name: "zeta", Value: translate.Leaf{Kind: translate.LeafString}},
			{Name: "alpha", Value: translate.Leaf{Kind: translate.LeafNumber}},
		}}, "z.object({ alpha: z.number(), zeta: z.string() })"},
		{"quoted key", translate.ObjectExpr{Fields: []translate.Field{{Name: "a b", Value: translate.Leaf{Kind: translate.LeafString}}}}, `z.object({ "a b": z.string() })`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_UnsupportedLiteral(t *testing.T) {
	_, err := Render(translate.LiteralUnionExpr{Values: []any{"a", []any{1}}})
	assert.Error(t, err)
}

// assertBalanced checks that every opened call, array and object literal is closed.
func assertBalanced(t *testing.T, out string) {
	t.Helper()
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	var stack []rune
	for _, r := range out {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			require.NotEmpty(t, stack, "unbalanced %q in %s", r, out)
			require.Equal(t, pairs[r], stack[len(stack)-1], "mismatched %q in %s", r, out)
			stack = stack[:len(stack)-1]
		}
	}
	assert.Empty(t, stack, "unclosed brackets in %s", out)
}
