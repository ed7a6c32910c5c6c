// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

import (
	"fmt"
	"slices"
	"strings"

	"github.com/audiocloud/schemars-zod/internal/translate"
	"github.com/goccy/go-json"
)

var leaves = map[translate.LeafKind]string{
	translate.LeafString:  "z.string()",
	translate.LeafNumber:  "z.number()",
	translate.LeafInteger: "z.number().int()",
	translate.LeafBoolean: "z.boolean()",
	translate.LeafNull:    "z.null()",
	translate.LeafDate:    "z.coerce.date()",
	translate.LeafUnknown: "z.unknown()",
}

// Render returns the Zod source text for a single expression.
func Render(e translate.Expr) (string, error) {
	var sb strings.Builder
	if err := render(&sb, e); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func render(sb *strings.Builder, e translate.Expr) error {
	switch v := e.(type) {
	case translate.Leaf:
		leaf, ok := leaves[v.Kind]
		if !ok {
			return fmt.Errorf("unknown leaf kind %d", v.Kind)
		}
		sb.WriteString(leaf)

	case translate.ObjectExpr:
		if len(v.Fields) == 0 {
			sb.WriteString("z.object({})")
			return nil
		}
		sb.WriteString("z.object({ ")
		fields := slices.SortedFunc(slices.Values(v.Fields), func(a, b translate.Field) int {
			return strings.Compare(a.Name, b.Name)
		})
		for i, f := range fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			key, err := objectKey(f.Name)
			if err != nil {
				return err
			}
			sb.WriteString(key)
			sb.WriteString(": ")
			if err := render(sb, f.Value); err != nil {
				return err
			}
		}
		sb.WriteString(" })")

	case translate.ArrayExpr:
		sb.WriteString("z.array(")
		if err := render(sb, v.Item); err != nil {
			return err
		}
		sb.WriteString(")")

	case translate.RecordExpr:
		sb.WriteString("z.record(z.string(), ")
		if err := render(sb, v.Value); err != nil {
			return err
		}
		sb.WriteString(")")

	case translate.LiteralUnionExpr:
		return renderLiterals(sb, v.Values)

	case translate.UnionExpr:
		switch len(v.Variants) {
		case 0:
			sb.WriteString("z.never()")
		case 1:
			return render(sb, v.Variants[0])
		default:
			sb.WriteString("z.union([")
			for i, variant := range v.Variants {
				if i > 0 {
					sb.WriteString(", ")
				}
				if err := render(sb, variant); err != nil {
					return err
				}
			}
			sb.WriteString("])")
		}

	case translate.NullableExpr:
		if err := render(sb, v.Inner); err != nil {
			return err
		}
		sb.WriteString(".nullable()")

	case translate.OptionalExpr:
		if err := render(sb, v.Inner); err != nil {
			return err
		}
		sb.WriteString(".optional()")

	case translate.RefExpr:
		sb.WriteString(v.Name)

	case translate.LazyExpr:
		sb.WriteString("z.lazy(() => ")
		sb.WriteString(v.Ref.Name)
		sb.WriteString(")")

	default:
		return fmt.Errorf("unsupported expression %T", e)
	}

	return nil
}

// renderLiterals emits z.enum for two or more strings, z.literal for a single
// value and a union of literals otherwise.
func renderLiterals(sb *strings.Builder, values []any) error {
	if len(values) == 0 {
		sb.WriteString("z.never()")
		return nil
	}

	allStrings := true
	for _, v := range values {
		if _, ok := v.(string); !ok {
			allStrings = false
			break
		}
	}

	if allStrings && len(values) > 1 {
		sb.WriteString("z.enum([")
		for i, v := range values {
			if i > 0 {
				sb.WriteString(", ")
			}
			lit, err := literal(v)
			if err != nil {
				return err
			}
			sb.WriteString(lit)
		}
		sb.WriteString("])")
		return nil
	}

	if len(values) == 1 {
		return renderLiteral(sb, values[0])
	}

	sb.WriteString("z.union([")
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		if err := renderLiteral(sb, v); err != nil {
			return err
		}
	}
	sb.WriteString("])")
	return nil
}

func renderLiteral(sb *strings.Builder, v any) error {
	if v == nil {
		sb.WriteString("z.null()")
		return nil
	}
	lit, err := literal(v)
	if err != nil {
		return err
	}
	sb.WriteString("z.literal(")
	sb.WriteString(lit)
	sb.WriteString(")")
	return nil
}

func literal(v any) (string, error) {
	switch v.(type) {
	case string, bool, float64, float32, int, int64, int32, uint, uint64, uint32:
	default:
		return "", fmt.Errorf("unsupported literal %v (%T)", v, v)
	}
	b, err := json.MarshalNoEscape(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode literal %v: %w", v, err)
	}
	return string(b), nil
}

// objectKey returns name as a bare key when it is a valid identifier and as a
// quoted string otherwise.
func objectKey(name string) (string, error) {
	if identifierRe.MatchString(name) {
		return name, nil
	}
	b, err := json.MarshalNoEscape(name)
	if err != nil {
		return "", fmt.Errorf("failed to encode field name %q: %w", name, err)
	}
	return string(b), nil
}
