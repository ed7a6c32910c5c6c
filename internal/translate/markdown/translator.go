// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders validator-expression trees as markdown reference
// documentation, one section per declaration.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/goccy/go-json"

	"github.com/audiocloud/schemars-zod/internal/translate"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "markdown.md.tmpl"))

// Translator translates declarations to markdown documentation.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

type fieldData struct {
	Name     string
	Type     string
	Required bool
}

type declData struct {
	Name   string
	Type   string
	Fields []fieldData
}

// Translate renders a section per declaration. Object declarations get a
// field table; anything else a single type line.
func (t *Translator) Translate(decls []translate.Declaration, file translate.FileOptions) ([]byte, error) {
	data := struct {
		Header bool
		Decls  []declData
	}{Header: file.Header}

	for _, d := range decls {
		dd := declData{Name: d.Name}
		if obj, ok := d.Expr.(translate.ObjectExpr); ok && len(obj.Fields) > 0 {
			for _, f := range obj.Fields {
				fd := fieldData{Name: escapeCell(f.Name), Required: true}
				value := f.Value
				if opt, ok := value.(translate.OptionalExpr); ok {
					fd.Required = false
					value = opt.Inner
				}
				typ, err := describe(value)
				if err != nil {
					return nil, fmt.Errorf("failed to describe %s.%s: %w", d.Name, f.Name, err)
				}
				fd.Type = escapeCell(typ)
				dd.Fields = append(dd.Fields, fd)
			}
		} else {
			typ, err := describe(d.Expr)
			if err != nil {
				return nil, fmt.Errorf("failed to describe %s: %w", d.Name, err)
			}
			dd.Type = typ
		}
		data.Decls = append(data.Decls, dd)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

var leafNames = map[translate.LeafKind]string{
	translate.LeafString:  "string",
	translate.LeafNumber:  "number",
	translate.LeafInteger: "integer",
	translate.LeafBoolean: "boolean",
	translate.LeafNull:    "null",
	translate.LeafDate:    "date-time",
	translate.LeafUnknown: "any",
}

// describe returns a short human-readable type. References link to the
// section of their declaration.
func describe(e translate.Expr) (string, error) {
	switch v := e.(type) {
	case translate.Leaf:
		name, ok := leafNames[v.Kind]
		if !ok {
			return "", fmt.Errorf("unknown leaf kind %d", v.Kind)
		}
		return name, nil
	case translate.ObjectExpr:
		return "object", nil
	case translate.ArrayExpr:
		item, err := describe(v.Item)
		if err != nil {
			return "", err
		}
		return "array of " + item, nil
	case translate.RecordExpr:
		value, err := describe(v.Value)
		if err != nil {
			return "", err
		}
		return "map of " + value, nil
	case translate.LiteralUnionExpr:
		if len(v.Values) == 0 {
			return "never", nil
		}
		parts := make([]string, 0, len(v.Values))
		for _, val := range v.Values {
			b, err := json.MarshalNoEscape(val)
			if err != nil {
				return "", fmt.Errorf("failed to encode literal %v: %w", val, err)
			}
			parts = append(parts, "`"+string(b)+"`")
		}
		return strings.Join(parts, " | "), nil
	case translate.UnionExpr:
		if len(v.Variants) == 0 {
			return "never", nil
		}
		parts := make([]string, 0, len(v.Variants))
		for _, variant := range v.Variants {
			p, err := describe(variant)
			if err != nil {
				return "", err
			}
			parts = append(parts, p)
		}
		return strings.Join(parts, " | "), nil
	case translate.NullableExpr:
		inner, err := describe(v.Inner)
		if err != nil {
			return "", err
		}
		return inner + " | null", nil
	case translate.OptionalExpr:
		return describe(v.Inner)
	case translate.RefExpr:
		return link(v.Name), nil
	case translate.LazyExpr:
		return link(v.Ref.Name), nil
	}
	return "", fmt.Errorf("unsupported expression %T", e)
}

func link(name string) string {
	return fmt.Sprintf("[%s](#%s)", name, strings.ToLower(name))
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
