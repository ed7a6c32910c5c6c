// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package zod renders validator-expression trees as TypeScript Zod schemas.
package zod

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"text/template"

	"github.com/audiocloud/schemars-zod/internal/translate"
)

//go:embed zod.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "zod.ts.tmpl"))

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// reservedWords cannot name a const in an ES module.
var reservedWords = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"implements": true, "import": true, "in": true, "instanceof": true, "interface": true,
	"let": true, "new": true, "null": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "static": true, "super": true,
	"switch": true, "this": true, "throw": true, "true": true, "try": true,
	"typeof": true, "var": true, "void": true, "while": true, "with": true,
	"yield": true,
}

// Translator translates declarations to Zod schemas with inferred TypeScript types.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "zod"
}

// FileExtension returns the file extension for TypeScript files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

type declData struct {
	Name string
	Expr string
}

// Translate renders one `export const` and one `export type` per declaration,
// in the order given.
func (t *Translator) Translate(decls []translate.Declaration, file translate.FileOptions) ([]byte, error) {
	data := struct {
		Header bool
		Decls  []declData
	}{Header: file.Header}

	for _, d := range decls {
		if !identifierRe.MatchString(d.Name) {
			return nil, fmt.Errorf("definition name %q is not a valid TypeScript identifier", d.Name)
		}
		if reservedWords[d.Name] {
			return nil, fmt.Errorf("definition name %q is a reserved word in TypeScript", d.Name)
		}
		expr, err := Render(d.Expr)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", d.Name, err)
		}
		data.Decls = append(data.Decls, declData{Name: d.Name, Expr: expr})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "zod.ts.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
