// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Document is one parsed schema file.
type Document struct {
	Path     string
	Schema   *jsonschema.Schema
	KeyOrder KeyOrder
}

// Parse decodes a schema in the given format and records its property order.
func Parse(data []byte, format Format) (*jsonschema.Schema, KeyOrder, error) {
	var schema jsonschema.Schema

	switch format {
	case YAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, nil, err
		}
		if raw == nil {
			return nil, nil, errors.New("empty schema document")
		}
		asJSON, err := json.Marshal(raw)
		if err != nil {
			return nil, nil, err
		}
		if err := json.Unmarshal(asJSON, &schema); err != nil {
			return nil, nil, err
		}
		keyOrder, err := ExtractKeyOrderFromYAML(data)
		if err != nil {
			return nil, nil, err
		}
		return &schema, keyOrder, nil
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, nil, err
		}
		keyOrder, err := ExtractKeyOrderFromJSON(data)
		if err != nil {
			return nil, nil, err
		}
		return &schema, keyOrder, nil
	}
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	schema, keyOrder, err := Parse(data, FormatFromPath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	return &Document{Path: filePath, Schema: schema, KeyOrder: keyOrder}, nil
}

// LoadAll loads every file and, transitively, every file referenced through an
// external $ref. A ref to a whole file is rewritten to "#/definitions/<title>",
// so the referenced document must carry a title; a ref with a fragment keeps
// the fragment's definition name.
// Documents are returned in load order, each file at most once.
func (l *Loader) LoadAll(paths ...string) ([]*Document, error) {
	var docs []*Document
	loaded := make(map[string]*Document)

	var load func(p string) (*Document, error)
	load = func(p string) (*Document, error) {
		p = path.Clean(p)
		if doc, ok := loaded[p]; ok {
			return doc, nil
		}

		doc, err := l.LoadFile(p)
		if err != nil {
			return nil, err
		}
		loaded[p] = doc
		docs = append(docs, doc)

		for s := range Traverse(doc.Schema) {
			if !IsFileRef(s.Ref) {
				continue
			}
			file, fragment, _ := strings.Cut(s.Ref, "#")
			target, err := load(path.Join(path.Dir(p), file))
			if err != nil {
				return nil, fmt.Errorf("failed to resolve %q in %s: %w", s.Ref, p, err)
			}

			name := target.Schema.Title
			if fragment != "" {
				name = RefName("#" + fragment)
				if name == "" {
					return nil, fmt.Errorf("%s: unsupported $ref %q", p, s.Ref)
				}
			}
			if name == "" {
				return nil, fmt.Errorf("%s: referenced from %s but has no title to name it", target.Path, p)
			}
			s.Ref = "#/definitions/" + name
		}
		return doc, nil
	}

	for _, p := range paths {
		if _, err := load(p); err != nil {
			return nil, err
		}
	}
	return docs, nil
}
