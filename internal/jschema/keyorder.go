// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyOrder maps a dotted document path (e.g. "properties", "definitions.Address.properties")
// to the property names of that "properties" object in source order.
type KeyOrder map[string][]string

// Lookup returns the ordered keys recorded for the "properties" object below path.
func (k KeyOrder) Lookup(path string) ([]string, bool) {
	order, ok := k[joinPath(path, "properties")]
	return order, ok
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func isPropertiesPath(path string) bool {
	return path == "properties" || strings.HasSuffix(path, ".properties")
}

// ExtractKeyOrderFromJSON parses raw JSON and extracts the order of keys for all "properties" objects.
func ExtractKeyOrderFromJSON(data []byte) (KeyOrder, error) {
	result := make(KeyOrder)

	var extract func(dec *json.Decoder, path string) error
	extract = func(dec *json.Decoder, path string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		t, ok := token.(json.Delim)
		if !ok {
			return nil
		}

		switch t {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyToken.(string)
				if !ok {
					return fmt.Errorf("unexpected object key %v", keyToken)
				}
				keys = append(keys, key)
				if err := extract(dec, joinPath(path, key)); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
			if isPropertiesPath(path) {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				if err := extract(dec, path); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
		}
		return nil
	}

	if err := extract(json.NewDecoder(bytes.NewReader(data)), ""); err != nil {
		return nil, fmt.Errorf("failed to extract key order: %w", err)
	}
	return result, nil
}

// ExtractKeyOrderFromYAML is the YAML counterpart of ExtractKeyOrderFromJSON.
func ExtractKeyOrderFromYAML(data []byte) (KeyOrder, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to extract key order: %w", err)
	}

	result := make(KeyOrder)

	var extract func(n *yaml.Node, path string)
	extract = func(n *yaml.Node, path string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				extract(c, path)
			}
		case yaml.AliasNode:
			if n.Alias != nil {
				extract(n.Alias, path)
			}
		case yaml.MappingNode:
			keys := make([]string, 0, len(n.Content)/2)
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				keys = append(keys, key)
				extract(n.Content[i+1], joinPath(path, key))
			}
			if isPropertiesPath(path) {
				result[path] = keys
			}
		case yaml.SequenceNode:
			for _, c := range n.Content {
				extract(c, path)
			}
		}
	}
	extract(&doc, "")

	return result, nil
}
