// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema loads JSON Schema documents (JSON or YAML) and adapts them to
// the normalized schema model used by the translators.
package jschema

import (
	"strings"
)

// Format is the serialization format of a schema file.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFromPath picks the format from the file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#")
}

// RefName extracts the definition name from an internal $ref.
// Supports $defs, definitions, and components/schemas (OpenAPI) formats.
// Returns empty string if the ref format is not recognized.
func RefName(ref string) string {
	path, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return ""
	}

	for _, prefix := range []string{"$defs/", "definitions/", "components/schemas/"} {
		if name, ok := strings.CutPrefix(path, prefix); ok && name != "" && !strings.Contains(name, "/") {
			return unescapePointer(name)
		}
	}
	return ""
}

// unescapePointer decodes the JSON Pointer escapes ~1 and ~0.
func unescapePointer(s string) string {
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(s)
}
