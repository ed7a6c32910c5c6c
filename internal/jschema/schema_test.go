// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema_test

import (
	"testing"

	"github.com/audiocloud/schemars-zod/internal/jschema"
	"github.com/stretchr/testify/assert"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want jschema.Format
	}{
		{"yaml extension", "schema.yaml", jschema.YAML},
		{"yml extension", "schema.yml", jschema.YAML},
		{"json extension", "schema.json", jschema.JSON},
		{"no extension", "schema", jschema.JSON},
		{"path with yaml", "/path/to/schema.yaml", jschema.YAML},
		{"empty string", "", jschema.JSON},
		{"uppercase YAML", "schema.YAML", jschema.JSON}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jschema.FormatFromPath(tt.path))
		})
	}
}

func TestIsFileRef(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{"relative file ref", "./other.json", true},
		{"parent file ref", "../other.yaml", true},
		{"file ref with fragment", "other.json#/definitions/Item", true},
		{"internal ref", "#/definitions/Item", false},
		{"root ref", "#", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jschema.IsFileRef(tt.ref))
		})
	}
}

func TestRefName(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"#/definitions/MyStruct", "MyStruct"},
		{"#/$defs/Address", "Address"},
		{"#/components/schemas/User", "User"},
		{"#/definitions/a~1b", "a/b"},
		{"#/definitions/", ""},
		{"#/properties/name", ""},
		{"#/definitions/Outer/properties/x", ""},
		{"other.json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, jschema.RefName(tt.ref))
		})
	}
}
