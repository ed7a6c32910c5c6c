// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "schemazod.yaml")

	cfg := Default()
	cfg.Inputs = []string{"schemas/a.json"}
	cfg.Schemas = map[string]SchemaConfig{"A": {Naming: "PascalCase"}}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, []string{"schemas/my_struct.json", "schemas/my_other_struct.json"}, cfg.Inputs)
	assert.Equal(t, "src/schemas.ts", cfg.Output)
	assert.Equal(t, "camelCase", cfg.Naming)
	assert.Equal(t, "snake_case", cfg.Schemas["MyStruct"].Naming)
	assert.False(t, cfg.EmitHeader())
	assert.False(t, cfg.WritesStdout())
	require.NoError(t, cfg.Validate())
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemazod.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "unknown naming",
			cfg:     Config{Version: 1, Naming: "Train-Case"},
			wantErr: "naming: unknown naming policy",
		},
		{
			name:    "unknown schema naming",
			cfg:     Config{Version: 1, Schemas: map[string]SchemaConfig{"A": {Naming: "nope"}}},
			wantErr: "schemas.A.naming",
		},
		{
			name:    "empty input",
			cfg:     Config{Version: 1, Inputs: []string{"a.json", ""}},
			wantErr: "inputs[1]: empty path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := &Config{Version: 1}
	assert.True(t, cfg.EmitHeader())
	assert.True(t, cfg.WritesStdout())

	cfg.Resolve()
	assert.Equal(t, Default(), cfg)

	off := false
	cfg = &Config{Version: 1, Output: "out.ts", Naming: "snake_case", Header: &off}
	cfg.Resolve()
	assert.Equal(t, "out.ts", cfg.Output)
	assert.Equal(t, "snake_case", cfg.Naming)
	assert.False(t, cfg.EmitHeader())
}

func TestConfig_NamingFor(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Naming:  "camelCase",
		Schemas: map[string]SchemaConfig{
			"Legacy": {Naming: "SCREAMING_SNAKE_CASE"},
			"Plain":  {},
		},
	}

	tests := []struct {
		schema string
		want   string
	}{
		{"Legacy", "SCREAMING_SNAKE_CASE"},
		{"Plain", "camelCase"},
		{"Other", "camelCase"},
	}

	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			policy, err := cfg.NamingFor(tt.schema)
			require.NoError(t, err)
			assert.Equal(t, tt.want, policy.Name())
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "schemazod.yaml")

	cfg := Default()
	cfg.Inputs = []string{"schema.json"}
	require.NoError(t, cfg.Save(cfgPath))

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "  - schema.json")
	assert.Regexp(t, `output: ['"]?-`, output)
	assert.Contains(t, output, "naming: identity")
	assert.Contains(t, output, "header: true")
	assert.NotContains(t, output, "schemas:")
}
