// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles schemazod project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/audiocloud/schemars-zod/internal/translate/schema"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// StdoutOutput is the output value that writes generated code to stdout.
const StdoutOutput = "-"

// Config represents the schemazod.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`
	// Inputs are the schema files to convert, relative to the config file.
	Inputs []string `yaml:"inputs,omitempty"`
	// Output is the generated file; "-" or empty writes to stdout.
	Output string `yaml:"output,omitempty"`
	// Naming is the default field naming policy.
	Naming string `yaml:"naming,omitempty"`
	// Schemas holds per-schema overrides keyed by schema name.
	Schemas map[string]SchemaConfig `yaml:"schemas,omitempty"`
	// Header controls the zod import line; nil means enabled.
	Header *bool `yaml:"header,omitempty"`
}

// SchemaConfig overrides settings for a single named schema.
type SchemaConfig struct {
	Naming string `yaml:"naming,omitempty"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	header := true
	return &Config{
		Version: CurrentConfigVersion,
		Output:  StdoutOutput,
		Naming:  schema.Identity.Name(),
		Header:  &header,
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if _, err := schema.LookupNamingPolicy(c.Naming); err != nil {
		return fmt.Errorf("naming: %w", err)
	}
	for _, name := range schema.SortedKeys(c.Schemas) {
		if _, err := schema.LookupNamingPolicy(c.Schemas[name].Naming); err != nil {
			return fmt.Errorf("schemas.%s.naming: %w", name, err)
		}
	}
	for i, in := range c.Inputs {
		if in == "" {
			return fmt.Errorf("inputs[%d]: empty path", i)
		}
	}
	return nil
}

// Resolve fills unset fields with their defaults.
func (c *Config) Resolve() {
	def := Default()
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Naming == "" {
		c.Naming = def.Naming
	}
	if c.Header == nil {
		c.Header = def.Header
	}
}

// EmitHeader reports whether generated files start with the zod import.
func (c *Config) EmitHeader() bool {
	return c.Header == nil || *c.Header
}

// WritesStdout reports whether generated code goes to stdout.
func (c *Config) WritesStdout() bool {
	return c.Output == "" || c.Output == StdoutOutput
}

// NamingFor returns the naming policy for the named schema: its override if
// one is configured, otherwise the default policy.
func (c *Config) NamingFor(name string) (schema.NamingPolicy, error) {
	if sc, ok := c.Schemas[name]; ok && sc.Naming != "" {
		return schema.LookupNamingPolicy(sc.Naming)
	}
	return schema.LookupNamingPolicy(c.Naming)
}
