// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns merged schema definitions into validator-expression
// trees and hands them to a target-specific translator.
package translate

import (
	"fmt"
	"sort"

	"github.com/audiocloud/schemars-zod/internal/translate/schema"
)

// Translator defines the interface all output format translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "zod")
	Name() string

	// Translate renders the declarations, in the given order, as source text.
	Translate(decls []Declaration, file FileOptions) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".ts")
	FileExtension() string
}

// FileOptions controls the frame around the emitted declarations.
type FileOptions struct {
	// Header emits the library import at the top of the file.
	Header bool
}

// Register maps translator names to translators.
type Register map[string]Translator

// Add registers a translator under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Convert runs the whole pipeline: merge, dependency analysis, mapping and emission.
// Either every definition is emitted or an error is returned.
func Convert(roots []schema.Root, t Translator, file FileOptions, opts ...Option) ([]byte, error) {
	decls, err := Prepare(roots, opts...)
	if err != nil {
		return nil, err
	}

	out, err := t.Translate(decls, file)
	if err != nil {
		return nil, fmt.Errorf("failed to translate to %s: %w", t.Name(), err)
	}

	newOptions(opts).logger.Debug("translated schemas", "format", t.Name(), "declarations", len(decls), "bytes", len(out))
	return out, nil
}
