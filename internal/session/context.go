// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/audiocloud/schemars-zod/internal/config"
)

var (
	// ErrNotInitialized indicates no schemazod.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a schemazod project (schemazod.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the name of the schemazod configuration file.
const ConfigFileName = "schemazod.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the validated configuration with defaults applied.
	Config *config.Config

	// Dir is the directory containing the config file. Inputs and output
	// are relative to it.
	Dir string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the project Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}
	cfg.Resolve()

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg, Dir: cwd}), nil
}

// From extracts the project Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if projectCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return projectCtx
	}
	return nil
}
