// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/audiocloud/schemars-zod/internal/commands"
	"github.com/audiocloud/schemars-zod/internal/translate"
	"github.com/audiocloud/schemars-zod/internal/translate/markdown"
	"github.com/audiocloud/schemars-zod/internal/translate/zod"
)

// Translators returns every output format the CLI supports.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&zod.Translator{})
	translators.Add(&markdown.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(Translators())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
