// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/audiocloud/schemars-zod/internal/translate"
	"github.com/audiocloud/schemars-zod/internal/version"
)

type rootOptions struct {
	verbose bool
}

// logger returns a text logger on w; debug output is enabled by --verbose.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	opts := &rootOptions{}
	build := version.Current()

	rootCmd := &cobra.Command{
		Use:   "schemazod",
		Short: "Generate Zod validators from JSON Schema",
		Long: `schemazod converts JSON Schema documents (as produced by schemars and
similar generators) into TypeScript Zod validators with inferred types.`,
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(build.String() + "\n")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline progress to stderr")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd(opts, translators))
	rootCmd.AddCommand(newGraphCmd(opts))
	rootCmd.AddCommand(newFormatsCmd(translators))

	return rootCmd
}
