// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/audiocloud/schemars-zod/internal/config"
	"github.com/audiocloud/schemars-zod/internal/prompts"
	"github.com/audiocloud/schemars-zod/internal/session"
	"github.com/audiocloud/schemars-zod/internal/translate"
	"github.com/audiocloud/schemars-zod/internal/translate/schema"
)

type generateOptions struct {
	format       string
	output       string
	naming       string
	noHeader     bool
	schemaNaming map[string]string
	stdinFormat  string
}

func newGenerateCmd(root *rootOptions, translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [schema files...]",
		Short: "Generate validators from schema files",
		Long: fmt.Sprintf(`Generate validators from JSON or YAML schema files.

Schema files are taken from the arguments, then from the inputs listed in
schemazod.yaml. Without either, a single schema is read from stdin.
Every named schema and every definition becomes one exported declaration.

Available formats: %s
Naming policies: %s`, strings.Join(translators.Available(), ", "), strings.Join(schema.NamingPolicies(), ", ")),
		Example: `  # Use the project configuration
  schemazod generate

  # Convert specific files to stdout
  schemazod generate schemas/order.json schemas/customer.json -o -

  # Rename fields to camelCase except for one schema
  schemazod generate order.json --naming camelCase --schema-naming Legacy=identity

  # Read a YAML schema from a pipe
  cat order.yaml | schemazod generate --stdin-format yaml`,
		PersistentPreRunE: session.PreRunLoadOptional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "zod", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `Output file, "-" for stdout (default from config, else stdout)`)
	cmd.Flags().StringVarP(&opts.naming, "naming", "n", "", "Default field naming policy")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "Omit the import line")
	cmd.Flags().StringToStringVar(&opts.schemaNaming, "schema-naming", nil, "Per-schema naming policy (Name=policy)")
	cmd.Flags().StringVar(&opts.stdinFormat, "stdin-format", "json", "Format of a schema read from stdin (json or yaml)")

	return cmd
}

// effectiveConfig applies flag overrides on top of the project config.
func (o *generateOptions) effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := *projectConfig(cmd)
	cfg.Schemas = maps.Clone(cfg.Schemas)

	if cmd.Flags().Changed("output") {
		cfg.Output = o.output
	}
	if cmd.Flags().Changed("naming") {
		cfg.Naming = o.naming
	}
	if o.noHeader {
		header := false
		cfg.Header = &header
	}
	if len(o.schemaNaming) > 0 && cfg.Schemas == nil {
		cfg.Schemas = make(map[string]config.SchemaConfig, len(o.schemaNaming))
	}
	for name, policy := range o.schemaNaming {
		cfg.Schemas[name] = config.SchemaConfig{Naming: policy}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateStdinFormat(o.stdinFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runGenerate(cmd *cobra.Command, root *rootOptions, translators translate.Register, opts *generateOptions, args []string) error {
	translator, err := translators.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(translators.Available(), ", "))
	}

	cfg, err := opts.effectiveConfig(cmd)
	if err != nil {
		return err
	}

	roots, inputs, err := loadRoots(cmd, cfg, args, opts.stdinFormat)
	if err != nil {
		return err
	}

	data, err := translate.Convert(roots, translator,
		translate.FileOptions{Header: cfg.EmitHeader()},
		translate.WithLogger(root.logger(cmd.ErrOrStderr())),
	)
	if err != nil {
		return err
	}

	if cfg.WritesStdout() {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil { //nolint:gosec // generated source is meant to be readable
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	prompts.PrintResult(cmd.ErrOrStderr(), []prompts.ResultField{
		{Label: "Inputs", Value: strings.Join(inputs, ", ")},
		{Label: "Format", Value: translator.Name()},
		{Label: "Output", Value: cfg.Output},
	}, "Generation completed")
	return nil
}
