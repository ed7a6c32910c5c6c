// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/audiocloud/schemars-zod/internal/config"
	"github.com/audiocloud/schemars-zod/internal/prompts"
	"github.com/audiocloud/schemars-zod/internal/session"
	"github.com/audiocloud/schemars-zod/internal/translate/schema"
)

type initOptions struct {
	inputs         []string
	output         string
	naming         string
	noHeader       bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new schemazod project",
		Long: `Initialize a new schemazod project with a schemazod.yaml configuration file
listing the schema files to convert and where to write the generated code.`,
		Example: `  # Interactive mode
  schemazod init

  # Non-interactive
  schemazod init --input schemas/order.json --output src/schemas.ts --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.inputs, "input", "i", nil, "Schema file(s), repeatable or comma-separated")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.StdoutOutput, `Output file, "-" for stdout`)
	cmd.Flags().StringVarP(&opts.naming, "naming", "n", schema.Identity.Name(), "Default field naming policy")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "Omit the import line")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input)")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("schemazod.yaml already exists; project already initialized")
	}

	header := !opts.noHeader
	if opts.nonInteractive {
		if len(opts.inputs) == 0 {
			return errors.New("non-interactive mode requires --input")
		}
	} else {
		inputs := strings.Join(opts.inputs, ", ")
		if err := prompts.RunInitForm(&inputs, &opts.output, &opts.naming, &header, schema.NamingPolicies()); err != nil {
			return err
		}
		opts.inputs = prompts.SplitList(inputs)
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Inputs:  opts.inputs,
		Output:  opts.output,
		Naming:  opts.naming,
		Header:  &header,
	}

	for _, in := range cfg.Inputs {
		if _, err := os.Stat(filepath.Join(cwd, in)); err != nil {
			prompts.PrintWarning(cmd.ErrOrStderr(), "schema file %s does not exist yet", in)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Inputs", Value: strings.Join(cfg.Inputs, ", ")},
		{Label: "Output", Value: cfg.Output},
		{Label: "Naming", Value: cfg.Naming},
		{Label: "Header", Value: strconv.FormatBool(header)},
	}, "Initialization completed")

	return nil
}
