// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/audiocloud/schemars-zod/internal/prompts"
	"github.com/audiocloud/schemars-zod/internal/session"
	"github.com/audiocloud/schemars-zod/internal/translate/schema"
)

type graphOptions struct {
	width       int
	stdinFormat string
}

func newGraphCmd(root *rootOptions) *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph [schema files...]",
		Short: "Show schema dependencies and recursion",
		Long: `Show every named schema in emission order, whether it is recursive,
and the schemas it references. Recursive schemas are referenced lazily in
generated code. References to schemas that are never defined are marked.`,
		Example: `  # Inspect the project inputs
  schemazod graph

  # Inspect specific files
  schemazod graph schemas/tree.yaml`,
		PersistentPreRunE: session.PreRunLoadOptional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, root, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 60, "Truncate the dependency column to this many cells (0 disables)")
	cmd.Flags().StringVar(&opts.stdinFormat, "stdin-format", "json", "Format of a schema read from stdin (json or yaml)")

	return cmd
}

func runGraph(cmd *cobra.Command, root *rootOptions, opts *graphOptions, args []string) error {
	if err := validateStdinFormat(opts.stdinFormat); err != nil {
		return err
	}
	cfg := projectConfig(cmd)

	roots, _, err := loadRoots(cmd, cfg, args, opts.stdinFormat)
	if err != nil {
		return err
	}

	table, err := schema.Merge(roots)
	if err != nil {
		return fmt.Errorf("failed to merge schemas: %w", err)
	}
	g := schema.BuildGraph(table)
	root.logger(cmd.ErrOrStderr()).Debug("built dependency graph", "definitions", table.Len())

	order := g.Order()
	nameWidth := runewidth.StringWidth("NAME")
	for _, name := range order {
		nameWidth = max(nameWidth, runewidth.StringWidth(name))
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n", runewidth.FillRight("NAME", nameWidth), "CYCLIC", "DEPENDS ON")

	var missing int
	for _, name := range order {
		deps := g.Dependencies(name)
		labels := make([]string, 0, len(deps))
		for _, dep := range deps {
			if !table.Has(dep) {
				dep += " (missing)"
				missing++
			}
			labels = append(labels, dep)
		}

		depsDisplay := "-"
		if len(labels) > 0 {
			depsDisplay = strings.Join(labels, ", ")
		}
		if opts.width > 0 {
			depsDisplay = runewidth.Truncate(depsDisplay, opts.width, "...")
		}

		cyclic := "no"
		if g.IsCyclic(name) {
			cyclic = "yes"
		}

		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", runewidth.FillRight(name, nameWidth), runewidth.FillRight(cyclic, len("CYCLIC")), depsDisplay)
	}

	if missing > 0 {
		prompts.PrintWarning(cmd.ErrOrStderr(), "%d reference(s) to undefined schemas", missing)
	}
	return nil
}
