// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/audiocloud/schemars-zod/internal/translate"
	"github.com/audiocloud/schemars-zod/internal/translate/schema"
)

func newFormatsCmd(translators translate.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and naming policies",
		Example: `  # List formats
  schemazod formats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "FORMAT\tEXTENSION")
			for _, name := range translators.Available() {
				t, _ := translators.Get(name)
				_, _ = fmt.Fprintf(w, "%s\t%s\n", name, t.FileExtension())
			}
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "NAMING POLICY")
			for _, name := range schema.NamingPolicies() {
				_, _ = fmt.Fprintln(w, name)
			}
			return w.Flush()
		},
	}
}
