// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input; inputs is a
// comma-separated list of schema files.
func RunInitForm(inputs, output, naming *string, header *bool, policies []string) error {
	options := make([]huh.Option[string], 0, len(policies))
	for _, p := range policies {
		options = append(options, huh.NewOption(p, p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema files").
				Description("Comma-separated JSON or YAML schema files").
				Placeholder("schemas/order.json, schemas/customer.yaml").
				Validate(requiredValidator("at least one schema file")).
				Value(inputs),
			huh.NewInput().
				Title("Output file").
				Description(`Use "-" to write to stdout`).
				Placeholder("src/schemas.ts").
				Validate(requiredValidator("output")).
				Value(output),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Field naming policy").
				Options(options...).
				Value(naming),
			huh.NewConfirm().
				Title("Emit the zod import line?").
				Value(header),
		),
	).WithTheme(Theme()).Run()
}
