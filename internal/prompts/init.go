// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm prompts for the values of a new girgen.yaml.
func RunInitForm(inputDir, output, repositories *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GIR input directory").
				Description("Where .gir files are installed").
				Validate(requiredValidator("input directory")).
				Value(inputDir),
			huh.NewInput().
				Title("Output directory").
				Description("Where generated bindings are written").
				Validate(requiredValidator("output directory")).
				Value(output),
			huh.NewInput().
				Title("Repositories").
				Description("Comma-separated root repositories, e.g. Gtk-4.0 (optional)").
				Value(repositories),
		),
	).WithTheme(Theme()).Run()
}
