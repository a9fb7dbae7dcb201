// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for any generate inputs still missing. available
// lists the repository names found in the input directories; selected, format
// and output are only prompted for when empty.
func RunGenerateForm(selected *[]string, format *string, output *string, available, formats []string) error {
	var groups []*huh.Group

	if len(*selected) == 0 {
		if len(available) == 0 {
			return errors.New("no .gir files found in the input directories")
		}
		options := make([]huh.Option[string], len(available))
		for i, name := range available {
			options[i] = huh.NewOption(name, name)
		}
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Repositories to translate").
				Options(options...).
				Filterable(true).
				Value(selected).
				Height(12),
		))
	}

	if *format == "" && len(formats) > 1 {
		options := make([]huh.Option[string], len(formats))
		for i, f := range formats {
			options[i] = huh.NewOption(f, f)
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(options...).
				Value(format),
		))
	}

	if *output == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Validate(requiredValidator("output directory")).
				Value(output),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
