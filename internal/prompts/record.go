// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// SelectRecord shows an interactive picker for choosing a record from a
// definition file.
func SelectRecord(names []string) (string, error) {
	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		options[i] = huh.NewOption(name, name)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Record").
			Description("Choose the record to generate a schema for").
			Options(options...).
			Value(&selected),
	)).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}
