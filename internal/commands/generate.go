// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/recschema/internal/prompts"
	"github.com/dacolabs/recschema/internal/specfile"
	"github.com/dacolabs/recschema/internal/translate"
)

type generateOptions struct {
	output string
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate FILE [RECORD]",
		Aliases: []string{"gen"},
		Short:   "Generate the JSON Schema for a record",
		Long: `Generate a JSON Schema (draft 2020-12) document for a record declared
in a definition file. With a single record in the file the name may be
omitted; with several, an interactive selection prompt is shown.`,
		Example: `  # Generate the schema for the Book record
  recschema generate library.yaml Book

  # Interactive record selection
  recschema generate library.yaml

  # Write the schema to a file
  recschema generate library.yaml Book -o book.schema.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: standard output)")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	file, err := specfile.Load(args[0])
	if err != nil {
		return err
	}

	name, err := pickRecord(file, args)
	if err != nil {
		return err
	}
	spec, ok := file.Record(name)
	if !ok {
		return fmt.Errorf("record %q not found in %s (available: %s)",
			name, args[0], strings.Join(file.Names(), ", "))
	}

	doc, err := translate.GetSchema(spec)
	if err != nil {
		return err
	}
	out, err := doc.Indent()
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if opts.output != "" {
		if err := os.WriteFile(opts.output, out, 0o600); err != nil {
			return err
		}
		prompts.PrintResult([]prompts.ResultField{
			{Label: "Record", Value: name},
			{Label: "Schema", Value: opts.output},
		}, "Schema generated")
		return nil
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func pickRecord(file *specfile.File, args []string) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	names := file.Names()
	if len(names) == 1 {
		return names[0], nil
	}
	return prompts.SelectRecord(names)
}
