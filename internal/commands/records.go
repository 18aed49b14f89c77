// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dacolabs/recschema/internal/specfile"
)

func registerRecordsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "records FILE",
		Short: "List the records and enums declared in a definition file",
		Example: `  # List records and enums
  recschema records library.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := specfile.Load(args[0])
			if err != nil {
				return err
			}
			return runRecords(cmd, file)
		},
	}

	parent.AddCommand(cmd)
}

func runRecords(cmd *cobra.Command, file *specfile.File) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKIND\tDETAILS")

	for _, name := range file.Names() {
		spec, _ := file.Record(name)
		_, _ = fmt.Fprintf(w, "%s\trecord\t%d fields\n", name, len(spec.Fields))
	}
	for _, name := range file.EnumNames() {
		td, _ := file.Enum(name)
		members := make([]string, 0, len(td.Members))
		for _, m := range td.Members {
			members = append(members, fmt.Sprintf("%v", m))
		}
		_, _ = fmt.Fprintf(w, "%s\tenum\t%s\n", name, strings.Join(members, ", "))
	}

	return w.Flush()
}
