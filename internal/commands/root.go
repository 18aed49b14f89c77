// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "recschema",
		Short:         "Generate JSON Schema documents from record definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registerGenerateCmd(rootCmd)
	registerRecordsCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
