// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/blake-mills/zig-gobject/internal/session"
	"github.com/blake-mills/zig-gobject/internal/translate"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "girgen",
		Short: "Generate language bindings from GObject Introspection data",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	generateCmd := newGenerateCmd(translators)
	generateCmd.PersistentPreRunE = session.PreRunLoad
	rootCmd.AddCommand(generateCmd)

	describeCmd := newDescribeCmd()
	describeCmd.PersistentPreRunE = session.PreRunLoad
	rootCmd.AddCommand(describeCmd)

	return rootCmd
}
