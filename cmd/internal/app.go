// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/blake-mills/zig-gobject/internal/commands"
	"github.com/blake-mills/zig-gobject/internal/translate"
	"github.com/blake-mills/zig-gobject/internal/translate/zig"
)

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context) error {
	translators := make(translate.Register)
	translators["zig"] = &zig.Translator{}

	rootCmd := commands.NewRootCmd(translators)
	return rootCmd.ExecuteContext(ctx)
}
