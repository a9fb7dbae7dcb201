// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Command gendocs generates markdown documentation for the girgen CLI.
//
// Usage:
//
//	go run ./cmd/gendocs [output-dir]
//
// Default output directory is ./docs/cli.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/blake-mills/zig-gobject/internal/commands"
	"github.com/blake-mills/zig-gobject/internal/translate"
	"github.com/blake-mills/zig-gobject/internal/translate/zig"
)

func main() {
	dir := "./docs/cli"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	translators := make(translate.Register)
	translators["zig"] = &zig.Translator{}

	rootCmd := commands.NewRootCmd(translators)
	rootCmd.DisableAutoGenTag = true

	if err := os.MkdirAll(dir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}
	if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("docs written to %s\n", dir)
}
