// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package commands

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blake-mills/zig-gobject/internal/errdefs"
	"github.com/blake-mills/zig-gobject/internal/prompts"
	"github.com/blake-mills/zig-gobject/internal/session"
	"github.com/blake-mills/zig-gobject/internal/translate"
)

type generateOptions struct {
	repositories string
	output       string
	format       string
	all          bool
	verbose      bool
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bindings for the configured repositories",
		Long: fmt.Sprintf(`Translate GIR repositories into language bindings, one module per namespace.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  girgen generate

  # Generate specific repositories
  girgen generate --repositories Gtk-4.0,GLib-2.0

  # Generate everything found in the input directories
  girgen generate --all

  # Generate into a custom output directory
  girgen generate --all --output src/gir`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repositories, "repositories", "r", "", "Repository name(s), comma-separated")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (defaults to the configured one)")
	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Translate every repository in the input directories")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if opts.all && opts.repositories != "" {
		return fmt.Errorf("--all and --repositories are mutually exclusive")
	}

	inputDirs := ctx.InputDirs()
	available, err := listRepositories(inputDirs)
	if err != nil {
		return err
	}

	var selected []string
	switch {
	case opts.all:
		selected = available
	case opts.repositories != "":
		selected = splitList(opts.repositories)
	default:
		selected = ctx.Config.Repositories
	}

	format := opts.format
	if format == "" {
		format = ctx.Config.Format
	}
	if format == "" {
		format = "zig"
	}

	output := opts.output
	if output == "" {
		output = ctx.OutputDir()
	}

	// Prompt for anything still missing
	if err := prompts.RunGenerateForm(&selected, &format, &output, available, translators.Available()); err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no repositories selected")
	}

	translator, err := translators.Get(format)
	if err != nil {
		return fmt.Errorf("%w: format %q (available: %s)",
			errdefs.ErrNotSupported, format, strings.Join(translators.Available(), ", "))
	}

	fsys := make([]fs.FS, 0, len(inputDirs))
	for _, dir := range inputDirs {
		fsys = append(fsys, os.DirFS(dir))
	}
	reg := translate.NewRegistry(fsys...)

	fmt.Printf("Translating %d repositor%s to %s...\n", len(selected), plural(len(selected), "y", "ies"), format)
	if err := translate.Run(reg, translator, selected, output); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Repositories", Value: strings.Join(selected, ", ")},
		{Label: "Output", Value: output},
	}, "Generation completed")
	return nil
}

// listRepositories returns the repository names (without the .gir suffix)
// found across the input directories, sorted and deduplicated.
func listRepositories(dirs []string) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
		}
		for _, e := range entries {
			name, ok := strings.CutSuffix(e.Name(), ".gir")
			if !ok || e.IsDir() || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
