// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package commands

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blake-mills/zig-gobject/internal/gir"
	"github.com/blake-mills/zig-gobject/internal/session"
	"github.com/blake-mills/zig-gobject/internal/translate"
)

type describeOptions struct {
	output string // output format: text, json, yaml
}

// namespaceSummary is the serializable shape of `girgen describe`.
type namespaceSummary struct {
	Namespace  string `json:"namespace" yaml:"namespace"`
	Version    string `json:"version" yaml:"version"`
	Aliases    int    `json:"aliases" yaml:"aliases"`
	Classes    int    `json:"classes" yaml:"classes"`
	Interfaces int    `json:"interfaces" yaml:"interfaces"`
	Records    int    `json:"records" yaml:"records"`
	Unions     int    `json:"unions" yaml:"unions"`
	Enums      int    `json:"enums" yaml:"enums"`
	Bitfields  int    `json:"bitfields" yaml:"bitfields"`
	Functions  int    `json:"functions" yaml:"functions"`
	Callbacks  int    `json:"callbacks" yaml:"callbacks"`
	Constants  int    `json:"constants" yaml:"constants"`
}

func newDescribeCmd() *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe [REPOSITORY]",
		Short: "Show detailed information about a repository",
		Long:  `Parse one GIR repository and summarize its namespaces and dependencies. If no repository name is provided, an interactive selection prompt is shown.`,
		Example: `  # Interactive selection
  girgen describe

  # Summarize a repository
  girgen describe Gtk-4.0

  # Summarize as JSON
  girgen describe Gtk-4.0 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = selectRepositoryToDescribe(ctx.InputDirs())
				if err != nil {
					return err
				}
			}
			return runDescribe(ctx, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func selectRepositoryToDescribe(inputDirs []string) (string, error) {
	available, err := listRepositories(inputDirs)
	if err != nil {
		return "", err
	}
	if len(available) == 0 {
		return "", fmt.Errorf("no .gir files found in the input directories")
	}

	options := make([]huh.Option[string], len(available))
	for i, name := range available {
		options[i] = huh.NewOption(name, name)
	}

	var selected string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select repository to describe").
				Options(options...).
				Filtering(true).
				Value(&selected).
				Height(10),
		),
	).Run(); err != nil {
		return "", err
	}

	return selected, nil
}

func runDescribe(ctx *session.Context, name string, opts *describeOptions) error {
	fsys := make([]fs.FS, 0, len(ctx.InputDirs()))
	for _, dir := range ctx.InputDirs() {
		fsys = append(fsys, os.DirFS(dir))
	}

	repo, err := translate.NewRegistry(fsys...).Resolve(name)
	if err != nil {
		return err
	}

	summaries := make([]namespaceSummary, 0, len(repo.Namespaces))
	for i := range repo.Namespaces {
		summaries = append(summaries, summarize(&repo.Namespaces[i]))
	}

	switch opts.output {
	case "json":
		output := map[string]any{"repository": name, "namespaces": summaries}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)

	case "yaml":
		output := map[string]any{"repository": name, "namespaces": summaries}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(output)

	default:
		fmt.Printf("Repository:   %s\n", name)
		if len(repo.Includes) > 0 {
			fmt.Println("Dependencies:")
			for _, inc := range repo.Includes {
				fmt.Printf("  - %s\n", inc.Key())
			}
		} else {
			fmt.Println("Dependencies: (none)")
		}
		for _, s := range summaries {
			fmt.Println()
			fmt.Printf("Namespace %s-%s:\n", s.Namespace, s.Version)
			printCount("Aliases", s.Aliases)
			printCount("Classes", s.Classes)
			printCount("Interfaces", s.Interfaces)
			printCount("Records", s.Records)
			printCount("Unions", s.Unions)
			printCount("Enums", s.Enums)
			printCount("Bitfields", s.Bitfields)
			printCount("Functions", s.Functions)
			printCount("Callbacks", s.Callbacks)
			printCount("Constants", s.Constants)
		}
		return nil
	}
}

func summarize(ns *gir.Namespace) namespaceSummary {
	return namespaceSummary{
		Namespace:  ns.Name,
		Version:    ns.Version,
		Aliases:    len(ns.Aliases),
		Classes:    len(ns.Classes),
		Interfaces: len(ns.Interfaces),
		Records:    len(ns.Records),
		Unions:     len(ns.Unions),
		Enums:      len(ns.Enums),
		Bitfields:  len(ns.Bitfields),
		Functions:  len(ns.Functions),
		Callbacks:  len(ns.Callbacks),
		Constants:  len(ns.Constants),
	}
}

func printCount(label string, n int) {
	if n == 0 {
		return
	}
	fmt.Printf("  %-11s %d\n", label+":", n)
}
