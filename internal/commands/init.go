// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blake-mills/zig-gobject/internal/config"
	"github.com/blake-mills/zig-gobject/internal/prompts"
	"github.com/blake-mills/zig-gobject/internal/session"
)

type initOptions struct {
	inputDir       string
	output         string
	repositories   string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new girgen project",
		Long:  `Initialize a new girgen project with a girgen.yaml configuration file.`,
		Example: `  # Interactive mode
  girgen init

  # Non-interactive
  girgen init --repositories Gtk-4.0 --output src/gir --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputDir, "input-dir", "i", config.DefaultInputDir, "Directory containing .gir files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "bindings", "Output directory for generated bindings")
	cmd.Flags().StringVarP(&opts.repositories, "repositories", "r", "", "Root repositories, comma-separated (e.g. Gtk-4.0)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("girgen.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.inputDir, &opts.output, &opts.repositories); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:      config.CurrentConfigVersion,
		InputDirs:    []string{opts.inputDir},
		Output:       opts.output,
		Repositories: splitList(opts.repositories),
		Format:       "zig",
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write girgen.yaml: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: configPath},
		{Label: "Input", Value: opts.inputDir},
		{Label: "Output", Value: opts.output},
	}, "Initialization completed")
	return nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
