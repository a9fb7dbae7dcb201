// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blake Mills

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blake-mills/zig-gobject/internal/config"
)

var (
	// ErrNotInitialized indicates no girgen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a girgen project (girgen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the name of the girgen configuration file.
const ConfigFileName = "girgen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration for the running command.
type Context struct {
	// Config is the loaded configuration.
	Config *config.Config

	// WorkDir is the directory girgen.yaml was loaded from; relative paths
	// in the config are resolved against it.
	WorkDir string
}

// InputDirs returns the configured input directories resolved to absolute paths.
func (c *Context) InputDirs() []string {
	dirs := make([]string, 0, len(c.Config.InputDirs))
	for _, dir := range c.Config.InputDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(c.WorkDir, dir)
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// OutputDir returns the configured output directory resolved to an absolute path.
func (c *Context) OutputDir() string {
	if filepath.IsAbs(c.Config.Output) {
		return c.Config.Output
	}
	return filepath.Join(c.WorkDir, c.Config.Output)
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the girgen Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	girgenCtx := &Context{
		Config:  cfg,
		WorkDir: cwd,
	}

	return context.WithValue(ctx, contextKey{}, girgenCtx), nil
}

// From extracts the girgen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if girgenCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return girgenCtx
	}
	return nil
}
