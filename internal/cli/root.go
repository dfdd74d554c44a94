// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the shapes command.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/shapes"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	LogLevel string // "debug" | "info" | "warn" | "error"
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Replay, render and preview shape call scripts",
		Long: `shapes drives the shape scene core from the command line.

Call scripts record a host session (init, shape mutations, frames) as YAML.
They can be rendered to an image file or served by a preview server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, ok := logLevels[opts.LogLevel]
			if !ok {
				return fmt.Errorf("invalid log level %q", opts.LogLevel)
			}
			if opts.Verbose {
				level = slog.LevelDebug
			}
			shapes.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewWordsCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}
