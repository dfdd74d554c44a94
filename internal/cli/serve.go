// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/preview"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr     string
	Rotation string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a preview endpoint that renders posted call scripts",
		Long: `Start an HTTP server that replays YAML call scripts.

POST /render returns the final frame as an image, POST /dump returns the
call trace and shape store. The address defaults to SHAPES_ADDR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides SHAPES_ADDR)")
	cmd.Flags().StringVar(&opts.Rotation, "rotation", "metadata", "rotation rendering (metadata|center)")

	return cmd
}

func runServe(opts *ServeOptions) error {
	mode, ok := rotationModes[opts.Rotation]
	if !ok {
		return fmt.Errorf("invalid rotation mode %q", opts.Rotation)
	}
	cfg := preview.LoadConfig()
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	return preview.New(cfg, shapes.WithRotation(mode)).Listen()
}
