// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/boundary"
	"github.com/gogpu/shapes/internal/script"
	"github.com/gogpu/shapes/internal/snapshot"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output   string
	Format   string
	Rotation string
	Trace    bool
	Dump     bool

	// View overrides; applied with a final frame when any is set.
	Zoom float32
	PanX float32
	PanY float32
}

var rotationModes = map[string]shapes.RotationMode{
	"metadata": shapes.RotationAsMetadata,
	"center":   shapes.RotationAboutCenter,
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <script>",
		Short: "Replay a call script and write the last frame to an image",
		Long: `Replay a YAML call script against a fresh scene and save the surface.

The image format follows --format, or the output extension when --format
is empty (.png, .bmp, .tif/.tiff). Passing --zoom, --pan-x or --pan-y
renders one more frame with that view after the script.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := cmd.Flags().Changed("zoom") || cmd.Flags().Changed("pan-x") || cmd.Flags().Changed("pan-y")
			return runRender(opts, args[0], view, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "frame.png", "output image path")
	cmd.Flags().StringVar(&opts.Format, "format", "", "image format (png|bmp|tiff)")
	cmd.Flags().StringVar(&opts.Rotation, "rotation", "metadata", "rotation rendering (metadata|center)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print every painted shape with its depth and transform")
	cmd.Flags().BoolVar(&opts.Dump, "dump", false, "print the call trace and the shape store")
	cmd.Flags().Float32Var(&opts.Zoom, "zoom", 1, "view zoom for the final frame")
	cmd.Flags().Float32Var(&opts.PanX, "pan-x", 0, "view pan x for the final frame")
	cmd.Flags().Float32Var(&opts.PanY, "pan-y", 0, "view pan y for the final frame")

	return cmd
}

func runRender(opts *RenderOptions, path string, view bool, out io.Writer) error {
	mode, ok := rotationModes[opts.Rotation]
	if !ok {
		return fmt.Errorf("invalid rotation mode %q", opts.Rotation)
	}
	format := opts.Format
	if format == "" {
		format = snapshot.FormatFromPath(opts.Output)
	}

	s, err := script.Load(path)
	if err != nil {
		return err
	}

	stateOpts := []shapes.StateOption{shapes.WithRotation(mode)}
	if opts.Trace {
		stateOpts = append(stateOpts, shapes.WithVisitor(func(id shapes.ID, depth int, m gg.Matrix) {
			fmt.Fprintf(out, "%*s%s [%g %g %g %g %g %g]\n", depth*2, "", id, m.A, m.B, m.C, m.D, m.E, m.F)
		}))
	}

	b := boundary.New(stateOpts...)
	defer b.Close()

	trace, err := script.Replay(b, s)
	if opts.Dump {
		fmt.Fprint(out, trace.String())
		if b.State() != nil {
			fmt.Fprint(out, script.Dump(b.State().Store()))
		}
	}
	if err != nil {
		return err
	}

	if view {
		if err := b.RenderFrame(opts.Zoom, opts.PanX, opts.PanY); err != nil {
			return err
		}
	}

	snap, ok := b.State().Surface().(shapes.Snapshotter)
	if !ok {
		return errors.New("surface cannot be read back")
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	if err := snapshot.Encode(f, snap.Image(), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", opts.Output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	shapes.Logger().Info("frame written", "path", opts.Output, "format", format)
	return nil
}
