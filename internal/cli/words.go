// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/shapes"
)

// NewWordsCommand creates the words command, which converts between the
// canonical id form and the four words used on the call boundary.
func NewWordsCommand(_ *RootOptions) *cobra.Command {
	var join bool

	cmd := &cobra.Command{
		Use:   "words <id> | words --join <a> <b> <c> <d>",
		Short: "Split an id into boundary words, or join words into an id",
		Args: func(cmd *cobra.Command, args []string) error {
			if join {
				return cobra.ExactArgs(4)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if join {
				return runJoin(cmd.OutOrStdout(), args)
			}
			return runSplit(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().BoolVar(&join, "join", false, "join four words into an id")
	return cmd
}

func runSplit(out io.Writer, s string) error {
	id, err := shapes.ParseID(s)
	if err != nil {
		return fmt.Errorf("parse id: %w", err)
	}
	a, b, c, d := shapes.Words(id)
	_, err = fmt.Fprintf(out, "%d %d %d %d\n", a, b, c, d)
	return err
}

func runJoin(out io.Writer, args []string) error {
	var w [4]uint32
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
		w[i] = uint32(v)
	}
	_, err := fmt.Fprintln(out, shapes.IDFromWords(w[0], w[1], w[2], w[3]))
	return err
}
