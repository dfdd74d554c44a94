// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command shapes replays, renders and previews shape call scripts.
//
// Usage:
//
//	shapes render [-o frame.png] [--rotation metadata|center] script.yaml
//	shapes words <id>
//	shapes words --join a b c d
//	shapes serve [--addr :8080]
package main

import (
	"os"

	// Registers the GPU accelerator; rendering falls back to the CPU
	// rasterizer when no adapter is available.
	_ "github.com/gogpu/gg/gpu"

	"github.com/gogpu/shapes/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
