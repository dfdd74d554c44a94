// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package script loads YAML call scripts and replays them against a
// boundary.Boundary.
//
// A script is the host call sequence written down: a viewport for Init
// followed by calls named as on the wire.
//
//	name: square
//	viewport: {width: 64, height: 64}
//	calls:
//	  - op: use_shape
//	    id: 00000000-0000-0000-0000-000000000000
//	  - op: set_shape_selrect
//	    args: [0, 0, 32, 32]
//	  - op: add_shape_solid_fill
//	    args: [255, 0, 0, 1]
//	  - op: render_frame
//	    args: [1, 0, 0]
//
// Calls taking identifier words (use_shape, add_shape_child) take an id in
// canonical string form instead. Scripts are used by the shapes command,
// the preview server and golden tests.
package script
