// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package boundary exposes a shapes.State through the fixed-width call
// surface used by foreign hosts.
//
// Every call takes only fixed-width numbers: identifiers arrive as four
// uint32 words, geometry as float32, colors as uint8. A Boundary owns at
// most one State, created by Init.
//
// # Misuse
//
// Calling anything before Init returns ErrNotInitialized; calling Init twice
// returns ErrAlreadyInitialized. Mutations with no shape addressed by
// UseShape are dropped and reported as shapes.NoCursor. Status maps every
// outcome to an int32 code for ABIs that cannot carry Go errors.
//
// # Thread Safety
//
// Boundary is NOT safe for concurrent use. The host issues one call at a
// time and each call runs to completion.
package boundary
