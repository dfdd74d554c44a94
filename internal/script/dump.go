// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/shapes"
)

// Dump renders every shape in the store as text, ordered by id.
//
//	shape 00000000-0000-0000-0000-00000000000a
//	  selrect 0 0 32 32
//	  rotation 0
//	  transform 1 0 0 1 0 0
//	  child 00000000-0000-0000-0000-00000000000c
//	  fill #ff0000ff
func Dump(store *shapes.Store) string {
	var sb strings.Builder
	for _, id := range store.IDs() {
		sh, _ := store.Lookup(id)
		fmt.Fprintf(&sb, "shape %s\n", id)
		r := sh.Selrect
		fmt.Fprintf(&sb, "  selrect %s %s %s %s\n", num(r.X1), num(r.Y1), num(r.X2), num(r.Y2))
		fmt.Fprintf(&sb, "  rotation %s\n", num(sh.Rotation))
		t := sh.Transform
		fmt.Fprintf(&sb, "  transform %s %s %s %s %s %s\n",
			num(t.A), num(t.B), num(t.C), num(t.D), num(t.E), num(t.F))
		for _, c := range sh.Children {
			fmt.Fprintf(&sb, "  child %s\n", c)
		}
		for _, f := range sh.Fills {
			fmt.Fprintf(&sb, "  fill #%02x%02x%02x%02x\n", f.R, f.G, f.B, f.A)
		}
	}
	return sb.String()
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
