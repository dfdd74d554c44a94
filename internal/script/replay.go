// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"fmt"
	"strings"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/boundary"
)

// op describes how a call maps onto the boundary.
type op struct {
	args int
	id   bool
	run  func(b *boundary.Boundary, w [4]uint32, a []float64) boundary.Status
}

func f32(v float64) float32 { return float32(v) }

func status(err error) boundary.Status { return boundary.StatusOf(err) }

var ops = map[string]op{
	"resize": {args: 2, run: func(b *boundary.Boundary, _ [4]uint32, a []float64) boundary.Status {
		return status(b.Resize(int32(a[0]), int32(a[1])))
	}},
	"render_frame": {args: 3, run: func(b *boundary.Boundary, _ [4]uint32, a []float64) boundary.Status {
		return status(b.RenderFrame(f32(a[0]), f32(a[1]), f32(a[2])))
	}},
	"reset_canvas": {run: func(b *boundary.Boundary, _ [4]uint32, _ []float64) boundary.Status {
		return status(b.ResetCanvas())
	}},
	"translate": {args: 2, run: func(b *boundary.Boundary, _ [4]uint32, a []float64) boundary.Status {
		return status(b.Translate(f32(a[0]), f32(a[1])))
	}},
	"scale": {args: 2, run: func(b *boundary.Boundary, _ [4]uint32, a []float64) boundary.Status {
		return status(b.Scale(f32(a[0]), f32(a[1])))
	}},
	"flush": {run: func(b *boundary.Boundary, _ [4]uint32, _ []float64) boundary.Status {
		return status(b.Flush())
	}},
	"use_shape": {id: true, run: func(b *boundary.Boundary, w [4]uint32, _ []float64) boundary.Status {
		return status(b.UseShape(w[0], w[1], w[2], w[3]))
	}},
	"set_shape_selrect": {args: 4, run: func(b *boundary.Boundary, _ [4]uint32, a []float64) boundary.Status {
		return boundary.ResultStatus(b.SetShapeSelrect(f32(a[0]), f32(a[1]), f32(a[2]), f32(a[3])))
	}},
	"set_shape_rotation": {args: 1, run: func(b *boundary.Boundary, _ [4]uint32, a []float64) boundary.Status {
		return boundary.ResultStatus(b.SetShapeRotation(f32(a[0])))
	}},
	"set_shape_transform": {args: 6, run: func(b *boundary.Boundary, _ [4]uint32, a []float64) boundary.Status {
		return boundary.ResultStatus(b.SetShapeTransform(f32(a[0]), f32(a[1]), f32(a[2]), f32(a[3]), f32(a[4]), f32(a[5])))
	}},
	"add_shape_child": {id: true, run: func(b *boundary.Boundary, w [4]uint32, _ []float64) boundary.Status {
		return boundary.ResultStatus(b.AddShapeChild(w[0], w[1], w[2], w[3]))
	}},
	"clear_shape_children": {run: func(b *boundary.Boundary, _ [4]uint32, _ []float64) boundary.Status {
		return boundary.ResultStatus(b.ClearShapeChildren())
	}},
	"add_shape_solid_fill": {args: 4, run: func(b *boundary.Boundary, _ [4]uint32, a []float64) boundary.Status {
		return boundary.ResultStatus(b.AddShapeSolidFill(uint8(a[0]), uint8(a[1]), uint8(a[2]), f32(a[3])))
	}},
	"clear_shape_fills": {run: func(b *boundary.Boundary, _ [4]uint32, _ []float64) boundary.Status {
		return boundary.ResultStatus(b.ClearShapeFills())
	}},
}

// Step is the outcome of one replayed call.
type Step struct {
	Index  int
	Op     string
	Status boundary.Status
}

// Trace lists the outcome of every replayed call.
type Trace []Step

// String renders one line per step: index, op and status name.
func (t Trace) String() string {
	var sb strings.Builder
	for _, s := range t {
		fmt.Fprintf(&sb, "%d %s %s\n", s.Index, s.Op, s.Status)
	}
	return sb.String()
}

// Replay initializes b with the script viewport and issues every call.
//
// Calls reporting StatusNoCursor are recorded and replay continues, as a
// host would. A call failing with a negative status stops the replay; the
// returned trace includes it.
func Replay(b *boundary.Boundary, s *Script) (Trace, error) {
	if err := b.Init(s.Viewport.Width, s.Viewport.Height); err != nil {
		return nil, fmt.Errorf("script %s: init: %w", s.Name, err)
	}

	trace := make(Trace, 0, len(s.Calls))
	for i, c := range s.Calls {
		if err := c.validate(); err != nil {
			return trace, fmt.Errorf("%w: call %d (%s): %v", ErrInvalidScript, i, c.Op, err)
		}
		o := ops[c.Op]
		var words [4]uint32
		if o.id {
			id, _ := shapes.ParseID(c.ID)
			words[0], words[1], words[2], words[3] = shapes.Words(id)
		}

		st := o.run(b, words, c.Args)
		trace = append(trace, Step{Index: i, Op: c.Op, Status: st})
		if st < 0 {
			return trace, fmt.Errorf("script %s: call %d (%s) failed: %s", s.Name, i, c.Op, st)
		}
	}
	shapes.Logger().Debug("script: replayed", "name", s.Name, "calls", len(trace))
	return trace, nil
}
