// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package boundary

import (
	"errors"

	"github.com/gogpu/shapes"
)

// Common errors returned by Boundary calls.
var (
	// ErrNotInitialized is returned by every call made before Init.
	ErrNotInitialized = errors.New("boundary: not initialized")

	// ErrAlreadyInitialized is returned by a second Init.
	ErrAlreadyInitialized = errors.New("boundary: already initialized")
)

// Boundary is the host-facing call surface over a single shapes.State.
//
// The zero Boundary is ready for Init.
type Boundary struct {
	state *shapes.State
	opts  []shapes.StateOption
}

// New creates a Boundary whose Init passes opts to shapes.New.
func New(opts ...shapes.StateOption) *Boundary {
	return &Boundary{opts: opts}
}

// State returns the owned state, or nil before Init.
func (bd *Boundary) State() *shapes.State {
	return bd.state
}

// Init creates the state with a viewport of width x height pixels.
func (bd *Boundary) Init(width, height int32) error {
	if bd.state != nil {
		return ErrAlreadyInitialized
	}
	st, err := shapes.New(int(width), int(height), bd.opts...)
	if err != nil {
		return err
	}
	bd.state = st
	return nil
}

// Close tears the state down. A later Init starts from an empty store.
func (bd *Boundary) Close() error {
	if bd.state == nil {
		return nil
	}
	err := bd.state.Close()
	bd.state = nil
	return err
}

func (bd *Boundary) get() (*shapes.State, error) {
	if bd.state == nil {
		return nil, ErrNotInitialized
	}
	return bd.state, nil
}

// Resize rebuilds the surface at the new size. Shapes are kept.
func (bd *Boundary) Resize(width, height int32) error {
	st, err := bd.get()
	if err != nil {
		return err
	}
	return st.Resize(int(width), int(height))
}

// RenderFrame renders the whole tree with the given view and submits it.
func (bd *Boundary) RenderFrame(zoom, panX, panY float32) error {
	st, err := bd.get()
	if err != nil {
		return err
	}
	return st.RenderFrame(zoom, panX, panY)
}

// ResetCanvas clears the surface and resets the canvas transform.
func (bd *Boundary) ResetCanvas() error {
	st, err := bd.get()
	if err != nil {
		return err
	}
	return st.ResetCanvas()
}

// Translate applies a translation to the canvas transform.
func (bd *Boundary) Translate(dx, dy float32) error {
	st, err := bd.get()
	if err != nil {
		return err
	}
	return st.Translate(dx, dy)
}

// Scale applies a scale to the canvas transform.
func (bd *Boundary) Scale(sx, sy float32) error {
	st, err := bd.get()
	if err != nil {
		return err
	}
	return st.Scale(sx, sy)
}

// Flush submits what has been painted since the last reset.
func (bd *Boundary) Flush() error {
	st, err := bd.get()
	if err != nil {
		return err
	}
	return st.Flush()
}

// UseShape points the mutation cursor at the shape with the given id words.
func (bd *Boundary) UseShape(w0, w1, w2, w3 uint32) error {
	st, err := bd.get()
	if err != nil {
		return err
	}
	st.Use(shapes.IDFromWords(w0, w1, w2, w3))
	return nil
}

// mutate runs fn against the state, or reports ErrNotInitialized.
func (bd *Boundary) mutate(fn func(*shapes.State) shapes.Result) (shapes.Result, error) {
	st, err := bd.get()
	if err != nil {
		return shapes.NoCursor, err
	}
	return fn(st), nil
}

// SetShapeSelrect overwrites the rect of the cursor shape.
func (bd *Boundary) SetShapeSelrect(x1, y1, x2, y2 float32) (shapes.Result, error) {
	return bd.mutate(func(st *shapes.State) shapes.Result {
		return st.SetSelrect(x1, y1, x2, y2)
	})
}

// SetShapeRotation overwrites the rotation of the cursor shape.
func (bd *Boundary) SetShapeRotation(rotation float32) (shapes.Result, error) {
	return bd.mutate(func(st *shapes.State) shapes.Result {
		return st.SetRotation(rotation)
	})
}

// SetShapeTransform overwrites the matrix of the cursor shape.
func (bd *Boundary) SetShapeTransform(a, b, c, d, e, f float32) (shapes.Result, error) {
	return bd.mutate(func(st *shapes.State) shapes.Result {
		return st.SetTransform(a, b, c, d, e, f)
	})
}

// AddShapeChild appends the id given by four words to the cursor shape.
func (bd *Boundary) AddShapeChild(w0, w1, w2, w3 uint32) (shapes.Result, error) {
	return bd.mutate(func(st *shapes.State) shapes.Result {
		return st.AddChild(shapes.IDFromWords(w0, w1, w2, w3))
	})
}

// ClearShapeChildren empties the children of the cursor shape.
func (bd *Boundary) ClearShapeChildren() (shapes.Result, error) {
	return bd.mutate((*shapes.State).ClearChildren)
}

// AddShapeSolidFill appends a solid fill; alpha is a fraction in [0, 1].
func (bd *Boundary) AddShapeSolidFill(r, g, b uint8, alpha float32) (shapes.Result, error) {
	return bd.mutate(func(st *shapes.State) shapes.Result {
		return st.AddSolidFill(r, g, b, alpha)
	})
}

// ClearShapeFills empties the fills of the cursor shape.
func (bd *Boundary) ClearShapeFills() (shapes.Result, error) {
	return bd.mutate((*shapes.State).ClearFills)
}
