package shapes

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle given by two corners.
// The corners are stored as set; X1 may be greater than X2.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

// Width returns X2 - X1. It is negative for inverted rects.
func (r Rect) Width() float32 { return r.X2 - r.X1 }

// Height returns Y2 - Y1. It is negative for inverted rects.
func (r Rect) Height() float32 { return r.Y2 - r.Y1 }

// Center returns the midpoint of the rect.
func (r Rect) Center() (x, y float32) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Normalized returns the rect with X1 <= X2 and Y1 <= Y2.
func (r Rect) Normalized() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Transform is a 2D affine matrix in canvas order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// This is the order of CanvasRenderingContext2D.transform and SVG matrix().
type Transform struct {
	A, B, C, D, E, F float32
}

// IdentityTransform returns the identity matrix (1, 0, 0, 1, 0, 0).
func IdentityTransform() Transform {
	return Transform{A: 1, D: 1}
}

// IsIdentity reports whether t is the identity matrix.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// Matrix converts t to gg's row-major layout.
func (t Transform) Matrix() gg.Matrix {
	return gg.Matrix{
		A: float64(t.A), B: float64(t.C), C: float64(t.E),
		D: float64(t.B), E: float64(t.D), F: float64(t.F),
	}
}

// Fill is a solid color paint layer with straight (non-premultiplied) alpha.
type Fill struct {
	R, G, B, A uint8
}

// SolidFill builds a fill from 8-bit channels and an alpha fraction.
//
// The alpha channel is floor(alpha*255): 1.0 gives 255, 0.5 gives 127.
// Fractions outside [0, 1] saturate and NaN gives 0.
func SolidFill(r, g, b uint8, alpha float32) Fill {
	return Fill{R: r, G: g, B: b, A: alpha8(alpha)}
}

func alpha8(alpha float32) uint8 {
	v := math.Floor(float64(alpha) * 0xff)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 0xff:
		return 0xff
	}
	return uint8(v)
}

// Shape is one node of the scene tree.
//
// Children are lookup keys into the Store, not owning references: a child
// need not exist and cycles are not checked.
type Shape struct {
	ID        ID
	Selrect   Rect
	Rotation  float32 // degrees
	Transform Transform
	Children  []ID
	Fills     []Fill
}

// NewShape returns a shape with a zero rect, no rotation, the identity
// transform and no children or fills.
func NewShape(id ID) *Shape {
	return &Shape{
		ID:        id,
		Transform: IdentityTransform(),
	}
}
