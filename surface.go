package shapes

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Surface is the drawing target a scene is rendered onto.
//
// It owns the pixels and the canvas state: the active transform and the
// stack of saved transforms. Translate, Scale and Concat post-multiply the
// active transform, so later operations act in the coordinate space set up
// by earlier ones.
//
// Surfaces are NOT safe for concurrent use.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Reset clears to fully transparent, drops saved states and sets the
	// active transform to identity.
	Reset()

	// Translate applies a translation to the active transform.
	Translate(dx, dy float64)

	// Scale applies a scale to the active transform.
	Scale(sx, sy float64)

	// Save pushes the active transform.
	Save()

	// Restore pops the last saved transform. It is a no-op when nothing
	// was saved.
	Restore()

	// Concat multiplies the active transform by m (active * m).
	Concat(m gg.Matrix)

	// Matrix returns the active transform.
	Matrix() gg.Matrix

	// FillRect paints r with f using source-over compositing.
	FillRect(r Rect, f Fill) error

	// Flush submits the painted frame. It returns once the work is
	// handed over, not when the GPU has finished it.
	Flush() error

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Snapshotter is implemented by surfaces whose pixels can be read back.
type Snapshotter interface {
	Image() image.Image
}

// SurfaceFactory creates a surface of the given size.
type SurfaceFactory func(width, height int) (Surface, error)

// contextSurface implements the drawing half of Surface on a gg.Context.
type contextSurface struct {
	dc     *gg.Context
	depth  int
	closed bool
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

func (s *contextSurface) Width() int  { return s.dc.Width() }
func (s *contextSurface) Height() int { return s.dc.Height() }

func (s *contextSurface) Reset() {
	for ; s.depth > 0; s.depth-- {
		s.dc.Pop()
	}
	s.dc.Clear()
	s.dc.ClearPath()
	s.dc.Identity()
}

func (s *contextSurface) Translate(dx, dy float64) { s.dc.Translate(dx, dy) }
func (s *contextSurface) Scale(sx, sy float64)     { s.dc.Scale(sx, sy) }
func (s *contextSurface) Concat(m gg.Matrix)       { s.dc.Transform(m) }
func (s *contextSurface) Matrix() gg.Matrix        { return s.dc.GetTransform() }

func (s *contextSurface) Save() {
	s.dc.Push()
	s.depth++
}

func (s *contextSurface) Restore() {
	if s.depth == 0 {
		return
	}
	s.dc.Pop()
	s.depth--
}

func (s *contextSurface) FillRect(r Rect, f Fill) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	n := r.Normalized()
	if n.Width() == 0 || n.Height() == 0 || f.A == 0 {
		return nil
	}
	s.dc.SetRGBA(
		float64(f.R)/0xff,
		float64(f.G)/0xff,
		float64(f.B)/0xff,
		float64(f.A)/0xff,
	)
	s.dc.DrawRectangle(float64(n.X1), float64(n.Y1), float64(n.Width()), float64(n.Height()))
	return s.dc.Fill()
}

func (s *contextSurface) Image() image.Image {
	_ = s.dc.FlushGPU()
	return s.dc.Image()
}
