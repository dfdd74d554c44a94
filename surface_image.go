package shapes

import "github.com/gogpu/gg"

// ImageSurface is a CPU surface backed by a gg.Context.
//
// It is the surface used when no GPU device is supplied: the wasm build,
// the CLI and tests. Flush hands pending work to a registered gg GPU
// accelerator, if any, and is otherwise a no-op.
type ImageSurface struct {
	contextSurface
}

var (
	_ Surface     = (*ImageSurface)(nil)
	_ Snapshotter = (*ImageSurface)(nil)
)

// NewImageSurface creates a transparent surface of the given size.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return newImageSurface(width, height), nil
}

func newImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{contextSurface{dc: gg.NewContext(width, height)}}
}

// Pixels returns the surface pixel buffer, 4 bytes per pixel, row-major.
// The slice is owned by the surface and valid until the next Resize or Close.
func (s *ImageSurface) Pixels() []byte {
	return s.dc.ResizeTarget().Data()
}

// Flush submits pending accelerator work to the pixel buffer.
func (s *ImageSurface) Flush() error {
	if s.closed {
		return ErrSurfaceClosed
	}
	return s.dc.FlushGPU()
}

// Close releases the drawing context.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}

// ImageSurfaceFactory is a SurfaceFactory producing ImageSurfaces.
func ImageSurfaceFactory(width, height int) (Surface, error) {
	return NewImageSurface(width, height)
}
