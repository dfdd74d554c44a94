package shapes

import (
	"fmt"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// CanvasSurface is a GPU-backed surface bound to a host device.
//
// Painting happens on the canvas' gg.Context; Flush uploads the frame to a
// GPU texture owned by the canvas. The device itself belongs to the windowing
// layer that supplied the provider.
type CanvasSurface struct {
	contextSurface
	canvas *ggcanvas.Canvas
}

var (
	_ Surface     = (*CanvasSurface)(nil)
	_ Snapshotter = (*CanvasSurface)(nil)
)

// NewCanvasSurface creates a surface of the given size on provider's device.
func NewCanvasSurface(provider gpucontext.DeviceProvider, width, height int) (*CanvasSurface, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	canvas, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("shapes: create canvas: %w", err)
	}
	Logger().Debug("shapes: canvas surface created",
		"width", width, "height", height, "format", provider.SurfaceFormat())
	return &CanvasSurface{
		contextSurface: contextSurface{dc: canvas.Context()},
		canvas:         canvas,
	}, nil
}

// Flush uploads the frame to the GPU texture.
// It returns after the upload is queued.
func (s *CanvasSurface) Flush() error {
	if s.closed {
		return ErrSurfaceClosed
	}
	s.canvas.MarkDirty()
	if _, err := s.canvas.Flush(); err != nil {
		return fmt.Errorf("shapes: flush canvas: %w", err)
	}
	return nil
}

// Texture returns the GPU texture holding the last flushed frame, or nil
// before the first Flush.
func (s *CanvasSurface) Texture() any {
	return s.canvas.Texture()
}

// Close destroys the texture and the drawing context.
func (s *CanvasSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.canvas.Close()
}

// CanvasSurfaceFactory returns a SurfaceFactory creating CanvasSurfaces on
// provider's device.
func CanvasSurfaceFactory(provider gpucontext.DeviceProvider) SurfaceFactory {
	return func(width, height int) (Surface, error) {
		return NewCanvasSurface(provider, width, height)
	}
}
