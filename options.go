package shapes

import "github.com/gogpu/gpucontext"

// StateOption configures a State during creation.
//
// Example:
//
//	// CPU surface, default settings
//	st, err := shapes.New(800, 600)
//
//	// GPU surface on the host's device
//	st, err := shapes.New(800, 600, shapes.WithDeviceProvider(provider))
type StateOption func(*stateOptions)

type stateOptions struct {
	factory  SurfaceFactory
	capacity int
	rotation RotationMode
	visit    Visitor
}

func defaultStateOptions() stateOptions {
	return stateOptions{
		factory:  ImageSurfaceFactory,
		capacity: DefaultCapacity,
		rotation: RotationAsMetadata,
	}
}

// WithDeviceProvider renders onto a GPU canvas on provider's device.
// The provider must be ready before New is called.
func WithDeviceProvider(provider gpucontext.DeviceProvider) StateOption {
	return func(o *stateOptions) {
		o.factory = func(width, height int) (Surface, error) {
			if provider == nil {
				return nil, ErrNilProvider
			}
			return NewCanvasSurface(provider, width, height)
		}
	}
}

// WithSurfaceFactory sets the function used to create the drawing surface
// at New and on every Resize.
func WithSurfaceFactory(f SurfaceFactory) StateOption {
	return func(o *stateOptions) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithCapacity sets how many shapes the store reserves room for.
func WithCapacity(n int) StateOption {
	return func(o *stateOptions) {
		o.capacity = n
	}
}

// WithRotation selects how shape rotation is rendered.
// The default is RotationAsMetadata.
func WithRotation(mode RotationMode) StateOption {
	return func(o *stateOptions) {
		o.rotation = mode
	}
}

// WithVisitor installs a hook called for every painted shape.
func WithVisitor(v Visitor) StateOption {
	return func(o *stateOptions) {
		o.visit = v
	}
}
