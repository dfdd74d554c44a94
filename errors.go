package shapes

import "errors"

// Errors returned by State and Surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("shapes: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("shapes: nil DeviceProvider")

	// ErrSurfaceClosed is returned when drawing on a closed surface.
	ErrSurfaceClosed = errors.New("shapes: surface is closed")

	// ErrStateClosed is returned by a State after Close.
	ErrStateClosed = errors.New("shapes: state is closed")
)
