package shapes

import "fmt"

// State is the scene state behind the host call boundary: the shape store
// with its mutation cursor, the drawing surface and the renderer.
//
// A State is created once per host session and owns its surface until
// Close. It is NOT safe for concurrent use: exactly one call may be in
// flight at a time.
type State struct {
	store    *Store
	surface  Surface
	factory  SurfaceFactory
	renderer Renderer
	closed   bool
}

// New creates a State with a surface of the given viewport size.
func New(width, height int, opts ...StateOption) (*State, error) {
	options := defaultStateOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	surface, err := options.factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("shapes: create surface: %w", err)
	}

	Logger().Info("shapes: state initialized",
		"width", width, "height", height, "rotation", options.rotation)

	return &State{
		store:   NewStore(options.capacity),
		surface: surface,
		factory: options.factory,
		renderer: Renderer{
			Rotation: options.rotation,
			Visit:    options.visit,
		},
	}, nil
}

// Store returns the shape store.
func (st *State) Store() *Store { return st.store }

// Surface returns the current drawing surface. It changes on Resize.
func (st *State) Surface() Surface { return st.surface }

// Resize replaces the surface with a new one of the given size. The old
// surface is closed; shapes are kept. On error the old surface stays.
func (st *State) Resize(width, height int) error {
	if st.closed {
		return ErrStateClosed
	}
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	surface, err := st.factory(width, height)
	if err != nil {
		return fmt.Errorf("shapes: create surface: %w", err)
	}
	old := st.surface
	st.surface = surface
	if err := old.Close(); err != nil {
		Logger().Warn("shapes: release old surface", "err", err)
	}
	Logger().Info("shapes: surface resized", "width", width, "height", height)
	return nil
}

// ResetCanvas clears the surface and resets its transform to identity.
func (st *State) ResetCanvas() error {
	if st.closed {
		return ErrStateClosed
	}
	st.surface.Reset()
	return nil
}

// Translate applies a translation to the canvas transform.
func (st *State) Translate(dx, dy float32) error {
	if st.closed {
		return ErrStateClosed
	}
	st.surface.Translate(float64(dx), float64(dy))
	return nil
}

// Scale applies a scale to the canvas transform.
func (st *State) Scale(sx, sy float32) error {
	if st.closed {
		return ErrStateClosed
	}
	st.surface.Scale(float64(sx), float64(sy))
	return nil
}

// Render paints the tree rooted at root with the current canvas transform.
func (st *State) Render(root ID) error {
	if st.closed {
		return ErrStateClosed
	}
	return st.renderer.Render(st.store, st.surface, root)
}

// Flush submits the painted frame.
func (st *State) Flush() error {
	if st.closed {
		return ErrStateClosed
	}
	return st.surface.Flush()
}

// RenderFrame draws a full frame: reset the canvas, apply the view
// transform (scale by zoom, then translate by the pan in zoomed space),
// render from RootID and flush.
func (st *State) RenderFrame(zoom, panX, panY float32) error {
	if st.closed {
		return ErrStateClosed
	}
	st.surface.Reset()
	st.surface.Scale(float64(zoom), float64(zoom))
	st.surface.Translate(float64(panX), float64(panY))

	if err := st.renderer.Render(st.store, st.surface, RootID); err != nil {
		return err
	}
	Logger().Debug("shapes: frame rendered",
		"zoom", zoom, "pan_x", panX, "pan_y", panY, "shapes", st.store.Len())
	return st.surface.Flush()
}

// Use points the mutation cursor at id, creating the shape if needed.
// It does nothing after Close.
func (st *State) Use(id ID) {
	if st.closed {
		return
	}
	st.store.Use(id)
}

// mutate runs a store setter unless the state is closed. A closed state has
// no cursor, so the call is dropped and reports NoCursor.
func (st *State) mutate(fn func(*Store) Result) Result {
	if st.closed {
		Logger().Debug("shapes: mutation after close dropped")
		return NoCursor
	}
	return fn(st.store)
}

// SetSelrect overwrites the rect of the cursor shape.
func (st *State) SetSelrect(x1, y1, x2, y2 float32) Result {
	return st.mutate(func(s *Store) Result { return s.SetSelrect(x1, y1, x2, y2) })
}

// SetRotation overwrites the rotation of the cursor shape.
func (st *State) SetRotation(deg float32) Result {
	return st.mutate(func(s *Store) Result { return s.SetRotation(deg) })
}

// SetTransform overwrites the matrix of the cursor shape.
func (st *State) SetTransform(a, b, c, d, e, f float32) Result {
	return st.mutate(func(s *Store) Result { return s.SetTransform(a, b, c, d, e, f) })
}

// AddChild appends id to the children of the cursor shape.
func (st *State) AddChild(id ID) Result {
	return st.mutate(func(s *Store) Result { return s.AddChild(id) })
}

// ClearChildren empties the children of the cursor shape.
func (st *State) ClearChildren() Result {
	return st.mutate((*Store).ClearChildren)
}

// AddSolidFill appends a solid fill to the cursor shape.
func (st *State) AddSolidFill(r, g, b uint8, alpha float32) Result {
	return st.mutate(func(s *Store) Result { return s.AddSolidFill(r, g, b, alpha) })
}

// ClearFills empties the fills of the cursor shape.
func (st *State) ClearFills() Result {
	return st.mutate((*Store).ClearFills)
}

// Close releases the surface. Close is idempotent. After Close, canvas
// calls return ErrStateClosed, Use does nothing and setters report NoCursor;
// the store stays readable.
func (st *State) Close() error {
	if st.closed {
		return nil
	}
	st.closed = true
	Logger().Info("shapes: state closed")
	return st.surface.Close()
}
