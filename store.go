package shapes

import (
	"bytes"
	"slices"
)

// DefaultCapacity is the number of shapes a Store reserves room for.
const DefaultCapacity = 2048

// Result reports whether a mutation reached a shape.
type Result int

const (
	// Applied means the cursor shape was updated.
	Applied Result = iota
	// NoCursor means no shape was addressed and the call was dropped.
	NoCursor
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Applied:
		return "Applied"
	case NoCursor:
		return "NoCursor"
	default:
		return "Unknown"
	}
}

// Store owns every shape and the mutation cursor.
//
// Shapes are created on first use and never removed. The cursor is kept as an
// ID and resolved on every mutation, so it never aliases map storage.
//
// Store is NOT safe for concurrent use.
type Store struct {
	shapes    map[ID]*Shape
	cursor    ID
	hasCursor bool
}

// NewStore creates an empty store sized for capacity shapes.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{shapes: make(map[ID]*Shape, capacity)}
}

// GetOrCreate returns the shape for id, inserting a default shape if absent.
func (s *Store) GetOrCreate(id ID) *Shape {
	if sh, ok := s.shapes[id]; ok {
		return sh
	}
	sh := NewShape(id)
	s.shapes[id] = sh
	return sh
}

// Lookup returns the shape for id without creating it.
func (s *Store) Lookup(id ID) (*Shape, bool) {
	sh, ok := s.shapes[id]
	return sh, ok
}

// Len returns the number of stored shapes.
func (s *Store) Len() int {
	return len(s.shapes)
}

// IDs returns all stored ids in byte order.
func (s *Store) IDs() []ID {
	ids := make([]ID, 0, len(s.shapes))
	for id := range s.shapes {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b ID) int {
		return bytes.Compare(a[:], b[:])
	})
	return ids
}

// Use points the cursor at id, creating the shape if needed.
// The cursor stays until the next Use.
func (s *Store) Use(id ID) {
	s.GetOrCreate(id)
	s.cursor = id
	s.hasCursor = true
}

// Cursor returns the addressed id and whether one is set.
func (s *Store) Cursor() (ID, bool) {
	return s.cursor, s.hasCursor
}

// current resolves the cursor with a fresh lookup.
func (s *Store) current() (*Shape, bool) {
	if !s.hasCursor {
		return nil, false
	}
	return s.Lookup(s.cursor)
}

// mutate runs fn on the cursor shape.
func (s *Store) mutate(fn func(*Shape)) Result {
	sh, ok := s.current()
	if !ok {
		Logger().Debug("shapes: mutation without cursor dropped")
		return NoCursor
	}
	fn(sh)
	return Applied
}

// SetSelrect overwrites the rect of the cursor shape. Corners are kept as given.
func (s *Store) SetSelrect(x1, y1, x2, y2 float32) Result {
	return s.mutate(func(sh *Shape) {
		sh.Selrect = Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
	})
}

// SetRotation overwrites the rotation, in degrees, of the cursor shape.
func (s *Store) SetRotation(deg float32) Result {
	return s.mutate(func(sh *Shape) {
		sh.Rotation = deg
	})
}

// SetTransform overwrites the matrix of the cursor shape.
// Arguments follow Transform's canvas order.
func (s *Store) SetTransform(a, b, c, d, e, f float32) Result {
	return s.mutate(func(sh *Shape) {
		sh.Transform = Transform{A: a, B: b, C: c, D: d, E: e, F: f}
	})
}

// AddChild appends id to the children of the cursor shape.
// Duplicates are kept and id need not exist.
func (s *Store) AddChild(id ID) Result {
	return s.mutate(func(sh *Shape) {
		sh.Children = append(sh.Children, id)
	})
}

// ClearChildren empties the children of the cursor shape.
func (s *Store) ClearChildren() Result {
	return s.mutate(func(sh *Shape) {
		sh.Children = sh.Children[:0]
	})
}

// AddSolidFill appends a solid fill to the cursor shape.
// See SolidFill for the alpha conversion.
func (s *Store) AddSolidFill(r, g, b uint8, alpha float32) Result {
	return s.mutate(func(sh *Shape) {
		sh.Fills = append(sh.Fills, SolidFill(r, g, b, alpha))
	})
}

// ClearFills empties the fills of the cursor shape.
func (s *Store) ClearFills() Result {
	return s.mutate(func(sh *Shape) {
		sh.Fills = sh.Fills[:0]
	})
}
