package shapes

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// RotationMode selects how a shape's Rotation field takes part in rendering.
type RotationMode int

const (
	// RotationAsMetadata keeps Rotation as stored data only. The host is
	// expected to bake rotation into the shape transform, which is what
	// the editor front end does.
	RotationAsMetadata RotationMode = iota

	// RotationAboutCenter rotates the shape by Rotation degrees about the
	// center of its selrect, applied after the shape transform. Children
	// inherit the rotation.
	RotationAboutCenter
)

// String returns the mode name.
func (m RotationMode) String() string {
	switch m {
	case RotationAsMetadata:
		return "metadata"
	case RotationAboutCenter:
		return "center"
	default:
		return fmt.Sprintf("RotationMode(%d)", int(m))
	}
}

// Visitor is called for every shape the renderer paints, before its fills,
// with the tree depth (0 for the start shape) and the active transform.
type Visitor func(id ID, depth int, m gg.Matrix)

// Renderer walks a Store and paints it onto a Surface.
//
// The walk is depth-first pre-order. Each shape's transform is multiplied
// into the active transform and restored afterwards, so children draw in
// their parent's space and siblings never see each other's transforms.
// Children missing from the store are skipped.
//
// The zero Renderer is ready to use.
type Renderer struct {
	Rotation RotationMode
	Visit    Visitor
}

// Render paints the tree rooted at root. Rendering an id that is not in the
// store paints nothing. The store is not modified.
func (r *Renderer) Render(store *Store, s Surface, root ID) error {
	sh, ok := store.Lookup(root)
	if !ok {
		return nil
	}
	w := walker{r: r, store: store, s: s, onPath: make(map[ID]struct{})}
	return w.visit(sh, 0)
}

type walker struct {
	r      *Renderer
	store  *Store
	s      Surface
	onPath map[ID]struct{}
}

func (w *walker) visit(sh *Shape, depth int) error {
	w.onPath[sh.ID] = struct{}{}
	defer delete(w.onPath, sh.ID)

	w.s.Save()
	defer w.s.Restore()

	w.s.Concat(sh.Transform.Matrix())
	if w.r.Rotation == RotationAboutCenter && sh.Rotation != 0 {
		w.s.Concat(rotationAbout(sh))
	}

	if w.r.Visit != nil {
		w.r.Visit(sh.ID, depth, w.s.Matrix())
	}

	for _, f := range sh.Fills {
		if err := w.s.FillRect(sh.Selrect, f); err != nil {
			return fmt.Errorf("shapes: fill %s: %w", sh.ID, err)
		}
	}

	for _, id := range sh.Children {
		child, ok := w.store.Lookup(id)
		if !ok {
			continue
		}
		if _, cyclic := w.onPath[id]; cyclic {
			Logger().Warn("shapes: cycle in shape tree, child skipped",
				"parent", sh.ID, "child", id)
			continue
		}
		if err := w.visit(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// rotationAbout returns the rotation of sh about its selrect center.
func rotationAbout(sh *Shape) gg.Matrix {
	cx, cy := sh.Selrect.Center()
	rad := float64(sh.Rotation) * math.Pi / 180
	return gg.Translate(float64(cx), float64(cy)).
		Multiply(gg.Rotate(rad)).
		Multiply(gg.Translate(-float64(cx), -float64(cy)))
}
