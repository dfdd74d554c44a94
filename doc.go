// Package shapes keeps a tree of vector shapes for an external host and
// renders it each frame with gg.
//
// # Overview
//
// A host (a scripting or orchestration layer) drives the package through a
// narrow, synchronous set of calls: it addresses a shape by ID, sets its
// attributes, links children, and asks for frames. Rasterization is left to
// gg; the GPU device comes from the host's windowing layer.
//
// # Quick Start
//
//	st, err := shapes.New(800, 600)
//	if err != nil {
//		return err
//	}
//	defer st.Close()
//
//	child := shapes.IDFromWords(0, 0, 0, 1)
//
//	st.Use(shapes.RootID)
//	st.AddChild(child)
//
//	st.Use(child)
//	st.SetSelrect(10, 10, 110, 60)
//	st.AddSolidFill(255, 0, 0, 1)
//
//	err = st.RenderFrame(1, 0, 0)
//
// # Architecture
//
//   - ID: 128-bit identifiers packed from four 32-bit words
//   - Shape: rect, rotation, transform, children and solid fills
//   - Store: shapes by ID plus the mutation cursor
//   - Surface: pixels and canvas transform stack (ImageSurface, CanvasSurface)
//   - Renderer: depth-first pre-order walk of the store onto a Surface
//   - State: all of the above behind the host call protocol
//
// The fixed-width call surface used by foreign hosts lives in package
// boundary.
//
// # Mutation cursor
//
// Use sets the cursor; every setter then applies to that shape. A setter
// called before any Use is dropped and reports NoCursor. The cursor is a
// single slot, so a host must finish one shape before addressing the next.
//
// # Coordinate System
//
// Shape transforms use canvas order (a, b, c, d, e, f) with e, f the
// translation. A child's transform is multiplied into its parent's, so
// children are positioned in their parent's space.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. One call at a time.
package shapes
