//go:build wasip1

package main

import (
	"unsafe"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/boundary"
)

// core is the single state behind the exports. The host calls one export at
// a time, so no locking is needed.
var core = boundary.New()

//go:wasmexport init
func initState(width, height int32) int32 {
	return int32(boundary.StatusOf(core.Init(width, height)))
}

//go:wasmexport resize
func resize(width, height int32) int32 {
	return int32(boundary.StatusOf(core.Resize(width, height)))
}

//go:wasmexport render_frame
func renderFrame(zoom, panX, panY float32) int32 {
	return int32(boundary.StatusOf(core.RenderFrame(zoom, panX, panY)))
}

//go:wasmexport reset_canvas
func resetCanvas() int32 {
	return int32(boundary.StatusOf(core.ResetCanvas()))
}

//go:wasmexport translate
func translate(dx, dy float32) int32 {
	return int32(boundary.StatusOf(core.Translate(dx, dy)))
}

//go:wasmexport scale
func scale(sx, sy float32) int32 {
	return int32(boundary.StatusOf(core.Scale(sx, sy)))
}

//go:wasmexport flush
func flush() int32 {
	return int32(boundary.StatusOf(core.Flush()))
}

//go:wasmexport use_shape
func useShape(a, b, c, d uint32) int32 {
	return int32(boundary.StatusOf(core.UseShape(a, b, c, d)))
}

//go:wasmexport set_shape_selrect
func setShapeSelrect(x1, y1, x2, y2 float32) int32 {
	return int32(boundary.ResultStatus(core.SetShapeSelrect(x1, y1, x2, y2)))
}

//go:wasmexport set_shape_rotation
func setShapeRotation(rotation float32) int32 {
	return int32(boundary.ResultStatus(core.SetShapeRotation(rotation)))
}

//go:wasmexport set_shape_transform
func setShapeTransform(a, b, c, d, e, f float32) int32 {
	return int32(boundary.ResultStatus(core.SetShapeTransform(a, b, c, d, e, f)))
}

//go:wasmexport add_shape_child
func addShapeChild(a, b, c, d uint32) int32 {
	return int32(boundary.ResultStatus(core.AddShapeChild(a, b, c, d)))
}

//go:wasmexport clear_shape_children
func clearShapeChildren() int32 {
	return int32(boundary.ResultStatus(core.ClearShapeChildren()))
}

// The wasm ABI has no 8-bit integers: channels travel as uint32 and only the
// low byte is used.
//
//go:wasmexport add_shape_solid_fill
func addShapeSolidFill(r, g, b uint32, a float32) int32 {
	return int32(boundary.ResultStatus(core.AddShapeSolidFill(uint8(r), uint8(g), uint8(b), a)))
}

//go:wasmexport clear_shape_fills
func clearShapeFills() int32 {
	return int32(boundary.ResultStatus(core.ClearShapeFills()))
}

// frame_ptr and frame_len expose the CPU frame for the host to blit.
// The buffer moves on resize; read both after every render.

//go:wasmexport frame_ptr
func framePtr() unsafe.Pointer {
	pix := pixels()
	if len(pix) == 0 {
		return nil
	}
	return unsafe.Pointer(&pix[0])
}

//go:wasmexport frame_len
func frameLen() int32 {
	return int32(len(pixels()))
}

func pixels() []byte {
	st := core.State()
	if st == nil {
		return nil
	}
	if s, ok := st.Surface().(*shapes.ImageSurface); ok {
		return s.Pixels()
	}
	return nil
}
