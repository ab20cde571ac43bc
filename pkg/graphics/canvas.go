// Package graphics provides the drawing surface abstraction and the small
// geometry, color and paint types the overscroll effect draws with.
//
// # Canvas Implementations
//
// Three implementations ship with the module:
//
//   - [DisplayList]: records drawing commands for inspection. Used by tests
//     to assert on what an effect painted without rasterizing anything.
//
//   - [RasterCanvas]: a software rasterizer producing an image.RGBA, built
//     on golang.org/x/image/vector. Useful for headless rendering and
//     golden-image style verification.
//
//   - The demo application's ebiten-backed canvas (see cmd/glowdemo), which
//     renders on the GPU.
//
// Coordinate transforms are limited to translation and axis-aligned scaling;
// that is all the effect requires, and it keeps software rasterization exact.
package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawCircle draws a circle with the provided paint. Under a
	// non-uniform scale the circle renders as an ellipse.
	DrawCircle(center Offset, radius float64, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

// ScaleAbout scales the canvas coordinate system by (sx, sy) keeping the
// pivot point fixed. Equivalent to translate-scale-translate, which is how
// pivot scaling decomposes on a Canvas that only exposes plain Scale.
func ScaleAbout(canvas Canvas, sx, sy, px, py float64) {
	canvas.Translate(px, py)
	canvas.Scale(sx, sy)
	canvas.Translate(-px, -py)
}
