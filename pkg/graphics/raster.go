package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleKappa is the cubic bezier control distance approximating a
// quarter circle arc.
const circleKappa = 4.0 / 3.0 * 0.41421356237 // 4/3 * (sqrt(2)-1)

// rasterState is one entry of the save/restore stack.
type rasterState struct {
	// Transform as axis-aligned scale plus translation, applied as
	// device = point*scale + offset.
	scaleX, scaleY   float64
	offsetX, offsetY float64
	clip             Rect // device-space clip
}

// RasterCanvas implements Canvas with a pure-software rasterizer writing
// into an image.RGBA. Circles and rectangles are converted to paths and
// filled through golang.org/x/image/vector with antialiasing.
type RasterCanvas struct {
	dst   *image.RGBA
	state rasterState
	stack []rasterState
}

// NewRasterCanvas creates a software canvas rendering into a new RGBA
// image of the given pixel dimensions.
func NewRasterCanvas(width, height int) *RasterCanvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &RasterCanvas{
		dst: image.NewRGBA(image.Rect(0, 0, width, height)),
		state: rasterState{
			scaleX: 1,
			scaleY: 1,
			clip:   RectFromLTWH(0, 0, float64(width), float64(height)),
		},
	}
}

// Image returns the backing image. The canvas keeps drawing into the
// same image across calls.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.offsetX += dx * c.state.scaleX
	c.state.offsetY += dy * c.state.scaleY
}

func (c *RasterCanvas) Scale(sx, sy float64) {
	c.state.scaleX *= sx
	c.state.scaleY *= sy
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	c.state.clip = c.state.clip.Intersect(c.mapRect(rect))
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	device := c.mapRect(rect)
	if device.IsEmpty() {
		return
	}
	c.fillPath([]Offset{
		{X: device.Left, Y: device.Top},
		{X: device.Right, Y: device.Top},
		{X: device.Right, Y: device.Bottom},
		{X: device.Left, Y: device.Bottom},
	}, nil, paint)
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	// A circle under a non-uniform scale is an ellipse; four transformed
	// cubic segments keep the shape exact under axis-aligned transforms.
	rx := radius * c.state.scaleX
	ry := radius * c.state.scaleY
	cx := center.X*c.state.scaleX + c.state.offsetX
	cy := center.Y*c.state.scaleY + c.state.offsetY
	if rx == 0 || ry == 0 {
		return
	}
	kx := circleKappa * rx
	ky := circleKappa * ry

	anchors := []Offset{
		{X: cx + rx, Y: cy},
		{X: cx, Y: cy + ry},
		{X: cx - rx, Y: cy},
		{X: cx, Y: cy - ry},
	}
	controls := [][2]Offset{
		{{X: cx + rx, Y: cy + ky}, {X: cx + kx, Y: cy + ry}},
		{{X: cx - kx, Y: cy + ry}, {X: cx - rx, Y: cy + ky}},
		{{X: cx - rx, Y: cy - ky}, {X: cx - kx, Y: cy - ry}},
		{{X: cx + kx, Y: cy - ry}, {X: cx + rx, Y: cy - ky}},
	}
	c.fillPath(anchors, controls, paint)
}

func (c *RasterCanvas) Size() Size {
	bounds := c.dst.Bounds()
	return Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
}

// fillPath rasterizes a closed path given by device-space anchor points.
// When controls is non-nil it holds one cubic control pair per segment;
// otherwise segments are straight lines.
func (c *RasterCanvas) fillPath(anchors []Offset, controls [][2]Offset, paint Paint) {
	effective := paint.EffectiveColor()
	if effective.Alpha() == 0 || len(anchors) == 0 {
		return
	}

	area := c.clipBounds()
	if area.Empty() {
		return
	}

	z := vector.NewRasterizer(area.Dx(), area.Dy())
	ox := float64(area.Min.X)
	oy := float64(area.Min.Y)
	z.MoveTo(float32(anchors[0].X-ox), float32(anchors[0].Y-oy))
	for i := range anchors {
		next := anchors[(i+1)%len(anchors)]
		if controls == nil {
			z.LineTo(float32(next.X-ox), float32(next.Y-oy))
			continue
		}
		cp := controls[i]
		z.CubeTo(
			float32(cp[0].X-ox), float32(cp[0].Y-oy),
			float32(cp[1].X-ox), float32(cp[1].Y-oy),
			float32(next.X-ox), float32(next.Y-oy),
		)
	}
	z.ClosePath()
	z.Draw(c.dst, area, image.NewUniform(toNRGBA(effective)), image.Point{})
}

// clipBounds returns the device-space clip as pixel bounds within the
// destination image.
func (c *RasterCanvas) clipBounds() image.Rectangle {
	clip := c.state.clip
	rect := image.Rect(
		int(math.Floor(clip.Left)),
		int(math.Floor(clip.Top)),
		int(math.Ceil(clip.Right)),
		int(math.Ceil(clip.Bottom)),
	)
	return rect.Intersect(c.dst.Bounds())
}

// mapRect transforms a local-space rect to device space, normalizing
// flipped edges produced by negative scales.
func (c *RasterCanvas) mapRect(r Rect) Rect {
	left := r.Left*c.state.scaleX + c.state.offsetX
	right := r.Right*c.state.scaleX + c.state.offsetX
	top := r.Top*c.state.scaleY + c.state.offsetY
	bottom := r.Bottom*c.state.scaleY + c.state.offsetY
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func toNRGBA(c Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}
