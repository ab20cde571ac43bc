package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/overscroll/pkg/graphics"
)

// ellipseSegments is the polygon resolution for scaled circles.
const ellipseSegments = 48

// canvasState is one entry of the save/restore stack.
type canvasState struct {
	scaleX, scaleY   float64
	offsetX, offsetY float64
	clip             graphics.Rect
}

// ebitenCanvas implements graphics.Canvas on an ebiten image. Transforms
// are tracked on the CPU and baked into vertex positions, which keeps
// non-uniformly scaled circles (the glow's squished ellipse) exact.
type ebitenCanvas struct {
	dst   *ebiten.Image
	white *ebiten.Image
	state canvasState
	stack []canvasState

	vs []ebiten.Vertex
	is []uint16
}

func newEbitenCanvas(dst *ebiten.Image) *ebitenCanvas {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	bounds := dst.Bounds()
	return &ebitenCanvas{
		dst:   dst,
		white: white,
		state: canvasState{
			scaleX: 1,
			scaleY: 1,
			clip: graphics.RectFromLTWH(
				float64(bounds.Min.X), float64(bounds.Min.Y),
				float64(bounds.Dx()), float64(bounds.Dy()),
			),
		},
	}
}

// setTarget points the canvas at a new frame's image, resetting all
// transform state.
func (c *ebitenCanvas) setTarget(dst *ebiten.Image) {
	bounds := dst.Bounds()
	c.dst = dst
	c.stack = c.stack[:0]
	c.state = canvasState{
		scaleX: 1,
		scaleY: 1,
		clip: graphics.RectFromLTWH(
			float64(bounds.Min.X), float64(bounds.Min.Y),
			float64(bounds.Dx()), float64(bounds.Dy()),
		),
	}
}

func (c *ebitenCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *ebitenCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ebitenCanvas) Translate(dx, dy float64) {
	c.state.offsetX += dx * c.state.scaleX
	c.state.offsetY += dy * c.state.scaleY
}

func (c *ebitenCanvas) Scale(sx, sy float64) {
	c.state.scaleX *= sx
	c.state.scaleY *= sy
}

func (c *ebitenCanvas) ClipRect(rect graphics.Rect) {
	c.state.clip = c.state.clip.Intersect(c.mapRect(rect))
}

func (c *ebitenCanvas) Clear(col graphics.Color) {
	c.dst.Fill(toNRGBA(col))
}

func (c *ebitenCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	device := c.mapRect(rect)
	if device.IsEmpty() {
		return
	}
	target := c.clipTarget()
	if target == nil {
		return
	}
	vector.DrawFilledRect(target,
		float32(device.Left), float32(device.Top),
		float32(device.Width()), float32(device.Height()),
		toNRGBA(paint.EffectiveColor()), true)
}

func (c *ebitenCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	effective := paint.EffectiveColor()
	if effective.Alpha() == 0 || radius <= 0 {
		return
	}
	target := c.clipTarget()
	if target == nil {
		return
	}

	cx := center.X*c.state.scaleX + c.state.offsetX
	cy := center.Y*c.state.scaleY + c.state.offsetY
	rx := math.Abs(radius * c.state.scaleX)
	ry := math.Abs(radius * c.state.scaleY)
	if rx == 0 || ry == 0 {
		return
	}

	var path vector.Path
	for i := range ellipseSegments {
		angle := 2 * math.Pi * float64(i) / ellipseSegments
		px := float32(cx + rx*math.Cos(angle))
		py := float32(cy + ry*math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	r, g, b, a := effective.RGBAF()
	for i := range c.vs {
		c.vs[i].ColorR = float32(r)
		c.vs[i].ColorG = float32(g)
		c.vs[i].ColorB = float32(b)
		c.vs[i].ColorA = float32(a)
	}
	target.DrawTriangles(c.vs, c.is, c.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (c *ebitenCanvas) Size() graphics.Size {
	bounds := c.dst.Bounds()
	return graphics.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
}

// clipTarget returns the image restricted to the current clip, or nil
// when the clip is empty.
func (c *ebitenCanvas) clipTarget() *ebiten.Image {
	clip := c.state.clip
	if clip.IsEmpty() {
		return nil
	}
	full := c.dst.Bounds()
	rect := image.Rect(
		int(math.Floor(clip.Left)), int(math.Floor(clip.Top)),
		int(math.Ceil(clip.Right)), int(math.Ceil(clip.Bottom)),
	).Intersect(full)
	if rect == full {
		return c.dst
	}
	if rect.Empty() {
		return nil
	}
	return c.dst.SubImage(rect).(*ebiten.Image)
}

func (c *ebitenCanvas) mapRect(r graphics.Rect) graphics.Rect {
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
	return graphics.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func toNRGBA(c graphics.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}
