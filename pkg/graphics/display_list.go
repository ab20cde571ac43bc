package graphics

import "math"

// DisplayOp represents a recorded canvas drawing operation.
type DisplayOp struct {
	Op     string
	Params map[string]any
}

// DisplayList implements Canvas by recording operations instead of
// rendering them. Tests use it to assert on the draw commands an effect
// issued; values are rounded to two decimals so assertions stay stable
// across float noise.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// NewDisplayList creates a recording canvas with the given logical size.
func NewDisplayList(size Size) *DisplayList {
	return &DisplayList{size: size}
}

// Ops returns all recorded operations in order.
func (d *DisplayList) Ops() []DisplayOp {
	return d.ops
}

// OpsNamed returns the recorded operations with the given op name.
func (d *DisplayList) OpsNamed(name string) []DisplayOp {
	var matched []DisplayOp
	for _, op := range d.ops {
		if op.Op == name {
			matched = append(matched, op)
		}
	}
	return matched
}

// Reset discards all recorded operations.
func (d *DisplayList) Reset() {
	d.ops = nil
}

func (d *DisplayList) record(op string, params map[string]any) {
	d.ops = append(d.ops, DisplayOp{Op: op, Params: params})
}

func (d *DisplayList) Save() {
	d.record("save", nil)
}

func (d *DisplayList) Restore() {
	d.record("restore", nil)
}

func (d *DisplayList) Translate(dx, dy float64) {
	d.record("translate", map[string]any{"dx": round2(dx), "dy": round2(dy)})
}

func (d *DisplayList) Scale(sx, sy float64) {
	d.record("scale", map[string]any{"sx": round2(sx), "sy": round2(sy)})
}

func (d *DisplayList) ClipRect(rect Rect) {
	d.record("clipRect", map[string]any{"rect": serializeRect(rect)})
}

func (d *DisplayList) Clear(color Color) {
	d.record("clear", map[string]any{"color": uint32(color)})
}

func (d *DisplayList) DrawRect(rect Rect, paint Paint) {
	d.record("drawRect", map[string]any{
		"rect":  serializeRect(rect),
		"color": uint32(paint.EffectiveColor()),
	})
}

func (d *DisplayList) DrawCircle(center Offset, radius float64, paint Paint) {
	d.record("drawCircle", map[string]any{
		"cx":     round2(center.X),
		"cy":     round2(center.Y),
		"radius": round2(radius),
		"color":  uint32(paint.EffectiveColor()),
	})
}

func (d *DisplayList) Size() Size {
	return d.size
}

func serializeRect(r Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
