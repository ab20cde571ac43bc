// Package scroll provides a minimal scroll position with clamping
// physics and ballistic flings, wired to the edge glow: drag overscroll
// pulls the glow, pointer release releases it, and a fling reaching a
// boundary absorbs its impact velocity. It is the host-side plumbing a
// scrollable surface needs to own an [glow.EdgeGlow] pair.
package scroll

import (
	"math"

	"github.com/go-drift/overscroll/pkg/graphics"
)

// Position stores the current scroll offset and extents for one
// horizontally scrolling surface.
type Position struct {
	offset   float64
	min      float64
	max      float64
	viewport float64

	onUpdate  func()
	edges     *Edges
	ballistic *ballisticState
}

// NewPosition creates a scroll position at offset zero. onUpdate fires
// whenever the offset changes; hosts typically schedule a repaint there.
func NewPosition(onUpdate func()) *Position {
	return &Position{onUpdate: onUpdate}
}

// SetEdges attaches a glow pair. A nil Edges detaches it; scrolling then
// clamps silently.
func (p *Position) SetEdges(edges *Edges) {
	p.edges = edges
}

// Offset returns the current scroll offset.
func (p *Position) Offset() float64 {
	return p.offset
}

// SetOffset moves directly to an offset, clamped to the extents.
func (p *Position) SetOffset(value float64) {
	clamped := graphics.Clamp(value, p.min, p.max)
	if clamped == p.offset {
		return
	}
	p.offset = clamped
	p.notify()
}

// SetExtents updates the min/max scroll range, re-clamping the offset.
func (p *Position) SetExtents(min, max float64) {
	if max < min {
		max = min
	}
	p.min = min
	p.max = max
	p.SetOffset(p.offset)
}

// SetViewport sets the viewport extent in pixels. The extent converts
// overscroll distances into the fractional pull amounts the glow takes.
func (p *Position) SetViewport(extent float64) {
	p.viewport = extent
}

// Drag applies a user drag delta. Movement past a boundary does not
// change the offset; the excess feeds the corresponding edge glow as a
// pull. displacement is the pointer's cross-axis position from 0 to 1.
func (p *Position) Drag(delta, displacement float64) {
	p.StopBallistic()

	proposed := p.offset + delta
	clamped := graphics.Clamp(proposed, p.min, p.max)
	overscroll := proposed - clamped

	if overscroll != 0 && p.edges != nil && p.viewport > 0 {
		p.edges.pull(overscroll/p.viewport, displacement)
	}

	if clamped != p.offset {
		p.offset = clamped
		p.notify()
	} else if overscroll != 0 {
		// Offset is pinned at the boundary but the glow changed.
		p.notify()
	}
}

// EndDrag releases any held edge glow. Call on pointer up or cancel.
func (p *Position) EndDrag() {
	if p.edges != nil {
		p.edges.Release()
	}
}

// Fling starts inertial scrolling with the given velocity in pixels per
// second. The ballistic advances through Step or StepAll.
func (p *Position) Fling(velocity float64) {
	p.StopBallistic()
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return
	}
	if math.Abs(velocity) < minBallisticVelocity {
		return
	}
	p.ballistic = newBallisticState(p, velocity)
	registerBallistic(p)
	p.notify()
}

// StopBallistic halts any ongoing inertial scroll.
func (p *Position) StopBallistic() {
	if p.ballistic != nil {
		unregisterBallistic(p)
		p.ballistic = nil
	}
}

// IsBallistic reports whether an inertial scroll is in progress.
func (p *Position) IsBallistic() bool {
	return p.ballistic != nil
}

func (p *Position) notify() {
	if p.onUpdate != nil {
		p.onUpdate()
	}
}
