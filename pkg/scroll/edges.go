package scroll

import (
	"github.com/go-drift/overscroll/pkg/glow"
	"github.com/go-drift/overscroll/pkg/graphics"
	"github.com/go-drift/overscroll/pkg/theme"
)

// Edges owns the glow pair of a horizontally scrolling surface: Leading
// is the left boundary, Trailing the right. Each edge is its own
// EdgeGlow; only the edge being overscrolled lights up.
type Edges struct {
	Leading  *glow.EdgeGlow
	Trailing *glow.EdgeGlow

	width  float64
	height float64
}

// NewEdges creates an idle glow pair with the given tuning.
func NewEdges(tuning theme.Glow) *Edges {
	return &Edges{
		Leading:  glow.New(tuning),
		Trailing: glow.New(tuning),
	}
}

// SetSize sets the surface size in pixels for both edges.
func (e *Edges) SetSize(width, height float64) {
	e.width = width
	e.height = height
	e.Leading.SetSize(width, height)
	e.Trailing.SetSize(width, height)
}

// SetColor sets the glow color of both edges.
func (e *Edges) SetColor(color graphics.Color) {
	e.Leading.SetColor(color)
	e.Trailing.SetColor(color)
}

// pull routes a fractional overscroll delta to the edge it belongs to.
// Negative deltas overscroll the leading edge, positive the trailing.
func (e *Edges) pull(deltaFraction, displacement float64) {
	if deltaFraction < 0 {
		e.Leading.PullAt(-deltaFraction, displacement)
	} else if deltaFraction > 0 {
		e.Trailing.PullAt(deltaFraction, displacement)
	}
}

// absorb routes a fling impact to the edge the fling hit.
func (e *Edges) absorb(velocity int, leading bool) {
	if leading {
		e.Leading.Absorb(velocity)
	} else {
		e.Trailing.Absorb(velocity)
	}
}

// Release begins the fade-out on both edges. Held glows decay; idle
// edges ignore it.
func (e *Edges) Release() {
	e.Leading.Release()
	e.Trailing.Release()
}

// Finish immediately ends both animations.
func (e *Edges) Finish() {
	e.Leading.Finish()
	e.Trailing.Finish()
}

// IsFinished reports whether both edges are at rest.
func (e *Edges) IsFinished() bool {
	return e.Leading.IsFinished() && e.Trailing.IsFinished()
}

// Draw paints both edges into the canvas and returns true if another
// frame is needed. The trailing glow draws in place; the leading glow
// draws mirrored about the surface's vertical center line.
func (e *Edges) Draw(canvas graphics.Canvas) bool {
	canvas.Save()
	needsTrailing := e.Trailing.Draw(canvas)
	canvas.Restore()

	canvas.Save()
	canvas.Translate(e.width, 0)
	canvas.Scale(-1, 1)
	needsLeading := e.Leading.Draw(canvas)
	canvas.Restore()

	return needsTrailing || needsLeading
}
