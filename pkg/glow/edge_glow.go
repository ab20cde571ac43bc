// Package glow implements an Android-style overscroll edge glow: a
// circular highlight that grows while content is dragged past its
// boundary, flashes when a fling hits the boundary, and fades back out.
//
// # Lifecycle
//
// An [EdgeGlow] is owned by one scrollable surface and lives as long as
// that surface. The host drives it with three triggers and one frame
// call:
//
//	glow := glow.New(theme.DefaultGlow())
//	glow.SetSize(width, height)
//
//	// on drag past the edge
//	glow.PullAt(delta, displacement)
//
//	// on pointer up
//	glow.Release()
//
//	// on fling impact
//	glow.Absorb(velocity)
//
//	// every frame
//	if glow.Draw(canvas) {
//	    scheduleAnotherFrame()
//	}
//
// Draw's boolean is the only repaint signal: the host keeps invalidating
// while it returns true and stops when it returns false. There are no
// internal timers or callbacks; every call samples the animation clock.
//
// EdgeGlow is not safe for concurrent use. The host must drive it from a
// single rendering thread, which is how UI frameworks serialize input and
// paint anyway.
package glow

import (
	"math"
	"time"

	"github.com/go-drift/overscroll/pkg/animation"
	"github.com/go-drift/overscroll/pkg/graphics"
	"github.com/go-drift/overscroll/pkg/theme"
)

const (
	// pullDistanceAlphaFactor converts accumulated pull distance into
	// added glow opacity.
	pullDistanceAlphaFactor = 0.8

	// velocityGlowFactor converts impact velocity into absorb opacity.
	velocityGlowFactor = 6

	// maxGlowScale bounds the reported maximum effect width relative to
	// the surface width.
	maxGlowScale = 2.0

	// completionEpsilon is the tolerance for treating an interpolation
	// segment as finished.
	completionEpsilon = 0.001
)

// The glow circle is sized so the visible sliver forms a 30° sector
// chord across the surface.
var (
	glowSin = math.Sin(math.Pi / 6)
	glowCos = math.Cos(math.Pi / 6)
)

// EdgeGlow holds the animation state and geometry of one edge's glow.
// Surfaces with two glowing edges own two instances.
type EdgeGlow struct {
	tuning theme.Glow
	paint  graphics.Paint

	state        state
	pullDistance float64

	// Current interpolated values, sampled on every Draw.
	alpha float64
	scale float64

	segment    animation.Segment
	alphaTween animation.Tween[float64]
	scaleTween animation.Tween[float64]

	// Lateral position of the contact point, smoothed toward its target
	// on every update.
	displacement       float64
	targetDisplacement float64

	bounds    graphics.Rect
	radius    float64
	baseScale float64
}

// New creates an idle edge glow with the given tuning.
func New(tuning theme.Glow) *EdgeGlow {
	paint := graphics.DefaultPaint()
	paint.Color = tuning.Color
	return &EdgeGlow{
		tuning:             tuning,
		paint:              paint,
		displacement:       0.5,
		targetDisplacement: 0.5,
		segment:            animation.NewSegment(0, animation.Decelerate),
		baseScale:          1,
	}
}

// SetSize sets the effect surface size in pixels. It recomputes the glow
// geometry without resetting any in-flight animation and may be called
// on every layout change.
func (e *EdgeGlow) SetSize(width, height float64) {
	r := height * 0.5 / glowSin
	h := r - glowCos*r

	or := width * 0.75 / glowSin
	oh := or - glowCos*or

	e.radius = r
	if h > 0 {
		e.baseScale = math.Min(oh/h, 1)
	} else {
		e.baseScale = 1
	}

	e.bounds = graphics.RectFromLTWH(0, 0, width, math.Min(height, h))
}

// IsFinished reports whether the animation is at rest. If Draw returned
// true the host should schedule another frame and check again after it.
func (e *EdgeGlow) IsFinished() bool {
	return e.state == stateIdle
}

// Finish immediately ends the current animation. After this call
// IsFinished returns true.
func (e *EdgeGlow) Finish() {
	e.state = stateIdle
}

// Pull updates the effect for content dragged past the edge with the
// contact point centered. deltaDistance is the change since the last
// call as a fraction of the surface extent; negative values express
// movement back toward the edge.
func (e *EdgeGlow) Pull(deltaDistance float64) {
	e.PullAt(deltaDistance, 0.5)
}

// PullAt is Pull with a known contact point. displacement is the lateral
// position of the finger along the effect, from 0 to 1.
func (e *EdgeGlow) PullAt(deltaDistance, displacement float64) {
	e.targetDisplacement = displacement
	if e.state == statePullDecay && !e.segment.Done(0) {
		// Re-pulls during decay are debounced; only the displacement
		// target moves.
		return
	}
	if e.state != statePull {
		e.scale = math.Max(0, e.scale)
	}
	e.state = statePull
	e.segment.Restart(e.tuning.PullTime)

	e.pullDistance += deltaDistance

	e.alpha = math.Min(e.tuning.MaxAlpha, e.alpha+math.Abs(deltaDistance)*pullDistanceAlphaFactor)

	if e.pullDistance == 0 || e.bounds.Width() <= 0 {
		e.scale = 0
	} else {
		e.scale = math.Max(0, 1-1/math.Sqrt(math.Abs(e.pullDistance)*e.bounds.Width())-0.3) / 0.7
	}

	// A pull snaps to the new values; the later decay phase is what
	// animates.
	e.alphaTween = snapTween(e.alpha)
	e.scaleTween = snapTween(e.scale)
}

// Release begins the fade-out after a pull. Calling it in any state
// other than a pull or its decay is a no-op.
func (e *EdgeGlow) Release() {
	e.pullDistance = 0

	if e.state != statePull && e.state != statePullDecay {
		return
	}

	e.state = stateRecede
	e.alphaTween = *animation.TweenFloat64(e.alpha, 0)
	e.scaleTween = *animation.TweenFloat64(e.scale, 0)
	e.segment.Restart(e.tuning.RecedeTime)
}

// Absorb flashes the glow for a fling impact at the given velocity in
// pixels per second. The magnitude is clamped to the tuning's velocity
// bounds; sign is ignored.
func (e *EdgeGlow) Absorb(velocity int) {
	e.state = stateAbsorb
	if velocity < 0 {
		velocity = -velocity
	}
	if velocity < e.tuning.MinVelocity {
		velocity = e.tuning.MinVelocity
	}
	if velocity > e.tuning.MaxVelocity {
		velocity = e.tuning.MaxVelocity
	}

	e.segment.StartTime = animation.Now()
	e.segment.Duration = absorbDuration(velocity)

	// The glow depends more on the velocity, and therefore starts out
	// nearly invisible.
	alphaStart := 0.3
	scaleStart := math.Max(e.scale, 0)

	// Growth is quadratic in velocity so the effect intensifies with
	// scrolling speed.
	scaleEnd := math.Min(0.025+float64(velocity)*float64(velocity/100)*0.00015/2, 1.0)
	alphaEnd := math.Max(alphaStart,
		math.Min(float64(velocity)*velocityGlowFactor*0.00001, e.tuning.MaxAlpha))

	e.alphaTween = *animation.TweenFloat64(alphaStart, alphaEnd)
	e.scaleTween = *animation.TweenFloat64(scaleStart, scaleEnd)
	e.targetDisplacement = 0.5
}

// absorbDuration preserves the original effect's timing formula,
// 0.15 + velocity*0.02 in fractional milliseconds.
func absorbDuration(velocity int) time.Duration {
	return time.Duration((0.15 + float64(velocity)*0.02) * float64(time.Millisecond))
}

// SetColor sets the glow color in ARGB.
func (e *EdgeGlow) SetColor(color graphics.Color) {
	e.paint.Color = color
}

// Color returns the glow color in ARGB.
func (e *EdgeGlow) Color() graphics.Color {
	return e.paint.Color
}

// MaxWidth returns the maximum width the effect may be drawn at for the
// size set via SetSize.
func (e *EdgeGlow) MaxWidth() int {
	return int(e.bounds.Width()*maxGlowScale + 0.5)
}

// Draw advances the animation and paints the glow into the canvas.
// It assumes the canvas has been rotated into the edge's frame and the
// size has been set; the transform it applies is left on the canvas, so
// hosts save and restore around the call. Returns true if drawing
// should continue beyond this frame.
func (e *EdgeGlow) Draw(canvas graphics.Canvas) bool {
	e.update()

	centerX := e.bounds.Width() - e.radius
	centerY := e.bounds.Center().Y

	graphics.ScaleAbout(canvas, math.Min(e.scale, 1)*e.baseScale, 1, 0, centerY)

	displacement := graphics.Clamp(e.displacement, 0, 1) - 0.5
	translateY := e.bounds.Height() * displacement / 2

	paint := e.paint
	paint.Alpha = e.alpha
	canvas.DrawCircle(graphics.Offset{X: centerX, Y: centerY + translateY}, e.radius, paint)

	// Guarantee one final paint at the fully faded state before the
	// host is told to stop scheduling frames.
	oneLastFrame := false
	if e.state == stateRecede && e.scale == 0 {
		e.state = stateIdle
		oneLastFrame = true
	}

	return e.state != stateIdle || oneLastFrame
}

// update samples the interpolation segment and performs state
// transitions when it completes.
func (e *EdgeGlow) update() {
	interp := e.segment.Eased()

	e.alpha = e.alphaTween.Evaluate(interp)
	e.scale = e.scaleTween.Evaluate(interp)
	e.displacement = (e.displacement + e.targetDisplacement) / 2

	if !e.segment.Done(completionEpsilon) {
		return
	}

	switch e.state {
	case stateAbsorb:
		e.state = stateRecede
		e.segment.Restart(e.tuning.RecedeTime)
		e.alphaTween = *animation.TweenFloat64(e.alpha, 0)
		e.scaleTween = *animation.TweenFloat64(e.scale, 0)
	case statePull:
		e.state = statePullDecay
		e.segment.Restart(e.tuning.PullDecayTime)
		e.alphaTween = *animation.TweenFloat64(e.alpha, 0)
		e.scaleTween = *animation.TweenFloat64(e.scale, 0)
	case statePullDecay:
		// The decay already animated to zero; recede with the segment
		// and targets as they stand.
		e.state = stateRecede
	case stateRecede:
		e.state = stateIdle
	case stateIdle:
	}
}

// snapTween pins both endpoints to the same value, so sampling at any
// progress yields the value itself.
func snapTween(value float64) animation.Tween[float64] {
	return *animation.TweenFloat64(value, value)
}
