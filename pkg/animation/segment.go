package animation

import "time"

// Segment is one interpolation span: a start time, a duration, and an
// easing curve. It owns no values of its own — callers pair it with
// [Tween]s and sample all of them with the same eased progress, which is
// how a single timing source animates several channels in lockstep.
//
// Segment is poll-driven: it never schedules anything. Each call to
// Progress or Eased samples the package clock, so a host that stops
// calling simply freezes the animation with no resource to leak.
type Segment struct {
	// StartTime anchors progress computation. Restart() resets it to the
	// current clock time.
	StartTime time.Time

	// Duration is the span length. A non-positive duration makes the
	// segment complete immediately.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64
}

// NewSegment returns a segment starting now with the given duration and
// curve.
func NewSegment(duration time.Duration, curve func(float64) float64) Segment {
	return Segment{
		StartTime: Now(),
		Duration:  duration,
		Curve:     curve,
	}
}

// Restart re-anchors the segment at the current clock time with a new
// duration, keeping the curve.
func (s *Segment) Restart(duration time.Duration) {
	s.StartTime = Now()
	s.Duration = duration
}

// Progress returns the linear fraction of the segment elapsed so far,
// clamped to [0, 1].
func (s *Segment) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	t := float64(Since(s.StartTime)) / float64(s.Duration)
	return clampUnit(t)
}

// Eased returns the curve-transformed progress.
func (s *Segment) Eased() float64 {
	t := s.Progress()
	if s.Curve == nil {
		return t
	}
	return s.Curve(t)
}

// Done reports whether progress has reached 1 within tolerance. The
// tolerance absorbs float rounding at the end of a span; pass 0 for an
// exact comparison.
func (s *Segment) Done(tolerance float64) bool {
	return s.Progress() >= 1-tolerance
}
