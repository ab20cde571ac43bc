// Package animation provides the timing primitives behind the overscroll
// effect: a replaceable clock, easing curves, value tweens, and the
// poll-driven [Segment] that samples an eased interpolation against
// elapsed wall-clock time.
//
// Unlike ticker-based animation systems, nothing in this package schedules
// callbacks. The effect's host drives every frame and each draw call
// samples the current time; Segment exists to make that sampling exact
// and testable.
package animation

import "time"

// Clock supplies the current time for animation sampling. The default
// implementation reads system time. Tests inject a fake clock via
// SetClock to advance animations deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = systemClock{}

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// Since returns the time elapsed on the active clock since t.
func Since(t time.Time) time.Duration { return clock.Now().Sub(t) }
