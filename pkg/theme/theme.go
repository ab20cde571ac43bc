// Package theme holds the tuning and color configuration for the edge
// glow effect. All values are process-wide immutable configuration from
// the effect's point of view: a Glow is resolved once and injected at
// construction, never mutated by the animation.
package theme

import (
	"time"

	"github.com/go-drift/overscroll/pkg/graphics"
)

// Glow describes the visual tuning of an edge glow effect.
type Glow struct {
	// Color is the ARGB glow color. The effect scales its alpha channel
	// by the animated glow opacity at draw time.
	Color graphics.Color

	// MaxAlpha caps the glow opacity (0.0 to 1.0).
	MaxAlpha float64

	// PullTime is how long a pull snap holds before decay begins.
	PullTime time.Duration

	// RecedeTime is how long the glow takes to fully fade after release
	// or absorb.
	RecedeTime time.Duration

	// PullDecayTime is how long a held, unreleased pull takes to fade.
	PullDecayTime time.Duration

	// MinVelocity and MaxVelocity bound the absorbed impact velocity in
	// pixels per second.
	MinVelocity int
	MaxVelocity int
}

// DefaultGlow returns the standard glow tuning with a neutral gray color
// suitable for light backgrounds.
func DefaultGlow() Glow {
	return Glow{
		Color:         graphics.RGB(0x66, 0x66, 0x66),
		MaxAlpha:      0.5,
		PullTime:      167 * time.Millisecond,
		RecedeTime:    600 * time.Millisecond,
		PullDecayTime: 2000 * time.Millisecond,
		MinVelocity:   100,
		MaxVelocity:   10000,
	}
}

// DarkGlow returns the default tuning with a lighter glow color for dark
// backgrounds.
func DarkGlow() Glow {
	g := DefaultGlow()
	g.Color = graphics.RGB(0xCC, 0xCC, 0xCC)
	return g
}
