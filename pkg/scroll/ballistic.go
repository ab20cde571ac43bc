package scroll

import (
	"math"
	"sync"
	"time"

	"github.com/go-drift/overscroll/pkg/animation"
)

// minBallisticVelocity is the speed below which a fling is not worth
// starting and a running one settles.
const minBallisticVelocity = 5.0

// maxBallisticDt caps a single integration step to avoid large jumps on
// the first frame or after stalls.
const maxBallisticDt = 0.032

type ballisticState struct {
	position *Position
	velocity float64
	lastTime time.Time
}

func newBallisticState(position *Position, velocity float64) *ballisticState {
	return &ballisticState{
		position: position,
		velocity: velocity,
		lastTime: animation.Now(),
	}
}

// step advances to now and returns true when the simulation is done.
func (b *ballisticState) step(now time.Time) bool {
	if now.Before(b.lastTime) {
		b.lastTime = now
		return false
	}
	dt := now.Sub(b.lastTime).Seconds()
	b.lastTime = now
	if dt <= 0 {
		return false
	}
	if dt > maxBallisticDt {
		dt = maxBallisticDt
	}
	return b.advance(dt)
}

func (b *ballisticState) advance(dt float64) bool {
	pos := b.position
	velocity := b.velocity

	decel := 2200.0 + 0.385*math.Abs(velocity)
	if velocity > 0 {
		velocity -= decel * dt
		if velocity < 0 {
			velocity = 0
		}
	} else if velocity < 0 {
		velocity += decel * dt
		if velocity > 0 {
			velocity = 0
		}
	}

	offset := pos.offset + velocity*dt

	// A fling that reaches a boundary ends there; the remaining speed
	// becomes a glow impact.
	if offset <= pos.min && velocity < 0 {
		pos.offset = pos.min
		b.absorb(velocity)
		pos.notify()
		return true
	}
	if offset >= pos.max && velocity > 0 {
		pos.offset = pos.max
		b.absorb(velocity)
		pos.notify()
		return true
	}

	b.velocity = velocity
	pos.offset = offset
	pos.notify()

	return math.Abs(velocity) < minBallisticVelocity
}

func (b *ballisticState) absorb(velocity float64) {
	if b.position.edges == nil {
		return
	}
	b.position.edges.absorb(int(math.Abs(velocity)), velocity < 0)
}

var (
	ballisticMu        sync.Mutex
	ballisticPositions = make(map[*Position]struct{})
)

func registerBallistic(position *Position) {
	ballisticMu.Lock()
	ballisticPositions[position] = struct{}{}
	ballisticMu.Unlock()
}

func unregisterBallistic(position *Position) {
	ballisticMu.Lock()
	delete(ballisticPositions, position)
	ballisticMu.Unlock()
}

// HasActiveBallistics returns true if any scroll simulations are running.
func HasActiveBallistics() bool {
	ballisticMu.Lock()
	defer ballisticMu.Unlock()
	return len(ballisticPositions) > 0
}

// StepBallistics advances any active scroll simulations. Hosts call this
// once per frame.
func StepBallistics() {
	ballisticMu.Lock()
	if len(ballisticPositions) == 0 {
		ballisticMu.Unlock()
		return
	}
	now := animation.Now()
	positions := make([]*Position, 0, len(ballisticPositions))
	for position := range ballisticPositions {
		positions = append(positions, position)
	}
	ballisticMu.Unlock()

	for _, position := range positions {
		if position.ballistic == nil {
			continue
		}
		if position.ballistic.step(now) {
			position.StopBallistic()
		}
	}
}
