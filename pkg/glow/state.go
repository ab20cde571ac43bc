package glow

import "fmt"

// state identifies the current phase of the edge glow effect.
//
// The phases form this state machine:
//
//	          Pull()                t=1                 t=1
//	Idle ──────────────► Pull ────────────► PullDecay ────────► Recede
//	  ▲                    │ Release()           │ Release()       │
//	  │                    └─────────────────────┴──► Recede       │ t=1
//	  │        Absorb()                  t=1                       ▼
//	  └─────────────────── Absorb ──────────────► Recede ──────► Idle
//
// Idle is both the initial and the resting state.
type state int

const (
	stateIdle state = iota
	statePull
	stateAbsorb
	stateRecede
	statePullDecay
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case statePull:
		return "pull"
	case stateAbsorb:
		return "absorb"
	case stateRecede:
		return "recede"
	case statePullDecay:
		return "pull_decay"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
