package pong

import "github.com/vovakirdan/ledpong/internal/core"

// Snapshot is a read-only copy of the engine state for status displays and tests.
type Snapshot struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Score  Score
	Resets int // Serves so far, including the one made at construction
}

// Speed returns the magnitude of the ball's velocity.
func (s Snapshot) Speed() float64 {
	return s.Vel.Len()
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Pos:    e.pos,
		Vel:    e.vel,
		Score:  e.score,
		Resets: e.resets,
	}
}
