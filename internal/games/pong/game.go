// Package pong implements the two-player LED Pong simulation.
// The engine owns the ball and the score, advances them from elapsed time and
// two paddle positions, and rasterizes the ball onto a pixel grid.
package pong

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ledpong/internal/core"
)

// Physics constants
const (
	DefaultInitialSpeed = 3.0
	HalfPaddleSize      = 0.75 // Hit window around a paddle's center
	XSpeedup            = 0.5  // Horizontal speed gained per second
	YSpeedup            = 0.01 // Vertical speed gained per second
)

// serveRange is the distribution used for serve direction and sign draws.
var serveRange = Uniform{Min: 1.0, Max: 2.0}

// Player identifies a side of the table.
type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

// Score holds the goal count for each player.
type Score struct {
	PlayerOne int
	PlayerTwo int
}

// String renders the score pair for the console.
func (s Score) String() string {
	return fmt.Sprintf("Player 1: %d, Player 2: %d", s.PlayerOne, s.PlayerTwo)
}

// StepResult describes what happened during one Advance call.
type StepResult struct {
	Goal    bool   // A paddle missed and the ball was served again
	Scorer  Player // Who scored, NoPlayer if no goal
	Bounced bool   // The ball bounced off a paddle or wall
}

// Engine simulates the ball, paddles and score.
// It is not safe for concurrent use.
type Engine struct {
	field        core.Playfield
	initialSpeed float64

	// Ball
	pos core.Vec2
	vel core.Vec2

	score  Score
	resets int

	rng     Random
	logger  *log.Logger
	onReset func(Score)
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom injects the random source used to serve the ball.
func WithRandom(r Random) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithLogger sets the logger that receives the score on every reset.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithResetHook registers a callback invoked with the score on every reset.
func WithResetHook(fn func(Score)) Option {
	return func(e *Engine) {
		e.onReset = fn
	}
}

// New creates an engine with a 0-0 score and a freshly served ball.
func New(initialSpeed float64, opts ...Option) *Engine {
	e := &Engine{
		field:        core.DefaultPlayfield,
		initialSpeed: initialSpeed,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRandom(0)
	}
	if e.logger == nil {
		e.logger = log.Default()
	}

	e.Reset()
	return e
}

// Playfield returns the table bounds.
func (e *Engine) Playfield() core.Playfield {
	return e.field
}

// Reset announces the score, centers the ball and serves it in a random
// direction at the initial speed. The score is kept.
func (e *Engine) Reset() {
	e.resets++
	e.logger.Info("score", "player1", e.score.PlayerOne, "player2", e.score.PlayerTwo)
	if e.onReset != nil {
		e.onReset(e.score)
	}

	e.pos = e.field.Center()

	// Draw order matters for seeded replays: magnitude x, magnitude y,
	// then one sign per axis.
	mx := serveRange.Sample(e.rng)
	my := serveRange.Sample(e.rng)
	unit, ok := core.V(mx, my).Normalize()
	if !ok {
		unit = core.V(math.Sqrt2/2, math.Sqrt2/2)
	}
	sx := e.serveSign()
	sy := e.serveSign()

	e.vel = core.V(unit.X*e.initialSpeed*sx, unit.Y*e.initialSpeed*sy)
}

// serveSign draws a fair +1/-1.
func (e *Engine) serveSign() float64 {
	if serveRange.Sample(e.rng) > serveRange.Midpoint() {
		return 1
	}
	return -1
}

// Advance moves the simulation forward by dt seconds.
// paddleOne and paddleTwo are normalized slider positions for the left and
// right paddles. Inputs are not validated: out-of-range paddles extrapolate
// and negative dt runs the ball backwards.
func (e *Engine) Advance(dt, paddleOne, paddleTwo float64) StepResult {
	var result StepResult

	e.pos = e.pos.Add(e.vel.Scale(dt))

	// Horizontal: paddles or goals
	var xCorrection float64
	xHit := false
	switch {
	case crossedLow(e.pos.X, e.vel.X, e.field.Left):
		if e.paddleCovers(paddleOne) {
			xCorrection = 2 * (e.field.Left - e.pos.X)
			xHit = true
		} else {
			return e.goal(PlayerTwo)
		}
	case crossedHigh(e.pos.X, e.vel.X, e.field.Right):
		if e.paddleCovers(paddleTwo) {
			xCorrection = 2 * (e.field.Right - e.pos.X)
			xHit = true
		} else {
			return e.goal(PlayerOne)
		}
	}

	// Vertical: walls only
	var yCorrection float64
	yHit := false
	switch {
	case crossedLow(e.pos.Y, e.vel.Y, e.field.Bottom):
		yCorrection = 2 * (e.field.Bottom - e.pos.Y)
		yHit = true
	case crossedHigh(e.pos.Y, e.vel.Y, e.field.Top):
		yCorrection = 2 * (e.field.Top - e.pos.Y)
		yHit = true
	}

	if xHit {
		e.vel.X = -e.vel.X
		e.pos.X += xCorrection
	}
	if yHit {
		e.vel.Y = -e.vel.Y
		e.pos.Y += yCorrection
	}
	result.Bounced = xHit || yHit

	e.vel.X += XSpeedup * dt * core.Sign(e.vel.X)
	e.vel.Y += YSpeedup * dt * core.Sign(e.vel.Y)

	return result
}

// goal credits the scorer and serves a new ball. The rest of the tick is
// skipped so the new serve starts exactly at the initial speed.
func (e *Engine) goal(scorer Player) StepResult {
	if scorer == PlayerOne {
		e.score.PlayerOne++
	} else {
		e.score.PlayerTwo++
	}
	e.Reset()
	return StepResult{Goal: true, Scorer: scorer}
}

// paddleCovers reports whether the ball's height is inside the hit window of
// a paddle at the given normalized position.
func (e *Engine) paddleCovers(paddle float64) bool {
	center := e.field.PaddleCenter(paddle)
	return e.pos.Y >= center-HalfPaddleSize && e.pos.Y <= center+HalfPaddleSize
}

// crossedLow reports whether v is past a lower bound. Sitting exactly on the
// bound counts only while still moving outward.
func crossedLow(v, vel, bound float64) bool {
	return v < bound || (v == bound && vel < 0)
}

// crossedHigh is the upper-bound counterpart of crossedLow.
func crossedHigh(v, vel, bound float64) bool {
	return v > bound || (v == bound && vel > 0)
}

// Draw clears dst and lights the cell nearest the ball.
// Nothing is lit when that cell falls outside the playfield.
func (e *Engine) Draw(dst *core.PixelGrid) {
	dst.Clear()

	if x, y, ok := core.Rasterize(e.pos, e.field); ok {
		dst.Set(x, y, true)
	}
}

// Score returns the current score.
func (e *Engine) Score() Score {
	return e.score
}

// Ball returns the ball's position and velocity.
func (e *Engine) Ball() (pos, vel core.Vec2) {
	return e.pos, e.vel
}

// SetBall places the ball directly, for scenarios and replays.
func (e *Engine) SetBall(pos, vel core.Vec2) {
	e.pos = pos
	e.vel = vel
}
