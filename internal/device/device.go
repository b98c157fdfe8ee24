// Package device defines the controller the game is played on: a row of
// sliders for input and a grid of LEDs for output.
package device

import (
	"context"
	"errors"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/games/pong"
)

// Sentinel errors returned by controllers.
var (
	ErrNotConnected = errors.New("device: controller not connected")
	ErrClosed       = errors.New("device: controller closed")
)

// State is the controller input sampled by one Poll.
type State struct {
	// Sliders holds each column's slider position, 0 at the bottom and 1 at the top.
	Sliders [core.GridWidth]float64

	// Stop is true once the stop button was pressed.
	Stop bool
}

// Slider returns the position of the slider in column col, or 0 for an
// unknown column.
func (s State) Slider(col int) float64 {
	if col < 0 || col >= len(s.Sliders) {
		return 0
	}
	return s.Sliders[col]
}

// Controller is the transport-neutral interface to an input/output device.
// The runner drives it from a single goroutine.
type Controller interface {
	// Connect tries once to reach the device.
	Connect(ctx context.Context) error

	// Connected reports whether the device is still reachable.
	Connected() bool

	// Poll samples the current input state.
	Poll() (State, error)

	// SetLEDs pushes a frame to the display. Implementations must not retain grid.
	SetLEDs(grid *core.PixelGrid) error

	// EnableLEDControl hands the LEDs to the host (true) or back to the device (false).
	EnableLEDControl(enabled bool) error

	// Close releases the device.
	Close() error
}

// ScoreDisplay is implemented by controllers that can show the score.
type ScoreDisplay interface {
	ShowScore(score pong.Score)
}

// ErrReporter is implemented by controllers that run in the background and
// can drop the connection because of a failure. Err returns nil after a
// clean disconnect.
type ErrReporter interface {
	Err() error
}
