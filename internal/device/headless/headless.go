// Package headless provides a terminal-free controller whose sliders are
// driven by an autopilot that watches the LED frames it is sent.
package headless

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/device"
	"github.com/vovakirdan/ledpong/internal/games/pong"
	"github.com/vovakirdan/ledpong/internal/registry"
)

// Glyphs used when printing frames
const (
	LitChar  = '#'
	DarkChar = '.'
)

// Options configures a headless controller.
type Options struct {
	LeftSlider  int
	RightSlider int
	Skill       float64   // Chance per frame that the defending paddle reacts
	Step        float64   // Max slider travel per frame
	RenderEvery int       // Print every Nth frame, 0 = never
	Seed        int64     // 0 = time based
	Out         io.Writer // nil = io.Discard
	Logger      *log.Logger
}

// Controller is an in-memory device. The paddle defending against the ball
// follows the lit LED of the previous frame, like a CPU opponent.
type Controller struct {
	opts   Options
	rng    *rand.Rand
	out    io.Writer
	logger *log.Logger

	connected  bool
	closed     bool
	ledControl bool

	sliders [core.GridWidth]float64
	frames  int

	// Tracking state derived from pushed frames
	lastX    int
	haveLast bool
	defender int     // Slider column currently chasing the ball, -1 = none
	target   float64 // Slider position that centers the paddle on the ball
}

// New creates a headless controller with both paddles centered.
func New(opts Options) *Controller {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	c := &Controller{
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)), //nolint:gosec // gameplay randomness
		out:      out,
		logger:   logger,
		defender: -1,
		target:   0.5,
	}
	for i := range c.sliders {
		c.sliders[i] = 0.5
	}
	return c
}

// Connect always succeeds unless ctx is done or the controller was closed.
func (c *Controller) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return device.ErrClosed
	}
	c.connected = true
	c.logger.Debug("headless controller connected")
	return nil
}

// Connected reports whether Connect succeeded and Close was not called.
func (c *Controller) Connected() bool {
	return c.connected && !c.closed
}

// Poll advances the autopilot by one frame and returns the sliders.
func (c *Controller) Poll() (device.State, error) {
	if !c.Connected() {
		return device.State{}, device.ErrNotConnected
	}
	c.frames++

	if c.defender >= 0 && c.rng.Float64() < c.opts.Skill {
		cur := c.sliders[c.defender]
		delta := core.ClampF(c.target-cur, -c.opts.Step, c.opts.Step)
		c.sliders[c.defender] = core.ClampF(cur+delta, 0, 1)
	}

	return device.State{Sliders: c.sliders}, nil
}

// SetLEDs records where the ball is and optionally prints the frame.
func (c *Controller) SetLEDs(grid *core.PixelGrid) error {
	if !c.Connected() {
		return device.ErrNotConnected
	}

	if x, y, ok := grid.FirstLit(); ok {
		c.track(x, y)
	}

	if c.ledControl && c.opts.RenderEvery > 0 && c.frames%c.opts.RenderEvery == 0 {
		fmt.Fprintf(c.out, "frame %d\n%s\n\n", c.frames, grid.String(LitChar, DarkChar))
	}
	return nil
}

// track updates the defender and its target from the lit cell.
func (c *Controller) track(x, y int) {
	if c.haveLast {
		switch {
		case x > c.lastX:
			c.defender = c.opts.RightSlider
		case x < c.lastX:
			c.defender = c.opts.LeftSlider
		}
	}
	c.lastX = x
	c.haveLast = true
	c.target = core.ClampF(core.DefaultPlayfield.PaddlePosition(float64(y)), 0, 1)
}

// EnableLEDControl toggles frame printing.
func (c *Controller) EnableLEDControl(enabled bool) error {
	if !c.Connected() {
		return device.ErrNotConnected
	}
	c.ledControl = enabled
	return nil
}

// ShowScore prints the score line.
func (c *Controller) ShowScore(score pong.Score) {
	fmt.Fprintln(c.out, score.String())
}

// Close disconnects the controller.
func (c *Controller) Close() error {
	c.closed = true
	return nil
}

var (
	_ device.Controller   = (*Controller)(nil)
	_ device.ScoreDisplay = (*Controller)(nil)
)

// Register the driver with the registry
func init() {
	registry.Register("headless", "Autopilot paddles, frames printed as text", func(o registry.Options) (device.Controller, error) {
		return New(FromConfig(o.Config, o)), nil
	})
}

// FromConfig builds Options from the loaded configuration.
func FromConfig(cfg config.Config, o registry.Options) Options {
	return Options{
		LeftSlider:  cfg.Device.LeftSlider,
		RightSlider: cfg.Device.RightSlider,
		Skill:       cfg.Headless.Skill,
		Step:        cfg.Headless.Step,
		RenderEvery: cfg.Headless.RenderEvery,
		Seed:        o.Seed,
		Out:         o.Out,
		Logger:      o.Logger,
	}
}
