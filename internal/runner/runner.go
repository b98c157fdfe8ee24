// Package runner drives the frame loop between a controller and the engine:
// connect, poll the sliders, advance the simulation, push the LEDs.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/device"
	"github.com/vovakirdan/ledpong/internal/games/pong"
)

// ErrConnectFailed is returned when every connection attempt failed.
var ErrConnectFailed = errors.New("runner: unable to connect to controller")

// Config holds the loop's timing and wiring.
type Config struct {
	ConnectAttempts int
	ConnectRetry    time.Duration
	FrameInterval   time.Duration // Sleep after each frame, 0 = run flat out
	FixedStep       float64       // Seconds per frame, 0 = measure wall clock
	MaxFrames       int           // Stop after this many frames, 0 = unlimited
	LeftSlider      int
	RightSlider     int
}

// ConfigFrom maps the loaded configuration onto runner settings.
func ConfigFrom(cfg config.Config) Config {
	return Config{
		ConnectAttempts: cfg.Device.ConnectAttempts,
		ConnectRetry:    cfg.Device.ConnectRetry(),
		FrameInterval:   cfg.Device.FrameInterval(),
		LeftSlider:      cfg.Device.LeftSlider,
		RightSlider:     cfg.Device.RightSlider,
	}
}

// Summary describes a finished run.
type Summary struct {
	Frames int
	Score  pong.Score
}

// Runner owns the control loop. The engine is only touched from Run.
type Runner struct {
	cfg    Config
	engine *pong.Engine
	ctrl   device.Controller
	logger *log.Logger
	grid   *core.PixelGrid
	now    func() time.Time
}

// New creates a runner. A nil logger uses log.Default().
func New(engine *pong.Engine, ctrl device.Controller, cfg Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.ConnectAttempts < 1 {
		cfg.ConnectAttempts = 1
	}
	return &Runner{
		cfg:    cfg,
		engine: engine,
		ctrl:   ctrl,
		logger: logger,
		grid:   core.NewDisplayGrid(),
		now:    time.Now,
	}
}

// WaitForConnection tries to connect up to ConnectAttempts times, pausing
// ConnectRetry between attempts.
func (r *Runner) WaitForConnection(ctx context.Context) error {
	attemptsLeft := r.cfg.ConnectAttempts
	for {
		err := r.ctrl.Connect(ctx)
		if err == nil {
			r.logger.Info("controller connected")
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		attemptsLeft--
		if attemptsLeft <= 0 {
			return fmt.Errorf("%w after %d attempts: %w", ErrConnectFailed, r.cfg.ConnectAttempts, err)
		}
		r.logger.Warn("unable to connect to controller", "attempts_left", attemptsLeft, "error", err)

		if err := sleep(ctx, r.cfg.ConnectRetry); err != nil {
			return err
		}
	}
}

// Run plays until the context is cancelled, the stop button is pressed, the
// controller disconnects or MaxFrames is reached. The LEDs are cleared on the
// way out while the controller is still connected.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	if !r.ctrl.Connected() {
		return summary, fmt.Errorf("runner: %w", device.ErrNotConnected)
	}
	if err := r.ctrl.EnableLEDControl(true); err != nil {
		return summary, fmt.Errorf("runner: enable LED control: %w", err)
	}
	defer r.shutdown()

	r.showScore()

	last := r.now()
	for {
		if ctx.Err() != nil {
			r.logger.Debug("run cancelled")
			break
		}
		if r.cfg.MaxFrames > 0 && summary.Frames >= r.cfg.MaxFrames {
			break
		}
		if !r.ctrl.Connected() {
			if er, ok := r.ctrl.(device.ErrReporter); ok {
				if err := er.Err(); err != nil {
					summary.Score = r.engine.Score()
					return summary, fmt.Errorf("runner: controller failed: %w", err)
				}
			}
			r.logger.Warn("controller disconnected")
			break
		}

		now := r.now()
		dt := now.Sub(last).Seconds()
		last = now
		if r.cfg.FixedStep > 0 {
			dt = r.cfg.FixedStep
		}

		state, err := r.ctrl.Poll()
		if err != nil {
			summary.Score = r.engine.Score()
			return summary, fmt.Errorf("runner: poll: %w", err)
		}
		if state.Stop {
			r.logger.Info("stop pressed")
			break
		}

		res := r.engine.Advance(dt, state.Slider(r.cfg.LeftSlider), state.Slider(r.cfg.RightSlider))
		if res.Goal {
			r.logger.Debug("goal", "scorer", int(res.Scorer), "frame", summary.Frames)
			r.showScore()
		}

		r.engine.Draw(r.grid)
		if err := r.ctrl.SetLEDs(r.grid); err != nil {
			summary.Score = r.engine.Score()
			return summary, fmt.Errorf("runner: set LEDs: %w", err)
		}
		summary.Frames++

		if err := sleep(ctx, r.cfg.FrameInterval); err != nil {
			break
		}
	}

	summary.Score = r.engine.Score()
	return summary, nil
}

// showScore forwards the score to controllers that can display it.
func (r *Runner) showScore() {
	if sd, ok := r.ctrl.(device.ScoreDisplay); ok {
		sd.ShowScore(r.engine.Score())
	}
}

// shutdown blanks the LEDs and hands them back to the device.
func (r *Runner) shutdown() {
	if !r.ctrl.Connected() {
		return
	}
	r.grid.Clear()
	if err := r.ctrl.SetLEDs(r.grid); err != nil {
		r.logger.Warn("could not clear LEDs", "error", err)
	}
	if err := r.ctrl.EnableLEDControl(false); err != nil {
		r.logger.Warn("could not release LED control", "error", err)
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
