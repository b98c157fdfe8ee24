package tui

import (
	"context"
	"errors"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/device"
	"github.com/vovakirdan/ledpong/internal/games/pong"
	"github.com/vovakirdan/ledpong/internal/registry"
)

// Options configures a console controller.
type Options struct {
	LeftSlider  int
	RightSlider int
	Step        float64   // Slider travel per key press, 0 = DefaultSliderStep
	AltScreen   bool      // Run in the alternate screen buffer
	Input       io.Reader // nil = stdin
	Output      io.Writer // nil = stdout
	Logger      *log.Logger
}

// Console is a device.Controller backed by a Bubble Tea program. The
// program runs in its own goroutine; the runner talks to it through
// Program.Send and the shared slider panel.
type Console struct {
	opts   Options
	logger *log.Logger
	panel  *panel

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	runErr  error
	closed  bool
}

// NewConsole creates a console controller. The program starts on Connect.
func NewConsole(opts Options) *Console {
	if opts.Step <= 0 {
		opts.Step = DefaultSliderStep
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Console{
		opts:   opts,
		logger: logger,
		panel:  newPanel(opts.LeftSlider, opts.RightSlider),
	}
}

// Connect starts the Bubble Tea program. Calling it again while the
// program runs is a no-op.
func (c *Console) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return device.ErrClosed
	}
	if c.program != nil {
		return nil
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if c.opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(c.opts.Input))
	}
	if c.opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(c.opts.Output))
	}

	c.program = tea.NewProgram(newModel(c.panel, c.opts.Step), progOpts...)
	c.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			c.mu.Lock()
			c.runErr = err
			c.mu.Unlock()
			c.logger.Error("console program stopped", "error", err)
		}
	}(c.program, c.done)

	c.logger.Debug("console controller connected")
	return nil
}

// Connected reports whether the program is still running.
func (c *Console) Connected() bool {
	c.mu.Lock()
	done := c.done
	closed := c.closed
	c.mu.Unlock()

	if done == nil || closed {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Poll returns the slider positions set by key presses.
func (c *Console) Poll() (device.State, error) {
	if !c.Connected() {
		return device.State{}, device.ErrNotConnected
	}
	return c.panel.state(), nil
}

// SetLEDs sends a copy of grid to the program.
func (c *Console) SetLEDs(grid *core.PixelGrid) error {
	return c.send(frameMsg{grid: grid.Clone()})
}

// EnableLEDControl switches the panel between pushed frames and dark LEDs.
func (c *Console) EnableLEDControl(enabled bool) error {
	return c.send(ledControlMsg{enabled: enabled})
}

// ShowScore updates the score line.
func (c *Console) ShowScore(score pong.Score) {
	_ = c.send(scoreMsg{score: score})
}

func (c *Console) send(msg tea.Msg) error {
	if !c.Connected() {
		return device.ErrNotConnected
	}
	c.mu.Lock()
	p := c.program
	c.mu.Unlock()
	p.Send(msg)
	return nil
}

// Err returns the error the program exited with, if any.
func (c *Console) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runErr
}

// Close stops the program and waits for it to restore the terminal.
func (c *Console) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	p, done := c.program, c.done
	c.mu.Unlock()

	if p == nil {
		return nil
	}
	p.Quit()
	<-done
	return nil
}

var (
	_ device.Controller   = (*Console)(nil)
	_ device.ScoreDisplay = (*Console)(nil)
	_ device.ErrReporter  = (*Console)(nil)
)

// Register the driver with the registry
func init() {
	registry.Register("console", "Keyboard sliders and an on-screen LED panel", func(o registry.Options) (device.Controller, error) {
		return NewConsole(Options{
			LeftSlider:  o.Config.Device.LeftSlider,
			RightSlider: o.Config.Device.RightSlider,
			AltScreen:   true,
			Logger:      o.Logger,
		}), nil
	})
}
