// Package tui provides the Bubble Tea console controller: keyboard-driven
// sliders and an on-screen LED panel standing in for the hardware.
package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/device"
	"github.com/vovakirdan/ledpong/internal/games/pong"
)

// DefaultSliderStep is how far one key press moves a slider.
const DefaultSliderStep = 0.1

// frameMsg carries a pushed LED frame into the program.
type frameMsg struct {
	grid *core.PixelGrid
}

// scoreMsg carries a score update into the program.
type scoreMsg struct {
	score pong.Score
}

// ledControlMsg reports whether the host owns the LEDs.
type ledControlMsg struct {
	enabled bool
}

// panel is the input state shared between the program goroutine, which
// writes it on key presses, and the runner, which polls it.
type panel struct {
	mu       sync.Mutex
	sliders  [core.GridWidth]float64
	stop     bool
	leftCol  int
	rightCol int
}

func newPanel(leftCol, rightCol int) *panel {
	p := &panel{leftCol: leftCol, rightCol: rightCol}
	for i := range p.sliders {
		p.sliders[i] = 0.5
	}
	return p
}

// apply moves sliders for one input frame. Sliders stay in [0,1] like
// physical faders.
func (p *panel) apply(in core.InputFrame, step float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	move := func(col int, delta float64) {
		if col < 0 || col >= len(p.sliders) {
			return
		}
		p.sliders[col] = core.ClampF(p.sliders[col]+delta, 0, 1)
	}

	move(p.leftCol, step*float64(in.Count(core.ActionLeftUp)-in.Count(core.ActionLeftDown)))
	move(p.rightCol, step*float64(in.Count(core.ActionRightUp)-in.Count(core.ActionRightDown)))
	if in.Has(core.ActionStop) {
		p.stop = true
	}
}

func (p *panel) state() device.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return device.State{Sliders: p.sliders, Stop: p.stop}
}

// Model is the Bubble Tea model for the console controller.
type Model struct {
	panel      *panel
	keys       KeyMap
	help       help.Model
	input      core.InputFrame
	step       float64
	grid       *core.PixelGrid
	score      pong.Score
	ledControl bool
	quitting   bool
}

// newModel creates a model that writes slider movement into p.
func newModel(p *panel, step float64) Model {
	return Model{
		panel: p,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		input: core.NewInputFrame(),
		step:  step,
		grid:  core.NewDisplayGrid(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.grid = msg.grid
		return m, nil

	case scoreMsg:
		m.score = msg.score
		return m, nil

	case ledControlMsg:
		m.ledControl = msg.enabled
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	m.input.Set(action)
	m.panel.apply(m.input, m.step)
	m.input.Clear()

	if action == core.ActionStop {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the LED panel, sliders, score and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.panel.state()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("LED PONG"))
	sb.WriteString("\n\n")
	if m.ledControl {
		sb.WriteString(RenderLEDs(m.grid))
	} else {
		sb.WriteString(RenderLEDs(core.NewDisplayGrid()))
	}
	sb.WriteString("\n")
	sb.WriteString(RenderSlider("P1", st.Slider(m.panel.leftCol)))
	sb.WriteString("\n")
	sb.WriteString(RenderSlider("P2", st.Slider(m.panel.rightCol)))
	sb.WriteString("\n\n")
	sb.WriteString(scoreStyle.Render(m.score.String()))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
