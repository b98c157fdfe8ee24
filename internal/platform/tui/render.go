package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ledpong/internal/core"
)

// LED glyphs
const (
	LEDOn  = '●'
	LEDOff = '○'
)

const sliderWidth = 10

var (
	ledOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	ledOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sliderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderLEDs draws the grid top row first, one glyph per LED.
func RenderLEDs(g *core.PixelGrid) string {
	rows := make([]string, 0, g.Height())
	for y := g.Height() - 1; y >= 0; y-- {
		cells := make([]string, 0, g.Width())
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) {
				cells = append(cells, ledOnStyle.Render(string(LEDOn)))
			} else {
				cells = append(cells, ledOffStyle.Render(string(LEDOff)))
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

// RenderSlider draws a horizontal gauge for a slider position in [0,1].
func RenderSlider(label string, pos float64) string {
	filled := int(core.ClampF(pos, 0, 1)*sliderWidth + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
	return fmt.Sprintf("%s %s %s", label, sliderStyle.Render(bar), dimStyle.Render(fmt.Sprintf("%.2f", pos)))
}
