package core

import (
	"strings"
)

// PixelGrid is a fixed-size buffer of on/off cells.
// It decouples the simulation from the display driver, which maps each cell
// to a physical indicator.
type PixelGrid struct {
	width  int
	height int
	cells  [][]bool // indexed [x][y], one slice per display column
}

// NewPixelGrid creates a grid with the given dimensions, all cells off.
func NewPixelGrid(width, height int) *PixelGrid {
	g := &PixelGrid{
		width:  width,
		height: height,
	}
	g.cells = make([][]bool, width)
	for x := range g.cells {
		g.cells[x] = make([]bool, height)
	}
	return g
}

// NewDisplayGrid creates a grid matching the controller's LED layout.
// It is one column wider than DefaultPlayfield so cells keep their absolute x.
func NewDisplayGrid() *PixelGrid {
	return NewPixelGrid(GridWidth, GridHeight)
}

// Width returns the number of columns.
func (g *PixelGrid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *PixelGrid) Height() int {
	return g.height
}

// Clear switches every cell off.
func (g *PixelGrid) Clear() {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y] = false
		}
	}
}

// Set switches the cell at (x, y) on or off.
// Out-of-bounds coordinates are silently ignored.
func (g *PixelGrid) Set(x, y int, on bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[x][y] = on
}

// Get returns the state of the cell at (x, y).
// Returns false for out-of-bounds coordinates.
func (g *PixelGrid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[x][y]
}

// Lit returns the number of cells that are on.
func (g *PixelGrid) Lit() int {
	n := 0
	for x := range g.cells {
		for _, on := range g.cells[x] {
			if on {
				n++
			}
		}
	}
	return n
}

// FirstLit returns the first lit cell in column-major order.
func (g *PixelGrid) FirstLit() (x, y int, ok bool) {
	for x := range g.cells {
		for y, on := range g.cells[x] {
			if on {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// Clone returns an independent copy of the grid.
func (g *PixelGrid) Clone() *PixelGrid {
	c := NewPixelGrid(g.width, g.height)
	for x := range g.cells {
		copy(c.cells[x], g.cells[x])
	}
	return c
}

// String renders the grid with the top row first, using on and off for cells.
func (g *PixelGrid) String(on, off rune) string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)

	for y := g.height - 1; y >= 0; y-- {
		if y < g.height-1 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.width; x++ {
			if g.cells[x][y] {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
	}
	return sb.String()
}
