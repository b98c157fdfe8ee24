package core

// Display dimensions. The controller has eight columns with three LEDs each,
// and cells are addressed by absolute simulation coordinate.
const (
	GridWidth  = 8
	GridHeight = 3
)

// Playfield is the fixed rectangle the ball moves in.
// Bounds are inclusive and never change at runtime.
type Playfield struct {
	Left, Right float64
	Bottom, Top float64
}

// DefaultPlayfield is the table laid over the 8x3 display.
// Column 0 stays outside the field and is never lit.
var DefaultPlayfield = Playfield{Left: 1, Right: 7, Bottom: 0, Top: 2}

// Center returns the geometric center of the playfield.
func (p Playfield) Center() Vec2 {
	return Vec2{X: (p.Left + p.Right) / 2, Y: (p.Bottom + p.Top) / 2}
}

// ContainsCell returns true if the discrete cell (x, y) lies within the
// playfield's inclusive bounds.
func (p Playfield) ContainsCell(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= p.Left && fx <= p.Right && fy >= p.Bottom && fy <= p.Top
}

// PaddleCenter maps a normalized paddle position onto the vertical extent.
// Values outside [0,1] extrapolate past the bounds.
func (p Playfield) PaddleCenter(pos float64) float64 {
	return Lerp(p.Bottom, p.Top, pos)
}

// PaddlePosition is the inverse of PaddleCenter.
func (p Playfield) PaddlePosition(y float64) float64 {
	return (y - p.Bottom) / (p.Top - p.Bottom)
}
