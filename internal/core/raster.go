package core

// Rasterize maps a continuous position to the nearest discrete cell by adding
// 0.5 and truncating toward zero on each axis. ok is false when that cell
// falls outside the playfield's inclusive bounds.
func Rasterize(p Vec2, field Playfield) (x, y int, ok bool) {
	x = int(p.X + 0.5)
	y = int(p.Y + 0.5)
	return x, y, field.ContainsCell(x, y)
}
