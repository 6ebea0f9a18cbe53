package piet

// Codel is a single grid cell carrying exactly one color.
type Codel struct {
	Color Color
}

// Grid is a square array of codels, indexed (x, y) with the origin at
// the top-left, matching Piet's own coordinate convention. A cell that
// has not yet been painted holds a nil *Codel.
type Grid struct {
	width, height int
	cells         [][]*Codel
}

// NewGrid allocates an empty w*h grid (every cell nil).
func NewGrid(w, h int) *Grid {
	cells := make([][]*Codel, h)
	for y := range cells {
		cells[y] = make([]*Codel, w)
	}
	return &Grid{width: w, height: h, cells: cells}
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the codel at (x, y), or nil if that cell is unpainted or
// out of bounds.
func (g *Grid) At(x, y int) *Codel {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// Set paints (x, y) with color. Panics if (x, y) is out of bounds — grid
// bounds are always established by the layouter before any paint call,
// so an out-of-bounds Set indicates a layouter bug rather than a
// recoverable condition.
func (g *Grid) Set(x, y int, color Color) {
	if !g.InBounds(x, y) {
		panic("piet: Grid.Set out of bounds")
	}
	g.cells[y][x] = &Codel{Color: color}
}

// IsFilled reports whether every cell in the grid has been painted.
func (g *Grid) IsFilled() bool {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == nil {
				return false
			}
		}
	}
	return true
}

// neighborColors returns the colors of the four orthogonal neighbors of
// (x, y), using ok=false for neighbors that are out of bounds or
// unpainted.
func (g *Grid) neighborColors(x, y int) (up, down, left, right Color, upOK, downOK, leftOK, rightOK bool) {
	if c := g.At(x, y-1); c != nil {
		up, upOK = c.Color, true
	}
	if c := g.At(x, y+1); c != nil {
		down, downOK = c.Color, true
	}
	if c := g.At(x-1, y); c != nil {
		left, leftOK = c.Color, true
	}
	if c := g.At(x+1, y); c != nil {
		right, rightOK = c.Color, true
	}
	return
}

// IsConflict reports whether painting color at (x, y) would fuse with an
// already-painted four-neighbor of the same chromatic color. BLACK and
// WHITE are never considered conflicting — they are exempt from codel
// fusion rules entirely.
func (g *Grid) IsConflict(color Color, x, y int) bool {
	if color == White || color == Black {
		return false
	}

	up, down, left, right, upOK, downOK, leftOK, rightOK := g.neighborColors(x, y)
	return (upOK && up == color) ||
		(downOK && down == color) ||
		(leftOK && left == color) ||
		(rightOK && right == color)
}
