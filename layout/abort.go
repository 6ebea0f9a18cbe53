package layout

import "github.com/aharris/pietgen/piet"

// abortMark identifies a cell's role within a fixed abort-program
// pattern: an EDGE (black) codel, an ABORT (colored, in
// abortProgramColor) codel, or an unused cell outside the pattern.
type abortMark int

const (
	markNone abortMark = iota
	markEdge
	markAbort
)

// abortProgramOdd is stamped into the center of odd-sided grids. It is a
// plus-shaped black border surrounding a colored cross: any interpreter
// that walks onto it from any of the four cardinal directions runs into
// a BLACK (EDGE) codel on its very next step and halts.
var abortProgramOdd = [][]abortMark{
	{markNone, markNone, markEdge, markNone, markNone},
	{markNone, markEdge, markAbort, markEdge, markNone},
	{markNone, markNone, markAbort, markAbort, markEdge},
	{markNone, markEdge, markAbort, markEdge, markNone},
	{markNone, markNone, markEdge, markNone, markNone},
}

// abortProgramEven is the even-grid-sided counterpart of abortProgramOdd.
var abortProgramEven = [][]abortMark{
	{markNone, markNone, markEdge, markEdge, markNone, markNone},
	{markNone, markEdge, markAbort, markAbort, markEdge, markNone},
	{markNone, markNone, markAbort, markAbort, markAbort, markEdge},
	{markNone, markNone, markAbort, markAbort, markAbort, markEdge},
	{markNone, markEdge, markAbort, markAbort, markEdge, markNone},
	{markNone, markNone, markEdge, markEdge, markNone, markNone},
}

// abortProgramFor returns the abort pattern matching a grid of the given
// width. The grid is always square, so width alone decides parity.
func abortProgramFor(width int) [][]abortMark {
	if width%2 == 0 {
		return abortProgramEven
	}
	return abortProgramOdd
}

// createGrid builds an empty w x h grid with the abort program already
// stamped into its center in abortColor.
func createGrid(w, h int, abortColor piet.Color) *piet.Grid {
	grid := piet.NewGrid(w, h)

	program := abortProgramFor(w)
	ph := len(program)
	pw := len(program[0])
	offsetX := (w / 2) - (pw / 2)
	offsetY := (h / 2) - (ph / 2)

	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			switch program[y][x] {
			case markEdge:
				grid.Set(x+offsetX, y+offsetY, piet.Black)
			case markAbort:
				grid.Set(x+offsetX, y+offsetY, abortColor)
			}
		}
	}

	return grid
}

// isInAbortProgramArea reports whether (x, y) falls within the abort
// program's footprint, including the single-column corridor immediately
// to its left that the spiral uses to approach it.
func isInAbortProgramArea(grid *piet.Grid, x, y int) bool {
	w, h := grid.Width(), grid.Height()
	program := abortProgramFor(w)
	ph := len(program)
	pw := len(program[0])

	minX := (w / 2) - (pw / 2)
	minY := (h / 2) - (ph / 2)
	maxX := minX + pw
	maxY := minY + ph

	minX--

	return minX <= x && x < maxX && minY <= y && y < maxY
}
