package layout

import (
	"testing"

	"github.com/aharris/pietgen/piet"
)

func TestCreateGridStampsAbortProgram(t *testing.T) {
	grid := createGrid(9, 9, piet.DarkBlue)

	if grid.At(4, 4) == nil || grid.At(4, 4).Color != piet.DarkBlue {
		t.Errorf("center cell = %v, want DARK_BLUE", grid.At(4, 4))
	}
	if grid.At(4, 2) == nil || grid.At(4, 2).Color != piet.Black {
		t.Errorf("top EDGE cell = %v, want BLACK", grid.At(4, 2))
	}
	if grid.At(0, 0) != nil {
		t.Error("origin should be unpainted by createGrid")
	}
}

func TestIsInAbortProgramArea(t *testing.T) {
	grid := createGrid(9, 9, piet.DarkBlue)

	if !isInAbortProgramArea(grid, 4, 4) {
		t.Error("center of abort program should be in area")
	}
	if !isInAbortProgramArea(grid, 1, 4) {
		t.Error("approach corridor cell should be in area")
	}
	if isInAbortProgramArea(grid, 0, 0) {
		t.Error("origin should not be in abort program area")
	}
}

func TestAbortProgramForParity(t *testing.T) {
	if len(abortProgramFor(9)) != len(abortProgramOdd) {
		t.Error("odd width should select the odd abort pattern")
	}
	if len(abortProgramFor(10)) != len(abortProgramEven) {
		t.Error("even width should select the even abort pattern")
	}
}
