package layout

import "github.com/aharris/pietgen/piet"

// Walk re-derives the command sequence a filled grid encodes by walking
// the direction pointer from the origin until it reaches the abort
// program's center cell. It exists so tests can check that a laid-out
// grid actually encodes the command list it was built from, without
// running a full Piet interpreter.
func Walk(grid *piet.Grid) ([]piet.Command, error) {
	abortX := (grid.Width() - 1) / 2
	abortY := grid.Height() / 2

	x, y := 0, 0
	dp := piet.Right

	origin := grid.At(x, y)
	if origin == nil {
		return nil, nil
	}
	before := origin.Color

	var commands []piet.Command
	maxSteps := grid.Width()*grid.Height() + 8
	for steps := 0; ; steps++ {
		if x == abortX && y == abortY {
			break
		}
		if steps > maxSteps {
			break
		}

		codel := grid.At(x, y)
		if codel == nil {
			break
		}

		cmd, err := piet.CommandOf(before, codel.Color)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)

		if cmd == piet.Pointer {
			dp = piet.Rotate(dp, 1)
		}
		x += dp.DX()
		y += dp.DY()
		before = codel.Color
	}

	return commands, nil
}
