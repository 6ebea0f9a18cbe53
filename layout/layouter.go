package layout

import (
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/aharris/pietgen/piet"
)

// bridgeState carries the mutable state a run of putCodelsOnLine needs
// to resolve color conflicts across retries: the last cell it bridged
// with a FREE_ZONE (WHITE) codel, the colors it has already ruled out
// at the current cell, and the color that most recently got a conflict
// resolved. It replaces a closure capturing the enclosing call's
// locals by reference.
type bridgeState struct {
	lastFreeX, lastFreeY int
	excludeColors        []piet.Color
	lastResolveColor     piet.Color
}

func newBridgeState() *bridgeState {
	return &bridgeState{lastFreeX: -1, lastFreeY: -1, lastResolveColor: piet.Black}
}

// SpiralLayouter places commands onto a square grid in a clockwise
// inward spiral, starting at the origin and ending at a fixed abort
// program stamped into the grid's center.
type SpiralLayouter struct {
	rnd    *Rand
	logger *slog.Logger
}

// NewSpiralLayouter returns a layouter drawing randomness from rnd. A
// nil logger falls back to slog.Default().
func NewSpiralLayouter(rnd *Rand, logger *slog.Logger) *SpiralLayouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpiralLayouter{rnd: rnd, logger: logger}
}

// Layout places commands on a grid whose origin is colored startColor
// and whose abort program is colored abortColor, growing the grid and
// retrying until every command and the approach to the abort program
// fit.
func (l *SpiralLayouter) Layout(commands []piet.Command, startColor, abortColor piet.Color) (*piet.Grid, error) {
	runID := uuid.NewString()
	w, h := l.predictGridSize(commands)
	log := l.logger.With("run_id", runID, "commands", len(commands))
	log.Debug("layout starting", "width", w, "height", h)

	for {
		x, y := 0, 0
		dp := piet.Right
		color := startColor

		grid := createGrid(w, h, abortColor)

		commandIndex, nx, ny, ndp, ncolor, err := l.putCodels(commands, grid, x, y, dp, color)
		if err == nil {
			nx, ny, ndp, ncolor, err = l.putCodelsToAbortArea(commands, commandIndex, grid, nx, ny, ndp, ncolor)
		}
		if err == nil {
			nx, ny, ndp, ncolor, err = l.putCodelsToAbortProgram(abortColor, grid, nx, ny, ndp, ncolor)
		}
		if err == nil {
			l.putToEmptyCells(grid)
			log.Debug("layout finished", "width", w, "height", h, "pos_x", nx, "pos_y", ny, "dp", ndp.String(), "color", ncolor.String())
			return grid, nil
		}

		var tooSmall *gridTooSmallError
		if !errors.As(err, &tooSmall) {
			return nil, err
		}

		log.Debug("grid too small, growing", "width", w, "height", h, "cause", err)
		w++
		h++
	}
}

// predictGridSize estimates a grid size that will very likely fit
// commands plus the turning codels the spiral needs plus the abort
// program, to keep the grow-and-retry loop in Layout short.
func (l *SpiralLayouter) predictGridSize(commands []piet.Command) (int, int) {
	commandNum := len(commands)

	// One trip around a spiral of side s uses 4 turns, each 2 codels
	// (PUSH+POINTER); s/2 full trips are needed to spiral commandNum
	// codels into a square, so predictRotateNum approximates
	// sqrt(commandNum) * 4.
	predictRotateNum := int(math.Ceil(math.Sqrt(float64(commandNum)))) * 4

	abortW := len(abortProgramOdd[0])
	abortH := len(abortProgramOdd)

	predictCommandsNum := commandNum + predictRotateNum + (abortW * abortH)

	w := int(math.Ceil(math.Sqrt(float64(predictCommandsNum))))
	h := w

	w = max(w, abortW+2)
	h = max(h, abortH+2)

	return w, h
}

// putCodels spirals commands onto grid starting at (x, y, dp, color)
// line by line, stopping when every command has been placed.
func (l *SpiralLayouter) putCodels(commands []piet.Command, grid *piet.Grid, x, y int, dp piet.DirectionPointer, color piet.Color) (int, int, int, piet.DirectionPointer, piet.Color, error) {
	commandIndex := 0
	for commandIndex < len(commands) {
		if isInAbortProgramArea(grid, x, y) {
			return commandIndex, x, y, dp, color, &gridTooSmallError{grid.Width(), grid.Height(), x, y}
		}

		var err error
		commandIndex, x, y, dp, color, err = l.putCodelsOnLine(commands, commandIndex, grid, x, y, dp, color)
		if err != nil {
			return commandIndex, x, y, dp, color, err
		}
	}

	return commandIndex, x, y, dp, color, nil
}

// putCodelsToAbortArea continues the spiral with filler commands, past
// the point the caller's message finished, until it reaches the border
// of the abort program area. If it reaches that border while some of the
// caller's commands are still unplaced (a conflict resolution moved
// commandIndex back), it returns gridTooSmallError.
func (l *SpiralLayouter) putCodelsToAbortArea(commands []piet.Command, commandIndex int, grid *piet.Grid, x, y int, dp piet.DirectionPointer, color piet.Color) (int, int, piet.DirectionPointer, piet.Color, error) {
	original := len(commands)
	fillable := append([]piet.Command(nil), commands...)

	for {
		if isInAbortProgramArea(grid, x, y) {
			if commandIndex < original {
				return x, y, dp, color, &gridTooSmallError{grid.Width(), grid.Height(), x, y}
			}
			break
		}

		if commandIndex >= len(fillable) {
			need := commandIndex - len(fillable) + 1
			for i := 0; i < need; i++ {
				c, err := l.rnd.Command(nil)
				if err != nil {
					return x, y, dp, color, err
				}
				fillable = append(fillable, c)
			}
		}

		var err error
		commandIndex, x, y, dp, color, err = l.putCodelsOnLine(fillable, commandIndex, grid, x, y, dp, color)
		if err != nil {
			return x, y, dp, color, err
		}
	}

	return x, y, dp, color, nil
}

// putCodelsOnLine paints one straight run of the spiral (until the grid
// edge, an already-painted cell, or the command list is exhausted),
// ending with a PUSH+POINTER pair that turns the direction pointer 90
// degrees clockwise for the next line, unless the command list ran out
// first.
func (l *SpiralLayouter) putCodelsOnLine(commands []piet.Command, commandIndex int, grid *piet.Grid, x, y int, dp piet.DirectionPointer, color piet.Color) (int, int, int, piet.DirectionPointer, piet.Color, error) {
	bridge := newBridgeState()
	startX, startY := x, y
	w, h := grid.Width(), grid.Height()

	var length int
	switch dp {
	case piet.Right:
		length = w - y - x
	case piet.Down:
		offsetBottom := (w - 1) - x
		length = h - offsetBottom - y
	case piet.Left:
		offsetLeft := (h - 1) - y
		length = x - offsetLeft + 1
	case piet.Up:
		offsetTop := x + 1
		length = y - offsetTop + 1
	}

	for {
		if abs(x-startX)+abs(y-startY) == length-2 {
			pushColor, err := piet.ColorOf(piet.Push, color)
			if err != nil {
				return commandIndex, x, y, dp, color, err
			}
			pointerColor, err := piet.ColorOf(piet.Pointer, pushColor)
			if err != nil {
				return commandIndex, x, y, dp, color, err
			}

			if grid.IsConflict(pushColor, x, y) || grid.IsConflict(pointerColor, x+dp.DX(), y+dp.DY()) {
				var rerr error
				x, y, commandIndex, dp, color, rerr = l.resolveConflict(grid, bridge, 2, x, y, commandIndex, dp, color)
				if rerr != nil {
					return commandIndex, x, y, dp, color, rerr
				}
				continue
			}

			for _, step := range []struct {
				cmd   piet.Command
				color piet.Color
			}{{piet.Push, pushColor}, {piet.Pointer, pointerColor}} {
				grid.Set(x, y, step.color)
				if step.cmd == piet.Pointer {
					dp = piet.Rotate(dp, 1)
				}
				color = step.color
				x += dp.DX()
				y += dp.DY()
			}
			break
		}

		if commandIndex >= len(commands) {
			break
		}

		cmd := commands[commandIndex]
		cmdColor, err := piet.ColorOf(cmd, color)
		if err != nil {
			return commandIndex, x, y, dp, color, err
		}

		if grid.IsConflict(cmdColor, x, y) {
			relocate := 0
			if abs(x-startX)+abs(y-startY) == length-3 {
				relocate = 1
			}
			var rerr error
			x, y, commandIndex, dp, color, rerr = l.resolveConflict(grid, bridge, relocate, x, y, commandIndex, dp, color)
			if rerr != nil {
				return commandIndex, x, y, dp, color, rerr
			}
			continue
		}

		grid.Set(x, y, cmdColor)
		commandIndex++
		x += dp.DX()
		y += dp.DY()
		color = cmdColor
	}

	return commandIndex, x, y, dp, color, nil
}

// resolveConflict backs up relocateNum placed cells (or, if a bridge was
// already built further back on this line, returns to it) and paints a
// FREE_ZONE/ordinary codel bridge that lets the line's color sequence
// pick up again without repeating the color that just conflicted.
func (l *SpiralLayouter) resolveConflict(grid *piet.Grid, bridge *bridgeState, relocateNum, x, y, commandIndex int, dp piet.DirectionPointer, color piet.Color) (int, int, int, piet.DirectionPointer, piet.Color, error) {
	if bridge.lastFreeX < 0 {
		commandIndex -= relocateNum
		x -= dp.DX() * relocateNum
		y -= dp.DY() * relocateNum

		grid.Set(x, y, piet.White)
		bridge.lastFreeX, bridge.lastFreeY = x, y

		x += dp.DX()
		y += dp.DY()
	} else {
		diff := max(abs(x-bridge.lastFreeX), abs(y-bridge.lastFreeY))
		commandIndex += -diff + 2
		x = bridge.lastFreeX + dp.DX()
		y = bridge.lastFreeY + dp.DY()
	}

	var resolveColor piet.Color
	for {
		c, err := l.rnd.Color(bridge.excludeColors)
		var exhausted *colorExhaustedError
		if errors.As(err, &exhausted) {
			resolveColor = bridge.lastResolveColor
			bridge.lastFreeX, bridge.lastFreeY = -1, -1
			bridge.excludeColors = nil
			break
		} else if err != nil {
			return x, y, commandIndex, dp, color, err
		}
		if grid.IsConflict(c, x, y) {
			bridge.excludeColors = append(bridge.excludeColors, c)
			continue
		}
		bridge.lastResolveColor = c
		bridge.excludeColors = append(bridge.excludeColors, c)
		resolveColor = c
		break
	}

	grid.Set(x, y, resolveColor)
	x += dp.DX()
	y += dp.DY()
	color = resolveColor

	return x, y, commandIndex, dp, color, nil
}

// putCodelsToAbortProgram walks from the abort area's left border to the
// abort program's first ABORT cell, placing five codels: a filler, a
// PUSH, a POINTER (turning onto the approach row), and two more fillers
// chosen so that entering the abort program from the last one doesn't
// itself execute as an I/O command. If every filler command gets ruled
// out as a conflict (or, for the last cell, because its transition into
// the abort color encodes IN_*/OUT_*) before one fits, that's treated as the grid being too small
// rather than a hard failure: it surfaces as gridTooSmallError so Layout
// grows the grid and retries.
func (l *SpiralLayouter) putCodelsToAbortProgram(abortColor piet.Color, grid *piet.Grid, x, y int, dp piet.DirectionPointer, color piet.Color) (int, int, piet.DirectionPointer, piet.Color, error) {
	var exclude []piet.Command
	for {
		randomCmd, err := l.rnd.Command(exclude)
		if err != nil {
			return x, y, dp, color, &gridTooSmallError{grid.Width(), grid.Height(), x, y}
		}
		randomColor, err := piet.ColorOf(randomCmd, color)
		if err != nil {
			return x, y, dp, color, err
		}
		pushColor, err := piet.ColorOf(piet.Push, randomColor)
		if err != nil {
			return x, y, dp, color, err
		}
		pointerColor, err := piet.ColorOf(piet.Pointer, pushColor)
		if err != nil {
			return x, y, dp, color, err
		}

		if grid.IsConflict(randomColor, x, y) ||
			grid.IsConflict(pushColor, x+dp.DX(), y+dp.DY()) ||
			grid.IsConflict(pointerColor, x+dp.DX()*2, y+dp.DY()*2) {
			exclude = append(exclude, randomCmd)
			continue
		}

		for _, step := range []struct {
			cmd   piet.Command
			color piet.Color
		}{{randomCmd, randomColor}, {piet.Push, pushColor}, {piet.Pointer, pointerColor}} {
			grid.Set(x, y, step.color)
			if step.cmd == piet.Pointer {
				dp = piet.Rotate(dp, 1)
			}
			color = step.color
			x += dp.DX()
			y += dp.DY()
		}
		break
	}

	var exclude1, exclude2 []piet.Command
	for {
		cmd1, err := l.rnd.Command(exclude1)
		if err != nil {
			return x, y, dp, color, &gridTooSmallError{grid.Width(), grid.Height(), x, y}
		}
		color1, err := piet.ColorOf(cmd1, color)
		if err != nil {
			return x, y, dp, color, err
		}
		if grid.IsConflict(color1, x, y) {
			exclude1 = append(exclude1, cmd1)
			continue
		}

		cmd2, err := l.rnd.Command(exclude2)
		if err != nil {
			return x, y, dp, color, &gridTooSmallError{grid.Width(), grid.Height(), x, y}
		}
		color2, err := piet.ColorOf(cmd2, color1)
		if err != nil {
			return x, y, dp, color, err
		}
		if grid.IsConflict(color2, x+dp.DX(), y+dp.DY()) {
			exclude2 = append(exclude2, cmd2)
			continue
		}

		if onEntry, err := piet.CommandOf(color2, abortColor); err == nil && onEntry.IsIO() {
			exclude2 = append(exclude2, cmd2)
			continue
		}

		for _, step := range []struct {
			cmd   piet.Command
			color piet.Color
		}{{cmd1, color1}, {cmd2, color2}} {
			grid.Set(x, y, step.color)
			if step.cmd == piet.Pointer {
				dp = piet.Rotate(dp, 1)
			}
			color = step.color
			x += dp.DX()
			y += dp.DY()
		}
		break
	}

	return x, y, dp, color, nil
}

// putToEmptyCells fills every still-unset cell of grid with a random
// chromatic color that doesn't conflict with its already-painted
// neighbors. These cells are never executed; the abort program halts
// the interpreter before the spiral could reach them from any other
// direction.
func (l *SpiralLayouter) putToEmptyCells(grid *piet.Grid) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.At(x, y) != nil {
				continue
			}

			var exclude []piet.Color
			for {
				c, err := l.rnd.Color(exclude)
				if err != nil {
					// Can't happen with at most 4 neighbors and 18
					// chromatic colors; fall back to BLACK.
					grid.Set(x, y, piet.Black)
					break
				}
				if grid.IsConflict(c, x, y) {
					exclude = append(exclude, c)
					continue
				}
				grid.Set(x, y, c)
				break
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
