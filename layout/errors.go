package layout

import "fmt"

// gridTooSmallError signals that the current grid ran out of room
// before every command (and the approach to the abort program) could be
// placed. It never escapes Layout: the caller catches it and retries
// with a larger grid.
type gridTooSmallError struct {
	w, h, x, y int
}

func (e *gridTooSmallError) Error() string {
	return fmt.Sprintf("layout: grid too small: w=%d h=%d pos=(%d, %d)", e.w, e.h, e.x, e.y)
}

// colorExhaustedError signals that every chromatic color has been ruled
// out as a conflict resolver at the current cell. resolveConflict in
// layouter.go catches this and falls back to re-using the last color
// that successfully resolved a conflict.
type colorExhaustedError struct {
	exclude int
}

func (e *colorExhaustedError) Error() string {
	return fmt.Sprintf("layout: no color left, %d excluded", e.exclude)
}
