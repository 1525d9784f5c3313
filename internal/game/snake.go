package game

// NextHead returns the cell the head would move into. No wrapping or
// clamping; out-of-bounds results are caught by WouldCollide.
func NextHead(snake []Cell, dir Direction) Cell {
	head := snake[0]
	return Cell{X: head.X + dir.DX, Y: head.Y + dir.DY}
}

// WouldCollide reports whether moving the head to next ends the game:
// the cell is outside the grid or occupied by the pre-move body.
//
// The current tail cell counts as occupied even though a non-eating move
// would vacate it this tick. Chasing the tail exactly is fatal; that is the
// intended game feel, not an oversight.
func WouldCollide(next Cell, snake []Cell, grid Grid) bool {
	if !grid.InBounds(next) {
		return true
	}
	for _, seg := range snake {
		if seg == next {
			return true
		}
	}
	return false
}

// Advance moves the snake to newHead. When ate is false the tail is
// dropped so the length stays constant; when true the snake grows by one.
func Advance(snake []Cell, newHead Cell, ate bool) []Cell {
	out := make([]Cell, 0, len(snake)+1)
	out = append(out, newHead)
	if ate {
		return append(out, snake...)
	}
	return append(out, snake[:len(snake)-1]...)
}

// ApplyTurn returns the direction to use for the next tick. A request that
// exactly reverses the current direction is ignored, preventing an instant
// self-collision through the neck.
func ApplyTurn(current, requested Direction) Direction {
	if requested == current.Opposite() {
		return current
	}
	return requested
}
