package game

import "math/rand"

// SpawnFood picks a uniformly random cell not occupied by the snake.
// Rejection sampling is fine at normal occupancy; once the board is nearly
// full it falls back to scanning the free cells so the call always
// terminates. ok is false only when the snake covers the whole grid.
func SpawnFood(snake []Cell, grid Grid, rng *rand.Rand) (food Cell, ok bool) {
	free := grid.Cells() - len(snake)
	if free <= 0 {
		return Cell{}, false
	}

	// Expected iterations is cells/free; cap the sampling and fall back to
	// an exhaustive pick when the board is crowded.
	for range 4 * grid.Cells() {
		c := Cell{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		if !occupied(c, snake) {
			return c, true
		}
	}

	n := rng.Intn(free)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := Cell{X: x, Y: y}
			if occupied(c, snake) {
				continue
			}
			if n == 0 {
				return c, true
			}
			n--
		}
	}
	return Cell{}, false
}

func occupied(c Cell, snake []Cell) bool {
	for _, seg := range snake {
		if seg == c {
			return true
		}
	}
	return false
}
