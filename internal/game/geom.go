// Package game contains the Snake simulation: grid geometry, snake movement
// rules, food spawning, the level table, and the tick-driven session state
// machine. It has no UI, audio, or I/O dependencies so the whole simulation
// can be unit tested without a terminal.
package game

// Cell is a single grid coordinate.
type Cell struct {
	X, Y int
}

// Direction is a unit movement delta. Screen convention: Y grows downward,
// so Up is (0,-1).
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{-d.DX, -d.DY}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Grid is the playfield coordinate space.
type Grid struct {
	Width, Height int
}

// InBounds reports whether c lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the middle cell, used as the spawn point on reset.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
