// Package core provides platform-agnostic building blocks for the terminal
// front end: a character screen buffer, input frames, and runtime settings.
// It deliberately has no Bubble Tea or game dependencies.
package core

// Rect is an axis-aligned box in screen coordinates, used for overlay and
// border drawing.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle point.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
