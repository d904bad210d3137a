// Package core provides fundamental types and utilities for the puzzle platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// GridLayout places a rows x cols grid of equally sized cells on the screen.
type GridLayout struct {
	X, Y         int // Top-left corner of cell (0, 0)
	CellW, CellH int // Cell size in characters
	Rows, Cols   int
}

// Bounds returns the screen area covered by the grid.
func (g GridLayout) Bounds() Rect {
	return NewRect(g.X, g.Y, g.Cols*g.CellW, g.Rows*g.CellH)
}

// CellRect returns the screen area of one cell.
func (g GridLayout) CellRect(row, col int) Rect {
	return NewRect(g.X+col*g.CellW, g.Y+row*g.CellH, g.CellW, g.CellH)
}

// CellAt maps a screen position to the cell under it.
func (g GridLayout) CellAt(x, y int) (row, col int, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 || !g.Bounds().Contains(x, y) {
		return 0, 0, false
	}
	return (y - g.Y) / g.CellH, (x - g.X) / g.CellW, true
}

// Offset returns the displacement of (x, y) from the centre of a cell,
// measured in cells on each axis.
func (g GridLayout) Offset(row, col, x, y int) (dx, dy float64) {
	cx := float64(g.X+col*g.CellW) + float64(g.CellW)/2
	cy := float64(g.Y+row*g.CellH) + float64(g.CellH)/2
	return (float64(x) + 0.5 - cx) / float64(g.CellW), (float64(y) + 0.5 - cy) / float64(g.CellH)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
