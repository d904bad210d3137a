// Package core provides the rules-and-state engine for the Match-3 puzzle game.
// It owns the grid, detects runs, resolves swaps through removal, gravity, refill
// and cascade phases, and gates player input while a resolution is in flight.
//
// The package is UI-agnostic and deterministic for a given random source.
// Presentation layers observe changes through a Listener and drive the
// resolution forward by calling Advance once each phase's animation is done.
package core

import (
	"fmt"
	"time"
)

// Pos is a cell position on the board.
// Row increases downward, Col increases to the right.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns a new Pos offset by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Step returns the neighbouring position in the given direction.
func (p Pos) Step(d Dir) Pos {
	dr, dc := d.Delta()
	return p.Add(dr, dc)
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// Less orders positions row-major.
func (p Pos) Less(other Pos) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Dir is one of the four orthogonal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Vec is a drag displacement measured in the same units as Config.CellSize.
// DX grows to the right, DY grows downward.
type Vec struct {
	DX float64
	DY float64
}

// Source is the random source used for initial population and refills.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Config holds the tunable parameters of a session.
type Config struct {
	Rows        int
	Cols        int
	PaletteSize int

	// CellSize is the edge length of a cell in drag units.
	CellSize float64
	// DragThreshold is the fraction of CellSize a drag must exceed on its dominant axis.
	DragThreshold float64

	SwapDuration   time.Duration
	FallDuration   time.Duration
	RemoveDuration time.Duration
	// CascadeDelay is added to the refill wait before the cascade check.
	CascadeDelay time.Duration
}

// Board and palette limits.
const (
	MinPaletteSize = 3 // Fewer colours cannot always avoid runs during population
	MaxPaletteSize = 8
	MinDimension   = 3
)

// DefaultConfig returns an 8x8 board with six colours and the stock timings.
func DefaultConfig() Config {
	return Config{
		Rows:           8,
		Cols:           8,
		PaletteSize:    6,
		CellSize:       70,
		DragThreshold:  1.0 / 3.0,
		SwapDuration:   200 * time.Millisecond,
		FallDuration:   300 * time.Millisecond,
		RemoveDuration: 300 * time.Millisecond,
		CascadeDelay:   100 * time.Millisecond,
	}
}

// Validate reports whether the configuration can drive a session.
func (c Config) Validate() error {
	if c.Rows < MinDimension || c.Cols < MinDimension {
		return fmt.Errorf("match3: board must be at least %dx%d, got %dx%d", MinDimension, MinDimension, c.Rows, c.Cols)
	}
	if c.PaletteSize < MinPaletteSize || c.PaletteSize > MaxPaletteSize {
		return fmt.Errorf("match3: palette size must be in [%d, %d], got %d", MinPaletteSize, MaxPaletteSize, c.PaletteSize)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("match3: cell size must be positive, got %v", c.CellSize)
	}
	if c.DragThreshold <= 0 || c.DragThreshold > 1 {
		return fmt.Errorf("match3: drag threshold must be in (0, 1], got %v", c.DragThreshold)
	}
	if c.SwapDuration < 0 || c.FallDuration < 0 || c.RemoveDuration < 0 || c.CascadeDelay < 0 {
		return fmt.Errorf("match3: animation durations must not be negative")
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
