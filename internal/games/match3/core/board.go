package core

import "fmt"

// NoColor is the colour reported for empty cells in colour grids.
const NoColor = -1

// Token is one puzzle piece. Its colour never changes; Pos always mirrors
// the cell that holds it on the board.
type Token struct {
	Color int
	Pos   Pos
}

// Board is a fixed-size grid of tokens.
// Cells are stored in row-major order: index = row*cols + col. A nil cell is empty.
type Board struct {
	rows  int
	cols  int
	cells []*Token
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]*Token, rows*cols),
	}
}

// NewBoardFromColors builds a board from a colour grid.
// NoColor entries stay empty. All rows must have the same length.
func NewBoardFromColors(colors [][]int) (*Board, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("match3: empty colour grid")
	}
	cols := len(colors[0])
	b := NewBoard(len(colors), cols)
	for r, row := range colors {
		if len(row) != cols {
			return nil, fmt.Errorf("match3: row %d has %d cells, expected %d", r, len(row), cols)
		}
		for c, color := range row {
			if color == NoColor {
				continue
			}
			b.cells[b.index(P(r, c))] = &Token{Color: color, Pos: P(r, c)}
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) index(p Pos) int {
	return p.Row*b.cols + p.Col
}

// InBounds returns true if the position lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Get returns the token at p, or nil if the cell is empty.
func (b *Board) Get(p Pos) (*Token, error) {
	if !b.InBounds(p) {
		return nil, fmt.Errorf("get %v: %w", p, ErrOutOfBounds)
	}
	return b.cells[b.index(p)], nil
}

// Set stores t at p and updates its position. A nil token empties the cell.
func (b *Board) Set(p Pos, t *Token) error {
	if !b.InBounds(p) {
		return fmt.Errorf("set %v: %w", p, ErrOutOfBounds)
	}
	if t != nil {
		t.Pos = p
	}
	b.cells[b.index(p)] = t
	return nil
}

// ColorAt returns the colour at p. ok is false for empty or out-of-bounds cells.
func (b *Board) ColorAt(p Pos) (color int, ok bool) {
	if !b.InBounds(p) {
		return NoColor, false
	}
	t := b.cells[b.index(p)]
	if t == nil {
		return NoColor, false
	}
	return t.Color, true
}

// Swap exchanges the contents of two cells, updating both tokens' positions.
// Either cell may be empty. Nothing changes if either position is out of bounds.
func (b *Board) Swap(pa, pb Pos) error {
	if !b.InBounds(pa) {
		return fmt.Errorf("swap %v: %w", pa, ErrOutOfBounds)
	}
	if !b.InBounds(pb) {
		return fmt.Errorf("swap %v: %w", pb, ErrOutOfBounds)
	}

	ia, ib := b.index(pa), b.index(pb)
	ta, tb := b.cells[ia], b.cells[ib]
	b.cells[ia], b.cells[ib] = tb, ta
	if tb != nil {
		tb.Pos = pa
	}
	if ta != nil {
		ta.Pos = pb
	}
	return nil
}

// move relocates the token at from into the empty cell at to.
func (b *Board) move(from, to Pos) {
	t := b.cells[b.index(from)]
	b.cells[b.index(from)] = nil
	b.cells[b.index(to)] = t
	if t != nil {
		t.Pos = to
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = nil
	}
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	count := 0
	for _, t := range b.cells {
		if t == nil {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the board. Tokens are copied, not shared.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.rows, b.cols)
	for i, t := range b.cells {
		if t != nil {
			cp := *t
			clone.cells[i] = &cp
		}
	}
	return clone
}

// Colors returns the board as a colour grid, NoColor marking empty cells.
func (b *Board) Colors() [][]int {
	grid := make([][]int, b.rows)
	for r := range grid {
		grid[r] = make([]int, b.cols)
		for c := range grid[r] {
			color, _ := b.ColorAt(P(r, c))
			grid[r][c] = color
		}
	}
	return grid
}

// Equal returns true if both boards have the same dimensions and colour layout.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		ta, tb := b.cells[i], other.cells[i]
		if (ta == nil) != (tb == nil) {
			return false
		}
		if ta != nil && ta.Color != tb.Color {
			return false
		}
	}
	return true
}

// Verify checks that every token's recorded position matches its cell.
func (b *Board) Verify() error {
	for i, t := range b.cells {
		if t == nil {
			continue
		}
		want := P(i/b.cols, i%b.cols)
		if t.Pos != want {
			return fmt.Errorf("match3: token at %v records position %v", want, t.Pos)
		}
	}
	return nil
}

// IsAdjacent returns true if a and b are orthogonal neighbours.
func IsAdjacent(a, b Pos) bool {
	return a.Manhattan(b) == 1
}
