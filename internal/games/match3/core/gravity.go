package core

// Move records a token sliding from one cell to another.
type Move struct {
	From Pos
	To   Pos
}

// ApplyGravity lets tokens fall into empty cells below them.
// Columns are processed left to right and each column bottom to top: every
// empty cell takes the nearest token above it in the same column. Afterwards
// each column holds its tokens contiguously at the bottom.
func ApplyGravity(b *Board) []Move {
	var moves []Move
	for c := 0; c < b.cols; c++ {
		for r := b.rows - 1; r >= 0; r-- {
			to := P(r, c)
			if b.cells[b.index(to)] != nil {
				continue
			}
			for above := r - 1; above >= 0; above-- {
				from := P(above, c)
				if b.cells[b.index(from)] == nil {
					continue
				}
				b.move(from, to)
				moves = append(moves, Move{From: from, To: to})
				break
			}
		}
	}
	return moves
}

// Refill places a token of uniformly random colour in every empty cell,
// scanning each column top to bottom. Runs are not suppressed.
// Returns the filled positions in fill order.
func Refill(b *Board, rng Source, palette int) []Pos {
	var filled []Pos
	for c := 0; c < b.cols; c++ {
		for r := 0; r < b.rows; r++ {
			p := P(r, c)
			if b.cells[b.index(p)] != nil {
				continue
			}
			b.cells[b.index(p)] = &Token{Color: rng.Intn(palette), Pos: p}
			filled = append(filled, p)
		}
	}
	return filled
}
