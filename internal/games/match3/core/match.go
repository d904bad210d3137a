package core

import "sort"

// MinRun is the shortest line of equal colours that forms a match.
const MinRun = 3

// MatchSet is the set of positions belonging to at least one run.
type MatchSet map[Pos]struct{}

// Len returns the number of matched positions.
func (m MatchSet) Len() int {
	return len(m)
}

// Has reports whether p is part of a run.
func (m MatchSet) Has(p Pos) bool {
	_, ok := m[p]
	return ok
}

// Positions returns the matched positions in row-major order.
func (m MatchSet) Positions() []Pos {
	out := make([]Pos, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// FindMatches scans every row and every column for maximal runs of at least
// MinRun tokens of the same colour and returns the union of their positions.
// Empty cells break runs.
func FindMatches(b *Board) MatchSet {
	matches := make(MatchSet)
	for r := 0; r < b.rows; r++ {
		scanLine(b, P(r, 0), DirRight, b.cols, matches)
	}
	for c := 0; c < b.cols; c++ {
		scanLine(b, P(0, c), DirDown, b.rows, matches)
	}
	return matches
}

// scanLine walks length cells from start in direction d and records runs.
func scanLine(b *Board, start Pos, d Dir, length int, out MatchSet) {
	runStart := start
	runLen := 0
	runColor := NoColor

	flush := func() {
		if runColor == NoColor || runLen < MinRun {
			return
		}
		p := runStart
		for i := 0; i < runLen; i++ {
			out[p] = struct{}{}
			p = p.Step(d)
		}
	}

	p := start
	for i := 0; i < length; i++ {
		color, ok := b.ColorAt(p)
		if !ok {
			color = NoColor
		}
		if color != NoColor && color == runColor {
			runLen++
		} else {
			flush()
			runStart = p
			runLen = 1
			runColor = color
		}
		p = p.Step(d)
	}
	flush()
}

// WouldCreateRun reports whether placing color at p completes a run with the two
// cells to its left or the two cells above it. Only already-placed neighbours are
// inspected, which is sufficient while populating left to right, top to bottom.
func WouldCreateRun(b *Board, p Pos, color int) bool {
	if sameColor(b, p.Add(0, -1), color) && sameColor(b, p.Add(0, -2), color) {
		return true
	}
	if sameColor(b, p.Add(-1, 0), color) && sameColor(b, p.Add(-2, 0), color) {
		return true
	}
	return false
}

func sameColor(b *Board, p Pos, color int) bool {
	c, ok := b.ColorAt(p)
	return ok && c == color
}

// Populate fills every empty cell row by row, re-rolling each colour until it
// does not complete a run. palette must be at least MinPaletteSize.
// Returns the filled positions in fill order.
func Populate(b *Board, rng Source, palette int) []Pos {
	var filled []Pos
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := P(r, c)
			if _, ok := b.ColorAt(p); ok {
				continue
			}
			color := rng.Intn(palette)
			for WouldCreateRun(b, p, color) {
				color = rng.Intn(palette)
			}
			b.cells[b.index(p)] = &Token{Color: color, Pos: p}
			filled = append(filled, p)
		}
	}
	return filled
}
