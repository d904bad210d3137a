package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted returns a fixed sequence of values, cycling when exhausted.
type scripted struct {
	seq []int
	i   int
}

func (s *scripted) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	return v
}

// testConfig is the default 8x8 layout with all eight colours available so that
// scripted refills can use colours 6 and 7 without touching the base pattern.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PaletteSize = MaxPaletteSize
	return cfg
}

// baseColors is a run-free grid: horizontal neighbours differ by one,
// vertical neighbours by two.
func baseColors(rows, cols int) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			grid[r][c] = (c + 2*r) % 6
		}
	}
	return grid
}

func mustBoard(t *testing.T, colors [][]int) *Board {
	t.Helper()
	b, err := NewBoardFromColors(colors)
	require.NoError(t, err)
	return b
}

// newTestSession builds a session over colors with a scripted refill source.
func newTestSession(t *testing.T, colors [][]int, refill ...int) (*Session, *Recorder) {
	t.Helper()
	if len(refill) == 0 {
		refill = []int{6, 7}
	}
	rec := &Recorder{}
	b := mustBoard(t, colors)
	require.Empty(t, FindMatches(b), "fixture board must start without runs")

	s, err := NewSession(testConfig(),
		WithBoard(b),
		WithListener(rec),
		WithSource(&scripted{seq: refill}),
	)
	require.NoError(t, err)
	return s, rec
}

func newRandomSession(t *testing.T, seed int64, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithSource(rand.New(rand.NewSource(seed)))}, opts...)
	s, err := NewSession(DefaultConfig(), opts...)
	require.NoError(t, err)
	return s
}

// settleBounded advances until idle, failing the test if resolution does not end.
func settleBounded(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if s.Phase() == PhaseIdle {
			return
		}
		s.Advance()
	}
	t.Fatalf("resolution did not settle, phase %v", s.Phase())
}

// adjacentPairs lists every right and down neighbour pair on a rows x cols board.
func adjacentPairs(rows, cols int) [][2]Pos {
	var pairs [][2]Pos
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				pairs = append(pairs, [2]Pos{P(r, c), P(r, c+1)})
			}
			if r+1 < rows {
				pairs = append(pairs, [2]Pos{P(r, c), P(r+1, c)})
			}
		}
	}
	return pairs
}
