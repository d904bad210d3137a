package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const x = NoColor

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name     string
		colors   [][]int
		expected []Pos
	}{
		{
			name: "no runs",
			colors: [][]int{
				{0, 1, 0, 1},
				{1, 0, 1, 0},
				{0, 1, 0, 1},
			},
			expected: []Pos{},
		},
		{
			name: "horizontal three",
			colors: [][]int{
				{2, 2, 2, 1},
				{1, 0, 1, 0},
				{0, 1, 0, 1},
			},
			expected: []Pos{P(0, 0), P(0, 1), P(0, 2)},
		},
		{
			name: "vertical four",
			colors: [][]int{
				{0, 3, 0},
				{1, 3, 1},
				{0, 3, 0},
				{1, 3, 1},
			},
			expected: []Pos{P(0, 1), P(1, 1), P(2, 1), P(3, 1)},
		},
		{
			name: "maximal run of five",
			colors: [][]int{
				{4, 4, 4, 4, 4},
				{0, 1, 0, 1, 0},
			},
			expected: []Pos{P(0, 0), P(0, 1), P(0, 2), P(0, 3), P(0, 4)},
		},
		{
			name: "crossing runs share a cell",
			colors: [][]int{
				{5, 1, 0},
				{5, 5, 5},
				{5, 1, 0},
			},
			expected: []Pos{P(0, 0), P(1, 0), P(1, 1), P(1, 2), P(2, 0)},
		},
		{
			name: "empty cell breaks run",
			colors: [][]int{
				{2, 2, x, 2, 2},
				{0, 1, 0, 1, 0},
			},
			expected: []Pos{},
		},
		{
			name: "empties never match",
			colors: [][]int{
				{x, x, x},
				{x, x, x},
				{x, x, x},
			},
			expected: []Pos{},
		},
		{
			name: "two separate runs",
			colors: [][]int{
				{1, 1, 1, 0},
				{0, 2, 3, 0},
				{3, 2, 2, 2},
			},
			expected: []Pos{P(0, 0), P(0, 1), P(0, 2), P(2, 1), P(2, 2), P(2, 3)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindMatches(mustBoard(t, tc.colors))
			assert.Equal(t, tc.expected, got.Positions())
			assert.Equal(t, len(tc.expected), got.Len())
			for _, p := range tc.expected {
				assert.True(t, got.Has(p), "missing %v", p)
			}
		})
	}
}

func TestFindMatchesIsPure(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 2, 2},
		{0, 1, 0},
		{1, 0, 1},
	})
	before := b.Clone()

	first := FindMatches(b)
	second := FindMatches(b)
	assert.Equal(t, first, second)
	assert.True(t, b.Equal(before))
}

func TestWouldCreateRun(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 1, x, 0},
		{2, 0, x, 0},
		{2, 3, x, x},
		{x, 3, x, x},
	})

	tests := []struct {
		name     string
		pos      Pos
		color    int
		expected bool
	}{
		{"completes row from the left", P(0, 2), 1, true},
		{"different colour on the left", P(0, 2), 0, false},
		{"completes column from above", P(3, 0), 2, true},
		{"completes column on the edge", P(2, 3), 0, true},
		{"one match on the left", P(1, 2), 0, false},
		{"below is not inspected", P(1, 1), 3, false},
		{"first column and row", P(0, 0), 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WouldCreateRun(b, tc.pos, tc.color); got != tc.expected {
				t.Errorf("WouldCreateRun(%v, %d) = %v, expected %v", tc.pos, tc.color, got, tc.expected)
			}
		})
	}
}

func TestPopulateHasNoRuns(t *testing.T) {
	for _, palette := range []int{MinPaletteSize, 4, 6, MaxPaletteSize} {
		for seed := int64(1); seed <= 50; seed++ {
			b := NewBoard(8, 8)
			filled := Populate(b, rand.New(rand.NewSource(seed)), palette)

			require.Len(t, filled, 64)
			require.Zero(t, b.EmptyCount())
			require.Empty(t, FindMatches(b), "palette %d seed %d produced a run", palette, seed)
			require.NoError(t, b.Verify())
			for _, row := range b.Colors() {
				for _, color := range row {
					require.True(t, color >= 0 && color < palette)
				}
			}
		}
	}
}

func TestPopulateRerollsSuppressedColour(t *testing.T) {
	// The source mostly offers colour 0, which suppression must refuse wherever it completes a run.
	b := NewBoard(3, 3)
	src := &scripted{seq: []int{0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1}}
	Populate(b, src, 3)

	assert.Empty(t, FindMatches(b))
	color, _ := b.ColorAt(P(0, 2))
	assert.Equal(t, 1, color, "third cell of the first row must be re-rolled")
}

func TestPopulateSkipsOccupiedCells(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, x, x},
		{x, x, x},
		{x, x, 2},
	})
	filled := Populate(b, rand.New(rand.NewSource(7)), 4)

	assert.Len(t, filled, 7)
	assert.NotContains(t, filled, P(0, 0))
	assert.NotContains(t, filled, P(2, 2))
	color, _ := b.ColorAt(P(0, 0))
	assert.Equal(t, 2, color)
}
