package match3

import (
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// effect is how a cell is drawn while the current phase plays.
type effect uint8

const (
	effectNone    effect = iota
	effectMoved          // Swapped or fell into this cell
	effectRemoved        // Cell was just cleared by a match
	effectCreated        // Refilled token
)

// animator is the session listener. It keeps the effects of the phase on
// screen and counts removal batches so the game can report cascade length.
type animator struct {
	effects map[core.Pos]effect
	score   int
	gained  int // Points from the latest batch
	chain   int // Removal batches in the current sequence
}

func newAnimator() *animator {
	return &animator{
		effects: make(map[core.Pos]effect),
	}
}

// clear drops the effects of the phase that just finished.
func (a *animator) clear() {
	clear(a.effects)
}

// beginSequence starts counting batches for a new swap.
func (a *animator) beginSequence() {
	a.chain = 0
	a.gained = 0
}

func (a *animator) effectAt(p core.Pos) effect {
	return a.effects[p]
}

func (a *animator) TokenCreated(p core.Pos, _ int) {
	a.effects[p] = effectCreated
}

func (a *animator) TokenMoved(_, to core.Pos) {
	a.effects[to] = effectMoved
}

func (a *animator) TokenRemoved(p core.Pos) {
	a.effects[p] = effectRemoved
}

func (a *animator) ScoreChanged(total int) {
	if total > a.score {
		a.chain++
		a.gained = total - a.score
	}
	a.score = total
}

func (a *animator) BoardReset() {
	a.clear()
	a.score = 0
	a.gained = 0
	a.chain = 0
}
