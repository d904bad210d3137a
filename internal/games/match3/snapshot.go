package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Swaps    int
	MaxChain int
	Phase    string
	Board    [][]int // Colour per cell, -1 when empty
	Cursor   [2]int  // Row, col
	Selected *[2]int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.session.Busy():
		state = StateResolving
	}

	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.session.Score(),
		Swaps:    g.swaps,
		MaxChain: g.maxChain,
		Phase:    g.session.Phase().String(),
		Board:    g.session.Board().Colors(),
		Cursor:   [2]int{g.cursor.Row, g.cursor.Col},
		State:    state,
	}
	if p, ok := g.session.Controller().Selected(); ok {
		snap.Selected = &[2]int{p.Row, p.Col}
	}
	return snap
}
