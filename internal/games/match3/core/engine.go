package core

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is a state of the resolution state machine.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSwapping
	PhaseValidating
	PhaseRevertSwap
	PhaseRemoving
	PhaseFalling
	PhaseRefilling
	PhaseCascadeCheck
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSwapping:
		return "Swapping"
	case PhaseValidating:
		return "Validating"
	case PhaseRevertSwap:
		return "RevertSwap"
	case PhaseRemoving:
		return "Removing"
	case PhaseFalling:
		return "Falling"
	case PhaseRefilling:
		return "Refilling"
	case PhaseCascadeCheck:
		return "CascadeCheck"
	default:
		return "Unknown"
	}
}

// Engine resolves one swap at a time through validation, removal, gravity,
// refill and cascades. Every mutating phase ends in a wait: the engine does not
// move on until Advance is called, which presentation layers do once the
// phase's animation has played.
//
// Validating and CascadeCheck are transient and never observed between calls.
type Engine struct {
	cfg      Config
	board    *Board
	rng      Source
	listener Listener
	logger   *log.Logger

	phase   Phase
	swapA   Pos
	swapB   Pos
	score   int
	batches int // Removal batches in the current sequence

	// onIdle runs whenever a sequence returns to PhaseIdle.
	onIdle func()
}

func newEngine(cfg Config, board *Board, rng Source, listener Listener, logger *log.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		board:    board,
		rng:      rng,
		listener: listener,
		logger:   logger,
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Begin swaps the tokens at a and b and enters PhaseSwapping.
// Invalid input is rejected before anything changes.
func (e *Engine) Begin(a, b Pos) error {
	if e.phase != PhaseIdle {
		return ErrBusy
	}
	if !e.board.InBounds(a) {
		return fmt.Errorf("swap from %v: %w", a, ErrOutOfBounds)
	}
	if !e.board.InBounds(b) {
		return fmt.Errorf("swap to %v: %w", b, ErrOutOfBounds)
	}
	if !IsAdjacent(a, b) {
		return fmt.Errorf("swap %v with %v: %w", a, b, ErrInvalidAdjacency)
	}

	e.swapA, e.swapB = a, b
	e.batches = 0
	e.swap()
	e.enter(PhaseSwapping)
	return nil
}

// Advance is the completion hook for the phase being waited on.
// It runs the next transition and returns the phase now waiting, or PhaseIdle.
// Calling it while idle does nothing.
func (e *Engine) Advance() Phase {
	switch e.phase {
	case PhaseSwapping:
		e.enter(PhaseValidating)
		matches := FindMatches(e.board)
		if matches.Len() == 0 {
			e.swap()
			e.enter(PhaseRevertSwap)
			break
		}
		e.remove(matches)

	case PhaseRevertSwap:
		e.finish()

	case PhaseRemoving:
		for _, m := range ApplyGravity(e.board) {
			e.listener.TokenMoved(m.From, m.To)
		}
		e.enter(PhaseFalling)

	case PhaseFalling:
		filled := Refill(e.board, e.rng, e.cfg.PaletteSize)
		for _, p := range filled {
			color, _ := e.board.ColorAt(p)
			e.listener.TokenCreated(p, color)
		}
		if len(filled) == 0 {
			e.cascadeCheck()
			break
		}
		e.enter(PhaseRefilling)

	case PhaseRefilling:
		e.cascadeCheck()
	}
	return e.phase
}

// Wait returns how long the current phase's animation lasts.
func (e *Engine) Wait() time.Duration {
	switch e.phase {
	case PhaseSwapping, PhaseRevertSwap:
		return e.cfg.SwapDuration
	case PhaseRemoving:
		return e.cfg.RemoveDuration
	case PhaseFalling:
		return e.cfg.FallDuration
	case PhaseRefilling:
		return e.cfg.FallDuration + e.cfg.CascadeDelay
	default:
		return 0
	}
}

// Settle advances until the engine is idle.
func (e *Engine) Settle() {
	for e.phase != PhaseIdle {
		e.Advance()
	}
}

// swap exchanges the current swap pair and announces both moves.
func (e *Engine) swap() {
	// Positions were validated in Begin.
	_ = e.board.Swap(e.swapA, e.swapB)
	e.listener.TokenMoved(e.swapA, e.swapB)
	e.listener.TokenMoved(e.swapB, e.swapA)
}

// remove scores a match batch and empties its cells.
func (e *Engine) remove(matches MatchSet) {
	e.enter(PhaseRemoving)
	e.batches++

	points := Score(matches.Len())
	e.score += points
	e.listener.ScoreChanged(e.score)
	e.logger.Debug("removing matches", "count", matches.Len(), "points", points, "batch", e.batches, "score", e.score)

	for _, p := range matches.Positions() {
		_ = e.board.Set(p, nil)
		e.listener.TokenRemoved(p)
	}
}

func (e *Engine) cascadeCheck() {
	e.enter(PhaseCascadeCheck)
	matches := FindMatches(e.board)
	if matches.Len() > 0 {
		e.remove(matches)
		return
	}
	e.finish()
}

func (e *Engine) finish() {
	e.enter(PhaseIdle)
	e.logger.Debug("board stable", "batches", e.batches, "score", e.score)
	if e.onIdle != nil {
		e.onIdle()
	}
}

func (e *Engine) enter(p Phase) {
	e.logger.Debug("phase", "from", e.phase, "to", p)
	e.phase = p
}

// reset returns the engine to idle with a zero score. No hooks run.
func (e *Engine) reset() {
	e.phase = PhaseIdle
	e.score = 0
	e.batches = 0
}
