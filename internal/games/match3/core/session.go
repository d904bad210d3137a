package core

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Session is one running game: board, engine, turn controller and score.
// A Session is not safe for concurrent use; drive it from one goroutine.
type Session struct {
	cfg      Config
	board    *Board
	engine   *Engine
	ctrl     *Controller
	rng      Source
	listener Listener
	logger   *log.Logger
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	listener Listener
	logger   *log.Logger
	rng      Source
	board    *Board
}

// WithListener sets the receiver of state notifications.
func WithListener(l Listener) Option {
	return func(o *sessionOptions) {
		o.listener = l
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = l
	}
}

// WithSource sets the random source used for population and refills.
func WithSource(rng Source) Option {
	return func(o *sessionOptions) {
		o.rng = rng
	}
}

// WithBoard starts the session from a prepared board instead of populating one.
// The board must match the configured dimensions; the session takes ownership.
func WithBoard(b *Board) Option {
	return func(o *sessionOptions) {
		o.board = b
	}
}

// NewSession validates cfg and creates a session with a freshly populated board.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.listener == nil {
		o.listener = NopListener{}
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	board := o.board
	populate := board == nil
	if populate {
		board = NewBoard(cfg.Rows, cfg.Cols)
	} else if board.Rows() != cfg.Rows || board.Cols() != cfg.Cols {
		return nil, fmt.Errorf("match3: board is %dx%d, config expects %dx%d", board.Rows(), board.Cols(), cfg.Rows, cfg.Cols)
	}

	s := &Session{
		cfg:      cfg,
		board:    board,
		rng:      o.rng,
		listener: o.listener,
		logger:   o.logger,
	}
	s.engine = newEngine(cfg, board, o.rng, o.listener, o.logger)
	s.ctrl = newController(s.engine, board, cfg, o.logger)

	if populate {
		s.populate()
	}
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Controller returns the turn controller that accepts player input.
func (s *Session) Controller() *Controller {
	return s.ctrl
}

// Click forwards to the turn controller.
func (s *Session) Click(p Pos) error {
	return s.ctrl.Click(p)
}

// DragStart forwards to the turn controller.
func (s *Session) DragStart(p Pos) error {
	return s.ctrl.DragStart(p)
}

// DragRelease forwards to the turn controller.
func (s *Session) DragRelease(origin Pos, delta Vec) error {
	return s.ctrl.DragRelease(origin, delta)
}

// Restart clears the board, the score and all input state, then repopulates.
// It is refused while a resolution is in flight.
func (s *Session) Restart() error {
	if s.ctrl.Processing() {
		s.logger.Debug("restart rejected", "phase", s.engine.Phase())
		return fmt.Errorf("restart: %w", ErrBusy)
	}

	s.board.Clear()
	s.engine.reset()
	s.ctrl.reset()
	s.listener.BoardReset()
	s.listener.ScoreChanged(0)
	s.populate()
	s.logger.Debug("restarted")
	return nil
}

func (s *Session) populate() {
	for _, p := range Populate(s.board, s.rng, s.cfg.PaletteSize) {
		color, _ := s.board.ColorAt(p)
		s.listener.TokenCreated(p, color)
	}
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.engine.Score()
}

// Busy returns true while input is gated by an in-flight resolution.
func (s *Session) Busy() bool {
	return s.ctrl.Processing()
}

// Board returns a copy of the board. Changes to it do not affect the session.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// ColorAt reads one cell without copying the board.
func (s *Session) ColorAt(p Pos) (int, bool) {
	return s.board.ColorAt(p)
}

// Phase returns the engine phase.
func (s *Session) Phase() Phase {
	return s.engine.Phase()
}

// Wait returns the animation length of the phase being waited on.
func (s *Session) Wait() time.Duration {
	return s.engine.Wait()
}

// Advance signals that the current phase's animation has finished.
func (s *Session) Advance() Phase {
	return s.engine.Advance()
}

// Settle runs the current resolution to completion without waiting.
func (s *Session) Settle() {
	s.engine.Settle()
}
