package core

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// Controller gates player input into the engine.
// It owns the click selection, the drag origin and the processing flag.
// Selection and drag origin are never set at the same time.
type Controller struct {
	engine *Engine
	board  *Board
	cfg    Config
	logger *log.Logger

	processing bool

	selected    Pos
	hasSelected bool

	dragOrigin Pos
	dragging   bool
}

func newController(engine *Engine, board *Board, cfg Config, logger *log.Logger) *Controller {
	c := &Controller{
		engine: engine,
		board:  board,
		cfg:    cfg,
		logger: logger,
	}
	engine.onIdle = func() {
		c.processing = false
	}
	return c
}

// Processing returns true while a resolution sequence is in flight.
func (c *Controller) Processing() bool {
	return c.processing
}

// Selected returns the click-selected cell, if any.
func (c *Controller) Selected() (Pos, bool) {
	return c.selected, c.hasSelected
}

// DragOrigin returns the active drag origin, if any.
func (c *Controller) DragOrigin() (Pos, bool) {
	return c.dragOrigin, c.dragging
}

// Click handles a tap on p.
//
// With no selection p becomes selected. Clicking the selection again clears it.
// Clicking a neighbour of the selection attempts a swap and clears the selection
// whatever the outcome; clicking any other cell moves the selection there.
func (c *Controller) Click(p Pos) error {
	if c.processing || c.dragging {
		return c.reject("click", p, ErrBusy)
	}
	if !c.board.InBounds(p) {
		return c.reject("click", p, ErrOutOfBounds)
	}

	switch {
	case !c.hasSelected:
		c.selected, c.hasSelected = p, true
	case c.selected == p:
		c.clearSelection()
	case IsAdjacent(c.selected, p):
		from := c.selected
		c.clearSelection()
		return c.trySwap(from, p)
	default:
		c.selected = p
	}
	return nil
}

// DragStart records p as the drag origin and clears any click selection.
func (c *Controller) DragStart(p Pos) error {
	if c.processing {
		return c.reject("drag start", p, ErrBusy)
	}
	if !c.board.InBounds(p) {
		return c.reject("drag start", p, ErrOutOfBounds)
	}
	c.clearSelection()
	c.dragOrigin, c.dragging = p, true
	return nil
}

// DragRelease ends a drag from origin with the given displacement.
//
// The larger absolute component of delta picks the axis, horizontal on a tie,
// and its sign the direction. The gesture is a no-op unless that component
// exceeds DragThreshold * CellSize. The drag origin is always cleared.
func (c *Controller) DragRelease(origin Pos, delta Vec) error {
	defer func() {
		c.dragging = false
		c.dragOrigin = Pos{}
	}()

	if c.processing {
		return c.reject("drag release", origin, ErrBusy)
	}
	if !c.dragging {
		return nil
	}
	if !c.board.InBounds(origin) {
		return c.reject("drag release", origin, ErrOutOfBounds)
	}

	dir, ok := dragDirection(delta, c.cfg.DragThreshold*c.cfg.CellSize)
	if !ok {
		return nil
	}
	target := origin.Step(dir)
	if !c.board.InBounds(target) {
		return c.reject("drag release", target, ErrOutOfBounds)
	}
	return c.trySwap(origin, target)
}

// dragDirection maps a displacement to a direction.
// ok is false when the dominant component does not exceed threshold.
func dragDirection(delta Vec, threshold float64) (dir Dir, ok bool) {
	ax, ay := math.Abs(delta.DX), math.Abs(delta.DY)
	if ax >= ay {
		if ax <= threshold {
			return 0, false
		}
		if delta.DX > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if ay <= threshold {
		return 0, false
	}
	if delta.DY > 0 {
		return DirDown, true
	}
	return DirUp, true
}

// trySwap raises the processing flag and hands the pair to the engine.
// The engine's idle transition lowers the flag again.
func (c *Controller) trySwap(a, b Pos) error {
	c.processing = true
	if err := c.engine.Begin(a, b); err != nil {
		c.processing = false
		return c.reject("swap", a, err)
	}
	c.logger.Debug("swap accepted", "from", a, "to", b)
	return nil
}

func (c *Controller) clearSelection() {
	c.selected, c.hasSelected = Pos{}, false
}

// reset drops selection, drag origin and the processing flag.
func (c *Controller) reset() {
	c.clearSelection()
	c.dragOrigin, c.dragging = Pos{}, false
	c.processing = false
}

func (c *Controller) reject(action string, p Pos, err error) error {
	c.logger.Debug("input rejected", "action", action, "pos", p, "err", err)
	return fmt.Errorf("%s %v: %w", action, p, err)
}
