// Package match3 provides the Match-3 puzzle game for the terminal platform.
// It adapts the rules engine in the core subpackage to the registry Game
// interface: keyboard and mouse input become clicks and drags, and each
// resolution phase is held on screen for its animation time before the
// engine is advanced.
package match3

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "match3"

// Screen layout.
const (
	cellW    = 4 // Characters per cell
	cellH    = 2 // Lines per cell
	panelW   = 22
	panelGap = 3
)

// Game implements the Match-3 puzzle game.
type Game struct {
	cfg     config.Match3Config
	session *core.Session
	anim    *animator

	tick     uint64
	tickRate int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
	layout   platformcore.GridLayout
	panelX   int
	panelY   int
	statusY  int

	// Keyboard cursor
	cursor core.Pos

	// Pointer state: the cell under the last press, and whether a drag began
	pressCell core.Pos
	pressed   bool
	dragging  bool

	// Ticks left before the current phase is advanced
	waitTicks int
	// Board as it was before the last Advance; cleared cells flash in these colours
	before *core.Board

	// Run statistics
	swaps    int
	maxChain int
}

// Package-level variables for configuration
var (
	configPath       string
	difficultyPreset string
	logger           *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name ("easy", "normal", "hard").
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the debug logger handed to every new session.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new Match-3 game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Match-3"
}

// Reset loads the configuration and starts a fresh board.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = loadConfig()
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.paused = false
	g.waitTicks = 0
	g.swaps = 0
	g.maxChain = 0
	g.cursor = core.Pos{}
	g.pressed = false
	g.dragging = false

	g.start(core.WithSource(rand.New(rand.NewSource(cfg.Seed))))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// start opens a new session wired to a fresh animator.
func (g *Game) start(opts ...core.Option) {
	g.anim = newAnimator()
	g.before = nil
	opts = append([]core.Option{core.WithListener(g.anim), core.WithLogger(logger)}, opts...)

	session, err := core.NewSession(g.cfg.ToCore(), opts...)
	if err != nil {
		// Loaded configs are validated, so only a broken default lands here.
		panic("match3: cannot start session: " + err.Error())
	}
	g.session = session
	g.anim.clear()
}

// loadConfig reads the YAML config, falling back to defaults when it is unusable.
func loadConfig() config.Match3Config {
	cfg, err := config.LoadWithPreset(configPath, difficultyPreset)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultMatch3Config()
	}
	return cfg
}

// Resize recomputes the layout for a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	totalW, totalH := g.MinSize()
	g.tooSmall = w < totalW || h < totalH
	if g.tooSmall {
		g.releasePointer()
		return
	}

	x := (w - totalW) / 2
	y := (h - totalH) / 2
	g.layout = platformcore.GridLayout{
		X:     x + 1,
		Y:     y + 2,
		CellW: cellW,
		CellH: cellH,
		Rows:  g.cfg.Board.Rows,
		Cols:  g.cfg.Board.Cols,
	}
	g.panelX = x + totalW - panelW
	g.panelY = y + 1
	g.statusY = y + totalH - 1
}

// MinSize returns the smallest screen that fits the board and the side panel.
func (g *Game) MinSize() (w, h int) {
	boardW := g.cfg.Board.Cols*cellW + 2
	boardH := g.cfg.Board.Rows*cellH + 2
	return boardW + panelGap + panelW, max(boardH, len(g.panelLines())) + 2
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionQuit) {
		return platformcore.StepResult{State: g.State(), Ended: g.result()}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
		g.releasePointer()
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	var ended *platformcore.RunResult
	if in.Has(platformcore.ActionRestart) {
		ended = g.restart()
	}

	g.updateResolution()

	idle := !g.session.Busy()
	g.handleKeys(in)
	g.handlePointer(in.Pointer)
	if idle && g.session.Busy() {
		g.anim.beginSequence()
		g.waitTicks = g.ticksFor(g.session.Wait())
	}

	return platformcore.StepResult{State: g.State(), Ended: ended}
}

// restart starts a new board. It returns the finished run, or nil when the
// engine refused because a resolution is still playing.
func (g *Game) restart() *platformcore.RunResult {
	run := g.result()
	if err := g.session.Restart(); err != nil {
		return nil
	}
	g.anim.clear()
	g.swaps = 0
	g.maxChain = 0
	g.waitTicks = 0
	g.releasePointer()
	return run
}

// handleKeys moves the cursor and clicks the cell under it.
func (g *Game) handleKeys(in platformcore.InputFrame) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols

	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor = g.clampPos(g.cursor.Step(core.DirUp), rows, cols)
	case in.Has(platformcore.ActionDown):
		g.cursor = g.clampPos(g.cursor.Step(core.DirDown), rows, cols)
	case in.Has(platformcore.ActionLeft):
		g.cursor = g.clampPos(g.cursor.Step(core.DirLeft), rows, cols)
	case in.Has(platformcore.ActionRight):
		g.cursor = g.clampPos(g.cursor.Step(core.DirRight), rows, cols)
	}

	if in.Has(platformcore.ActionSelect) {
		g.input(g.session.Click(g.cursor))
	}
}

func (g *Game) clampPos(p core.Pos, rows, cols int) core.Pos {
	return core.P(platformcore.Clamp(p.Row, 0, rows-1), platformcore.Clamp(p.Col, 0, cols-1))
}

// handlePointer turns mouse events into clicks and drags.
//
// A press clicks the cell under it. The first motion with the button held
// starts a drag at the pressed cell, and the release ends it with the
// pointer's offset from that cell's centre.
func (g *Game) handlePointer(events []platformcore.PointerEvent) {
	for _, ev := range events {
		switch ev.Kind {
		case platformcore.PointerPress:
			g.releasePointer()
			row, col, ok := g.layout.CellAt(ev.X, ev.Y)
			if !ok {
				continue
			}
			p := core.P(row, col)
			g.cursor = p
			g.pressCell = p
			g.pressed = true
			g.input(g.session.Click(p))

		case platformcore.PointerMotion:
			if !g.pressed || g.dragging {
				continue
			}
			if err := g.session.DragStart(g.pressCell); err == nil {
				g.dragging = true
			}

		case platformcore.PointerRelease:
			if g.dragging {
				dx, dy := g.layout.Offset(g.pressCell.Row, g.pressCell.Col, ev.X, ev.Y)
				size := g.cfg.Input.CellSize
				g.input(g.session.DragRelease(g.pressCell, core.Vec{DX: dx * size, DY: dy * size}))
			}
			g.releasePointer()
		}
	}
}

// releasePointer forgets the press and cancels any drag the controller still holds.
func (g *Game) releasePointer() {
	if g.session == nil {
		return
	}
	if origin, ok := g.session.Controller().DragOrigin(); ok {
		// A zero displacement never passes the threshold.
		_ = g.session.DragRelease(origin, core.Vec{})
	}
	g.pressed = false
	g.dragging = false
}

// input drops declined input. Busy, out-of-bounds and non-adjacent requests
// leave the board untouched and are not shown to the player.
func (g *Game) input(err error) {
	if err == nil {
		return
	}
	if logger != nil && !errors.Is(err, core.ErrBusy) {
		logger.Debug("input declined", "err", err)
	}
}

// updateResolution counts down the current phase and advances the engine
// once its animation time has passed.
func (g *Game) updateResolution() {
	if g.session.Phase() == core.PhaseIdle {
		return
	}
	if g.waitTicks > 0 {
		g.waitTicks--
	}
	if g.waitTicks > 0 {
		return
	}

	g.anim.clear()
	g.before = g.session.Board()
	if g.session.Advance() == core.PhaseIdle {
		g.endSequence()
		return
	}
	g.waitTicks = g.ticksFor(g.session.Wait())
}

// endSequence folds a finished resolution into the run statistics.
func (g *Game) endSequence() {
	chain := g.anim.chain
	if chain == 0 {
		return
	}
	g.swaps++
	g.maxChain = max(g.maxChain, chain)
}

// ticksFor converts an animation duration to whole ticks, rounding up.
// Every phase is shown for at least one tick.
func (g *Game) ticksFor(d time.Duration) int {
	n := int((int64(d)*int64(g.tickRate) + int64(time.Second) - 1) / int64(time.Second))
	return max(n, 1)
}

func (g *Game) result() *platformcore.RunResult {
	return &platformcore.RunResult{
		Score:    g.session.Score(),
		Swaps:    g.swaps,
		MaxChain: g.maxChain,
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:  g.session.Score(),
		Paused: g.paused || g.tooSmall,
		Busy:   g.session.Busy(),
	}
}
