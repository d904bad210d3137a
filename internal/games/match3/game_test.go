package match3

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// At 10 ticks per second the stock timings are 2 ticks per swap, 3 for
// removal, 3 for the fall and 4 for the refill with its cascade delay.
const testTickRate = 10

type scripted struct {
	seq []int
	i   int
}

func (s *scripted) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	return v
}

// baseColors is a run-free grid.
func baseColors() [][]int {
	grid := make([][]int, 8)
	for r := range grid {
		grid[r] = make([]int, 8)
		for c := range grid[r] {
			grid[r][c] = (c + 2*r) % 6
		}
	}
	return grid
}

// threeRunColors makes swapping (0,2) with (0,3) complete three 4s in row 0.
func threeRunColors() [][]int {
	colors := baseColors()
	colors[0] = []int{4, 4, 2, 4, 0, 5, 0, 1}
	return colors
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "match3.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  palette_size: 8\n"), 0o600))
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
	})
}

func runtimeConfig() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: testTickRate, Seed: 7}
}

// newTestGame starts a game on a fixed board. Refills draw from refill.
func newTestGame(t *testing.T, colors [][]int, refill ...int) *Game {
	t.Helper()
	isolateConfig(t)
	if len(refill) == 0 {
		refill = []int{6, 7}
	}

	g := New()
	g.Reset(runtimeConfig())
	require.False(t, g.tooSmall)

	b, err := core.NewBoardFromColors(colors)
	require.NoError(t, err)
	g.start(core.WithBoard(b), core.WithSource(&scripted{seq: refill}))
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func pointer(events ...platformcore.PointerEvent) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, ev := range events {
		f.AddPointer(ev)
	}
	return f
}

// cellCenter returns the screen position in the middle of a cell.
func cellCenter(g *Game, p core.Pos) (x, y int) {
	return g.layout.CellRect(p.Row, p.Col).Center()
}

// runUntilIdle steps empty frames and returns how many it took.
func runUntilIdle(t *testing.T, g *Game) int {
	t.Helper()
	for i := 1; i <= 1000; i++ {
		g.Step(frame())
		if !g.session.Busy() {
			return i
		}
	}
	t.Fatal("resolution did not finish")
	return 0
}

// swapByKeyboard walks the cursor from (0,0) to (0,2), selects it and clicks (0,3).
func swapByKeyboard(g *Game) {
	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionSelect))
	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionSelect))
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(GameID))

	g, err := registry.Create(GameID)
	require.NoError(t, err)
	assert.Equal(t, "Match-3", g.Title())
	assert.Equal(t, GameID, g.ID())
}

func TestResetDeterministic(t *testing.T) {
	isolateConfig(t)

	g1, g2 := New(), New()
	g1.Reset(runtimeConfig())
	g2.Reset(runtimeConfig())

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.NoError(t, g1.session.Board().Verify())
	assert.Zero(t, g1.session.Board().EmptyCount())
	assert.Empty(t, core.FindMatches(g1.session.Board()))
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() {
		SetConfigPath("")
	})

	g := New()
	g.Reset(runtimeConfig())
	assert.Equal(t, 6, g.cfg.Board.PaletteSize)
	assert.Equal(t, 8, g.session.Board().Rows())
}

func TestKeyboardSwapPlaysEveryPhase(t *testing.T) {
	g := newTestGame(t, threeRunColors())

	swapByKeyboard(g)
	require.True(t, g.session.Busy())
	require.Equal(t, core.PhaseSwapping, g.session.Phase())
	assert.True(t, g.State().Busy)

	g.Step(frame())
	assert.Equal(t, core.PhaseSwapping, g.session.Phase(), "swap is held for two ticks")
	g.Step(frame())
	require.Equal(t, core.PhaseRemoving, g.session.Phase())
	assert.Equal(t, effectRemoved, g.anim.effectAt(core.P(0, 0)))
	assert.Equal(t, 100, g.State().Score)

	steps := runUntilIdle(t, g)
	assert.Equal(t, 10, steps, "remove, fall and refill take 3+3+4 ticks")

	assert.Equal(t, []int{6, 7, 6, 2, 0, 5, 0, 1}, g.session.Board().Colors()[0])
	assert.Equal(t, 1, g.swaps)
	assert.Equal(t, 1, g.maxChain)
	assert.False(t, g.State().Busy)
}

func TestCascadeCountsChain(t *testing.T) {
	// The first refill lines up three 6s; the second one settles.
	g := newTestGame(t, threeRunColors(), 6, 6, 6, 7, 6, 7)

	swapByKeyboard(g)
	runUntilIdle(t, g)

	assert.Equal(t, 200, g.State().Score)
	assert.Equal(t, 1, g.swaps)
	assert.Equal(t, 2, g.maxChain)
}

func TestRevertedSwapDoesNotCount(t *testing.T) {
	g := newTestGame(t, baseColors())
	before := g.session.Board()

	ax, ay := cellCenter(g, core.P(4, 4))
	bx, by := cellCenter(g, core.P(4, 5))
	g.Step(pointer(
		platformcore.PointerEvent{Kind: platformcore.PointerPress, X: ax, Y: ay},
		platformcore.PointerEvent{Kind: platformcore.PointerRelease, X: ax, Y: ay},
	))
	g.Step(pointer(
		platformcore.PointerEvent{Kind: platformcore.PointerPress, X: bx, Y: by},
		platformcore.PointerEvent{Kind: platformcore.PointerRelease, X: bx, Y: by},
	))
	require.True(t, g.session.Busy())

	assert.Equal(t, 4, runUntilIdle(t, g), "swap and revert take two ticks each")
	assert.True(t, g.session.Board().Equal(before))
	assert.Zero(t, g.State().Score)
	assert.Zero(t, g.swaps)
}

func TestPointerDrag(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  int // Release offset from the pressed cell's centre, in characters
		swapped bool
	}{
		{"one cell right", cellW, 0, true},
		{"half a cell right", cellW / 2, 0, true},
		{"barely moved", 0, 0, false},
		{"off the board above", 0, -cellH, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, threeRunColors())
			x, y := cellCenter(g, core.P(0, 2))

			g.Step(pointer(
				platformcore.PointerEvent{Kind: platformcore.PointerPress, X: x, Y: y},
				platformcore.PointerEvent{Kind: platformcore.PointerMotion, X: x + tc.dx, Y: y + tc.dy},
				platformcore.PointerEvent{Kind: platformcore.PointerRelease, X: x + tc.dx, Y: y + tc.dy},
			))

			assert.Equal(t, tc.swapped, g.session.Busy())
			_, dragging := g.session.Controller().DragOrigin()
			assert.False(t, dragging, "release always ends the drag")
			_, selected := g.session.Controller().Selected()
			assert.False(t, selected, "starting a drag clears the click selection")
			if tc.swapped {
				runUntilIdle(t, g)
				assert.Equal(t, 100, g.State().Score)
			}
		})
	}
}

func TestPressOutsideBoardIgnored(t *testing.T) {
	g := newTestGame(t, baseColors())

	g.Step(pointer(platformcore.PointerEvent{Kind: platformcore.PointerPress, X: 0, Y: 0}))
	_, selected := g.session.Controller().Selected()
	assert.False(t, selected)
	assert.False(t, g.pressed)
}

func TestInputDroppedWhileBusy(t *testing.T) {
	g := newTestGame(t, threeRunColors())
	swapByKeyboard(g)
	require.True(t, g.session.Busy())

	x, y := cellCenter(g, core.P(5, 5))
	g.Step(pointer(platformcore.PointerEvent{Kind: platformcore.PointerPress, X: x, Y: y}))
	g.Step(frame(platformcore.ActionSelect))

	_, selected := g.session.Controller().Selected()
	assert.False(t, selected)
	assert.Equal(t, core.P(5, 5), g.cursor, "the cursor still follows the pointer")
}

func TestRestartEndsRun(t *testing.T) {
	// Eight distinct values keep the repopulation after restart from stalling.
	g := newTestGame(t, threeRunColors(), 6, 7, 0, 1, 2, 3, 4, 5)
	swapByKeyboard(g)
	g.Step(frame())
	g.Step(frame())
	require.Equal(t, core.PhaseRemoving, g.session.Phase())

	res := g.Step(frame(platformcore.ActionRestart))
	assert.Nil(t, res.Ended, "restart is refused mid-resolution")
	assert.Equal(t, 100, res.State.Score)

	runUntilIdle(t, g)
	res = g.Step(frame(platformcore.ActionRestart))
	require.NotNil(t, res.Ended)
	assert.Equal(t, platformcore.RunResult{Score: 100, Swaps: 1, MaxChain: 1}, *res.Ended)
	assert.Zero(t, res.State.Score)
	assert.Zero(t, g.swaps)
	assert.Zero(t, g.session.Board().EmptyCount())
}

func TestQuitReportsRun(t *testing.T) {
	g := newTestGame(t, threeRunColors())
	swapByKeyboard(g)
	runUntilIdle(t, g)

	res := g.Step(frame(platformcore.ActionQuit))
	require.NotNil(t, res.Ended)
	assert.Equal(t, 100, res.Ended.Score)
}

func TestPauseFreezesResolution(t *testing.T) {
	g := newTestGame(t, threeRunColors())
	swapByKeyboard(g)

	g.Step(frame(platformcore.ActionPause))
	for range 20 {
		g.Step(frame())
	}
	assert.Equal(t, core.PhaseSwapping, g.session.Phase())
	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	g.Step(frame(platformcore.ActionPause))
	runUntilIdle(t, g)
	assert.Equal(t, 100, g.State().Score)
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, threeRunColors())
	before := g.session.Board()

	g.Resize(120, 40)
	assert.False(t, g.tooSmall)
	assert.True(t, g.session.Board().Equal(before))

	g.Resize(30, 10)
	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := platformcore.NewScreen(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRenderBoardAndPanel(t *testing.T) {
	g := newTestGame(t, threeRunColors())
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "MATCH-3")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "5+ in a row   400")

	r := g.layout.CellRect(0, 0)
	cell := screen.GetCell(r.X+1, r.Y)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, platformcore.TokenColor(4), cell.Color)
	assert.Equal(t, '[', screen.Get(r.X, r.Y), "cursor brackets the first cell")
}

func TestRenderFlashesRemovedCells(t *testing.T) {
	g := newTestGame(t, threeRunColors())
	swapByKeyboard(g)
	g.Step(frame())
	g.Step(frame())
	require.Equal(t, core.PhaseRemoving, g.session.Phase())

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	r := g.layout.CellRect(0, 1)
	cell := screen.GetCell(r.X+1, r.Y)
	assert.Contains(t, []rune{'░', '▓'}, cell.Rune)
	assert.Equal(t, platformcore.TokenColor(4), cell.Color, "cleared cells flash in their old colour")
	assert.True(t, strings.Contains(screen.String(), "Resolving: Removing"))
}

func TestTicksFor(t *testing.T) {
	g := &Game{tickRate: 60}

	tests := []struct {
		d        time.Duration
		expected int
	}{
		{0, 1},
		{16 * time.Millisecond, 1},
		{17 * time.Millisecond, 2},
		{200 * time.Millisecond, 12},
		{400 * time.Millisecond, 24},
	}

	for _, tc := range tests {
		if got := g.ticksFor(tc.d); got != tc.expected {
			t.Errorf("ticksFor(%v) = %d, expected %d", tc.d, got, tc.expected)
		}
	}
}
