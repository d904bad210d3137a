package match3

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

type panelLine struct {
	text  string
	color platformcore.Color
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bounds := g.layout.Bounds()
	title := "MATCH-3"
	dst.DrawTextWithColor(bounds.X+(bounds.W-len(title))/2, bounds.Y-2, title, platformcore.ColorBrightWhite)
	dst.DrawBox(platformcore.NewRect(bounds.X-1, bounds.Y-1, bounds.W+2, bounds.H+2), platformcore.ColorGray)

	g.renderBoard(dst)
	g.renderMarkers(dst)
	g.renderPanel(dst)
	g.renderStatus(dst)

	if g.paused {
		cx, cy := bounds.Center()
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	w, h := g.MinSize()
	dst.DrawTextCentered(y-1, "Window too small", platformcore.ColorYellow)
	dst.DrawTextCentered(y, "Please resize terminal", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH), platformcore.ColorGray)
}

// renderBoard draws every cell. Tokens fill the middle two columns of a cell
// and change texture while their phase plays.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	blink := (g.tick/4)%2 == 0

	for row := range g.cfg.Board.Rows {
		for col := range g.cfg.Board.Cols {
			p := core.P(row, col)
			r := g.layout.CellRect(row, col)

			glyph := '█'
			color, ok := g.session.ColorAt(p)
			switch g.anim.effectAt(p) {
			case effectMoved:
				glyph = '▓'
			case effectCreated:
				glyph = '▒'
			case effectRemoved:
				if g.before != nil {
					color, ok = g.before.ColorAt(p)
				}
				glyph = '░'
				if blink {
					glyph = '▓'
				}
			}

			if !ok {
				dst.SetWithColor(r.X+1, r.Y, '·', platformcore.ColorGray)
				continue
			}
			c := platformcore.TokenColor(color)
			for dy := range cellH {
				dst.SetWithColor(r.X+1, r.Y+dy, glyph, c)
				dst.SetWithColor(r.X+2, r.Y+dy, glyph, c)
			}
		}
	}
}

// renderMarkers brackets the keyboard cursor, the selection and the drag origin.
func (g *Game) renderMarkers(dst *platformcore.Screen) {
	ctrl := g.session.Controller()

	g.bracket(dst, g.cursor, platformcore.ColorCyan)
	if p, ok := ctrl.DragOrigin(); ok {
		g.bracket(dst, p, platformcore.ColorBrightWhite)
	}
	if p, ok := ctrl.Selected(); ok {
		g.bracket(dst, p, platformcore.ColorBrightYellow)
	}
}

func (g *Game) bracket(dst *platformcore.Screen, p core.Pos, c platformcore.Color) {
	r := g.layout.CellRect(p.Row, p.Col)
	for dy := range cellH {
		dst.SetWithColor(r.X, r.Y+dy, '[', c)
		dst.SetWithColor(r.Right()-1, r.Y+dy, ']', c)
	}
}

// panelLines returns the side panel. The line count never changes, so the
// layout does not shift while playing.
func (g *Game) panelLines() []panelLine {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}

	gain := ""
	if g.anim != nil && g.anim.gained > 0 && g.session.Busy() {
		gain = fmt.Sprintf("+%d", g.anim.gained)
		if g.anim.chain > 1 {
			gain += fmt.Sprintf("  chain x%d", g.anim.chain)
		}
	}

	return []panelLine{
		{fmt.Sprintf("Score: %d", score), platformcore.ColorBrightWhite},
		{gain, platformcore.ColorBrightYellow},
		{fmt.Sprintf("Swaps: %d  Chain: %d", g.swaps, g.maxChain), platformcore.ColorGray},
		{"", platformcore.ColorDefault},
		{"Scoring", platformcore.ColorWhite},
		{fmt.Sprintf("3 in a row    %d", core.Score(3)), platformcore.ColorDefault},
		{fmt.Sprintf("4 in a row    %d", core.Score(4)), platformcore.ColorDefault},
		{fmt.Sprintf("5+ in a row   %d", core.Score(5)), platformcore.ColorDefault},
		{"", platformcore.ColorDefault},
		{"Click or drag a tile", platformcore.ColorGray},
		{"to an adjacent one", platformcore.ColorGray},
		{"to swap!", platformcore.ColorGray},
		{"", platformcore.ColorDefault},
		{"Arrows/WASD  Move", platformcore.ColorDefault},
		{"Space/Enter  Select", platformcore.ColorDefault},
		{"R Restart  P Pause", platformcore.ColorDefault},
		{"Q Quit", platformcore.ColorDefault},
	}
}

func (g *Game) renderPanel(dst *platformcore.Screen) {
	for i, line := range g.panelLines() {
		dst.DrawTextWithColor(g.panelX, g.panelY+i, line.text, line.color)
	}
}

// renderStatus shows what the board is doing on the line under the frame.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	ctrl := g.session.Controller()
	x := g.layout.X - 1

	switch {
	case g.session.Busy():
		dst.DrawTextWithColor(x, g.statusY, "Resolving: "+g.session.Phase().String(), platformcore.ColorGray)
	case hasSelection(ctrl):
		p, _ := ctrl.Selected()
		dst.DrawTextWithColor(x, g.statusY, fmt.Sprintf("Selected %v: pick a neighbour", p), platformcore.ColorYellow)
	}
}

func hasSelection(ctrl *core.Controller) bool {
	_, ok := ctrl.Selected()
	return ok
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextWithColor(x, box.Y+1+i, line, platformcore.ColorBrightWhite)
	}
}
