package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", runeKey(' '), core.ActionSelect, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.expected)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('r'), &frame) {
		t.Error("MapKeyToFrame(r) reported quit")
	}
	if km.MapKeyToFrame(runeKey('x'), &frame) {
		t.Error("MapKeyToFrame(x) reported quit")
	}
	if !frame.Has(core.ActionRestart) {
		t.Error("frame should hold Restart")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not be recorded")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("MapKeyToFrame(q) should report quit")
	}
	if !frame.Has(core.ActionQuit) {
		t.Error("frame should hold Quit")
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.MouseMsg
		ok       bool
		expected core.PointerKind
	}{
		{
			"left press",
			tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
			true, core.PointerPress,
		},
		{
			"left drag",
			tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
			true, core.PointerMotion,
		},
		{
			"release without button",
			tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease},
			true, core.PointerRelease,
		},
		{
			"right press",
			tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonRight, Action: tea.MouseActionPress},
			false, 0,
		},
		{
			"hover",
			tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion},
			false, 0,
		},
		{
			"wheel",
			tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress},
			false, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := MapMouse(tt.msg)
			if ok != tt.ok {
				t.Fatalf("MapMouse() ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.expected {
				t.Errorf("MapMouse() kind = %v, expected %v", ev.Kind, tt.expected)
			}
			if ev.X != 3 || ev.Y != 4 {
				t.Errorf("MapMouse() position = (%d,%d), expected (3,4)", ev.X, ev.Y)
			}
		})
	}
}
