package core

import (
	"strings"
	"testing"
)

// rowsOf returns the screen as plain text rows.
func rowsOf(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v, expected a blank cell", x, y, c)
			}
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 4, 0},
		{"above", 0, -1},
		{"below", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetWithColor(tt.x, tt.y, 'X', ColorRed) // Must not panic
			if got := s.GetCell(tt.x, tt.y); got != blank {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", tt.x, tt.y, got)
			}
			if got := s.Get(tt.x, tt.y); got != ' ' {
				t.Errorf("Get(%d, %d) = %q, expected space", tt.x, tt.y, got)
			}
		})
	}
	if s.String() != "    \n    \n    \n    " {
		t.Errorf("out of bounds writes leaked onto the screen: %q", s.String())
	}
}

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(8, 2)

	s.SetWithColor(1, 1, '█', TokenColor(2))
	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != ColorToken2 {
		t.Errorf("GetCell(1, 1) = %+v, expected token 2 block", c)
	}

	// Plain Set drops the color.
	s.Set(1, 1, 'x')
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Set left color %d", c.Color)
	}

	s.DrawTextWithColor(2, 0, "abc", ColorYellow)
	for x, expected := range []Color{ColorDefault, ColorDefault, ColorYellow, ColorYellow, ColorYellow, ColorDefault} {
		if got := s.GetCell(x, 0).Color; got != expected {
			t.Errorf("color at x=%d = %d, expected %d", x, got, expected)
		}
	}

	s.Fill('#')
	if c := s.GetCell(3, 0); c.Rune != '#' || c.Color != ColorDefault {
		t.Errorf("Fill should reset colors, got %+v", c)
	}

	s.Clear()
	if c := s.GetCell(3, 0); c != blank {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"inside", 1, "Hi", " Hi   "},
		{"clipped right", 4, "Hello", "    He"},
		{"clipped left", -2, "Hello", "llo   "},
		{"multibyte", 0, "←→x", "←→x   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			s.DrawText(tt.x, 0, tt.text)
			if got := s.Row(0); got != tt.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextCentered(0, "ab", ColorCyan)
	s.DrawTextCentered(1, "·ab·", ColorGray) // Centred by runes, not bytes

	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "   ·ab·   " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorCyan {
		t.Error("centred text should keep its color")
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawRect(NewRect(0, 0, 7, 5), '.', ColorGray)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorWhite)

	expected := []string{
		".......",
		".┌───┐.",
		".│...│.",
		".└───┘.",
		".......",
	}
	rows := rowsOf(s)
	for y := range expected {
		if rows[y] != expected[y] {
			t.Errorf("row %d = %q, expected %q", y, rows[y], expected[y])
		}
	}

	if s.GetCell(1, 1).Color != ColorWhite {
		t.Error("box corner should use the box color")
	}
	if s.GetCell(3, 2).Color != ColorGray {
		t.Error("box interior should keep the fill color")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawTextWithColor(0, 0, "Hello", ColorGreen)
	s.DrawText(0, 3, "World")

	s.Resize(3, 2)
	if got := s.String(); got != "Hel\n   " {
		t.Errorf("after shrinking, String() = %q", got)
	}

	s.Resize(7, 3)
	if got := s.Row(0); got != "Hel    " {
		t.Errorf("after growing, Row(0) = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("resize should keep colors")
	}
	if got := s.Row(2); got != "       " {
		t.Errorf("new rows should be blank, got %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 1)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
	if got := s.Row(1); got != "    " {
		t.Errorf("Row(1) = %q, expected spaces", got)
	}
}
