package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Interface colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)

// Token colors. The first six form a colour-blind safe palette.
const (
	ColorToken0 Color = iota + 32
	ColorToken1
	ColorToken2
	ColorToken3
	ColorToken4
	ColorToken5
	ColorToken6
	ColorToken7
)

// TokenColorCount is the number of distinct token colors.
const TokenColorCount = 8

// TokenColor returns the screen color for a palette index.
// Out-of-range indices map to ColorDefault.
func TokenColor(index int) Color {
	if index < 0 || index >= TokenColorCount {
		return ColorDefault
	}
	return ColorToken0 + Color(index)
}

// IsToken reports whether c is one of the token colors.
func (c Color) IsToken() bool {
	return c >= ColorToken0 && c <= ColorToken7
}
