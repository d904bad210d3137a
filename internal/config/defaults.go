package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in match-3 configuration.
// It mirrors defaults/match3.yaml and is used when the embedded file cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:        8,
			Cols:        8,
			PaletteSize: 6,
		},
		Input: InputConfig{
			CellSize:      70,
			DragThreshold: 1.0 / 3.0,
		},
		Animation: AnimationConfig{
			SwapMs:         200,
			FallMs:         300,
			RemoveMs:       300,
			CascadeDelayMs: 100,
		},
	}
}
