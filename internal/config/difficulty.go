package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// More colours make runs rarer, so difficulty is expressed as palette size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// PaletteForPreset returns the number of colours used by a preset.
func PaletteForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 7
	default:
		return 6
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	cfg.Board.PaletteSize = PaletteForPreset(preset)
}
