// Package config provides YAML-based configuration loading and
// difficulty presets for the match-3 game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board     BoardConfig     `yaml:"board"`
	Input     InputConfig     `yaml:"input"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the grid and its palette.
type BoardConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	PaletteSize int `yaml:"palette_size"`
}

// InputConfig defines drag gesture recognition.
type InputConfig struct {
	CellSize      float64 `yaml:"cell_size"`      // Edge length of a cell in drag units
	DragThreshold float64 `yaml:"drag_threshold"` // Fraction of cell_size a drag must exceed
}

// AnimationConfig defines per-phase animation durations in milliseconds.
type AnimationConfig struct {
	SwapMs         int `yaml:"swap_ms"`
	FallMs         int `yaml:"fall_ms"`
	RemoveMs       int `yaml:"remove_ms"`
	CascadeDelayMs int `yaml:"cascade_delay_ms"`
}

// Validate reports every problem that would stop the game from starting.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Rows < core.MinDimension || c.Board.Cols < core.MinDimension {
		errs = append(errs, fmt.Errorf("config: board must be at least %dx%d, got %dx%d",
			core.MinDimension, core.MinDimension, c.Board.Rows, c.Board.Cols))
	}
	if c.Board.PaletteSize < core.MinPaletteSize {
		errs = append(errs, fmt.Errorf("config: palette size must be at least %d, got %d", core.MinPaletteSize, c.Board.PaletteSize))
	}
	if c.Board.PaletteSize > core.MaxPaletteSize {
		errs = append(errs, fmt.Errorf("config: palette size must be at most %d, got %d", core.MaxPaletteSize, c.Board.PaletteSize))
	}
	if c.Input.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("config: cell size must be positive, got %v", c.Input.CellSize))
	}
	if c.Input.DragThreshold <= 0 || c.Input.DragThreshold > 1 {
		errs = append(errs, fmt.Errorf("config: drag threshold must be in (0, 1], got %v", c.Input.DragThreshold))
	}
	a := c.Animation
	if a.SwapMs < 0 || a.FallMs < 0 || a.RemoveMs < 0 || a.CascadeDelayMs < 0 {
		errs = append(errs, errors.New("config: animation durations must not be negative"))
	}
	return errors.Join(errs...)
}

// ToCore converts the YAML configuration into engine parameters.
func (c Match3Config) ToCore() core.Config {
	return core.Config{
		Rows:           c.Board.Rows,
		Cols:           c.Board.Cols,
		PaletteSize:    c.Board.PaletteSize,
		CellSize:       c.Input.CellSize,
		DragThreshold:  c.Input.DragThreshold,
		SwapDuration:   ms(c.Animation.SwapMs),
		FallDuration:   ms(c.Animation.FallMs),
		RemoveDuration: ms(c.Animation.RemoveMs),
		CascadeDelay:   ms(c.Animation.CascadeDelayMs),
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
