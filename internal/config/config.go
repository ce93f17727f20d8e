// Package config provides YAML-based configuration and difficulty
// presets for the serpent platform.
package config

import (
	"fmt"

	"github.com/serpentlabs/serpent/internal/engine"
)

// Config contains all tunable settings.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	// Size is the board half-extent: both axes span [-size, size].
	Size int `yaml:"size"`
	// StartLen is the initial snake length in segments.
	StartLen int `yaml:"start_len"`
}

// TimingConfig decouples timer frequency from game speed.
type TimingConfig struct {
	// TickRate is how many ticks per second the host timer emits.
	TickRate int `yaml:"tick_rate"`
	// MoveEvery is how many ticks pass between snake moves.
	MoveEvery int `yaml:"move_every"`
}

// Params converts the configuration into engine rules.
func (c Config) Params() engine.Params {
	return engine.Params{
		BoardSize: c.Board.Size,
		MoveEvery: c.Timing.MoveEvery,
		StartLen:  c.Board.StartLen,
	}
}

// Validate rejects out-of-contract values before they reach the engine.
func (c Config) Validate() error {
	if c.Board.Size < 1 {
		return fmt.Errorf("config: board size %d must be at least 1", c.Board.Size)
	}
	if c.Board.StartLen < 1 {
		return fmt.Errorf("config: start length %d must be at least 1", c.Board.StartLen)
	}
	if c.Board.StartLen > c.Board.Size+1 {
		return fmt.Errorf("config: start length %d does not fit on a board of size %d", c.Board.StartLen, c.Board.Size)
	}
	if c.Timing.TickRate < 1 {
		return fmt.Errorf("config: tick rate %d must be at least 1", c.Timing.TickRate)
	}
	if c.Timing.MoveEvery < 1 {
		return fmt.Errorf("config: move_every %d must be at least 1", c.Timing.MoveEvery)
	}
	return nil
}

// DifficultyPreset represents a named game speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	// DifficultyFixed keeps whatever the config file says.
	DifficultyFixed DifficultyPreset = "fixed"
)

// moveEveryForPreset maps presets to ticks per move; fewer ticks per move
// means a faster snake.
func moveEveryForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 7, true
	case DifficultyNormal:
		return 5, true
	case DifficultyHard:
		return 3, true
	default:
		return 0, false
	}
}

// ApplyPreset overrides the configured speed with the preset's. Unknown
// presets and DifficultyFixed leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if moveEvery, ok := moveEveryForPreset(preset); ok {
		cfg.Timing.MoveEvery = moveEvery
	}
}
