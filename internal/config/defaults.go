package config

import (
	_ "embed"
)

//go:embed defaults/serpent.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 31x31 board (half-extent
// 15), four starting segments, and one move every five ticks at 60 ticks
// per second.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:     15,
			StartLen: 4,
		},
		Timing: TimingConfig{
			TickRate:  60,
			MoveEvery: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
