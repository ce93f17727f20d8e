// Package engine contains the deterministic snake state machine: a value
// type State and a pure transition function Step. The engine performs no
// I/O, never blocks, and owns no goroutines; hosts are responsible for
// serializing their input sources into a single ordered event stream.
package engine

import (
	"github.com/serpentlabs/serpent/internal/geom"
	"github.com/serpentlabs/serpent/internal/snake"
)

// Params holds the fixed rules of a game.
type Params struct {
	// BoardSize is the board half-extent in cells; both axes span
	// [-BoardSize, BoardSize].
	BoardSize int
	// MoveEvery is the number of ticks between snake moves. It decouples
	// the host's timer frequency from game speed.
	MoveEvery int
	// StartLen is the initial snake length in segments.
	StartLen int
}

// DefaultParams returns the standard rules.
func DefaultParams() Params {
	return Params{
		BoardSize: geom.DefaultBoardSize,
		MoveEvery: 5,
		StartLen:  4,
	}
}

// State is the complete game state. It is a value: Step returns a new
// State and never mutates its argument, so snapshots can be kept, compared,
// and replayed freely.
type State struct {
	Snake     snake.Snake
	Direction geom.Delta
	// Food is the current food cell; it is only meaningful while HasFood
	// is true. A flag instead of a pointer keeps State free of aliasing.
	Food    geom.Position
	HasFood bool
	// Ticks counts every Tick event folded so far, including the one on
	// which the game ends.
	Ticks uint64
	Over  bool
}

// Head returns the snake's head position.
func (s State) Head() geom.Position {
	return s.Snake.Head()
}

// Score is the number of food pieces eaten, i.e. segments grown beyond the
// starting length.
func (s State) Score(p Params) int {
	return s.Snake.Len() - p.StartLen
}

// InitialState returns the fixed starting state under DefaultParams:
// head at the origin, body trailing down the negative Y axis, moving up,
// no food placed.
func InitialState() State {
	return InitialStateWith(DefaultParams())
}

// InitialStateWith returns the fixed starting state for the given rules.
// It is deterministic: every call yields the identical value.
func InitialStateWith(p Params) State {
	startLen := p.StartLen
	if startLen < 1 {
		startLen = 1
	}
	body := make([]geom.Position, startLen)
	for i := range body {
		body[i] = geom.Position{X: 0, Y: -i}
	}
	return State{
		Snake:     snake.New(body...),
		Direction: geom.Up,
	}
}
