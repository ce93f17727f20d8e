package engine

import "github.com/serpentlabs/serpent/internal/geom"

// Event is the closed set of inputs that drive the game. All mutation of
// game state happens by folding events, one at a time, through Step.
type Event interface {
	gameEvent()
}

// Tick is a timer event. Candidate carries a food position proposed by the
// host's random source; the engine places it only when the cell is free,
// otherwise placement retries on the next tick with a fresh candidate.
type Tick struct {
	Candidate geom.Position
}

func (Tick) gameEvent() {}

// Direction asks the snake to move along a new axis. Requests that would
// reverse the snake onto itself are ignored by Step.
type Direction struct {
	Delta geom.Delta
}

func (Direction) gameEvent() {}

// Restart resets the game to the fixed initial state, from any state.
type Restart struct{}

func (Restart) gameEvent() {}

// Ignore is a deliberate no-op, used by input mappers for keys that carry
// no game meaning. Folding it leaves the state untouched.
type Ignore struct{}

func (Ignore) gameEvent() {}
