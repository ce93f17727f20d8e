// Package geom provides the board coordinate types for the snake engine.
// The board is centered on the origin: a half-extent of N means both axes
// span [-N, N]. The package contains no external dependencies to keep the
// game core pure and testable.
package geom

import "fmt"

// DefaultBoardSize is the half-extent of the playable board in cells.
const DefaultBoardSize = 15

// Position is a board-relative logical coordinate.
type Position struct {
	X, Y int
}

// Add returns the position shifted by one step of d.
func (p Position) Add(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// String returns the coordinate as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Delta is a unit movement step along exactly one axis.
// Valid deltas satisfy |DX| + |DY| == 1; construct them through the
// package constructors so malformed values are rejected before they
// reach the engine.
type Delta struct {
	DX, DY int
}

// The four legal movement directions.
var (
	Up    = Delta{DX: 0, DY: 1}
	Down  = Delta{DX: 0, DY: -1}
	Left  = Delta{DX: -1, DY: 0}
	Right = Delta{DX: 1, DY: 0}
)

// NewDelta builds a Delta from raw components, rejecting anything that is
// not a unit step along a single axis. Event producers must call this (or
// use the predefined directions) so the engine never sees a malformed delta.
func NewDelta(dx, dy int) (Delta, error) {
	if abs(dx)+abs(dy) != 1 {
		return Delta{}, fmt.Errorf("geom: delta (%d, %d) is not a unit step along one axis", dx, dy)
	}
	return Delta{DX: dx, DY: dy}, nil
}

// Horizontal reports whether the delta moves along the X axis.
func (d Delta) Horizontal() bool {
	return d.DX != 0
}

// SameAxis reports whether two deltas move along the same axis.
// A direction change is only meaningful when the axis flips, which is
// what rules out instant 180° reversals.
func (d Delta) SameAxis(other Delta) bool {
	return d.Horizontal() == other.Horizontal()
}

// String returns a compass name for the four unit deltas.
func (d Delta) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("delta(%d, %d)", d.DX, d.DY)
	}
}

// OutOfBounds reports whether p lies outside a board with the given
// half-extent.
func OutOfBounds(p Position, boardSize int) bool {
	return abs(p.X) > boardSize || abs(p.Y) > boardSize
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
