// Package snake implements the snake body as a persistent double-ended
// queue over two position stacks. Pushing a new head and dropping the old
// tail are both amortized O(1), and every operation returns a new value
// instead of mutating the receiver, so engine states can be replaced
// wholesale per tick and replayed freely in tests.
package snake

import "github.com/serpentlabs/serpent/internal/geom"

// Snake is an ordered sequence of board positions from head to tail.
//
// The body is split across two partitions: front holds positions in
// head-first order, back holds positions in tail-first order. The full
// body is front followed by back reversed. The split is purely an
// implementation detail of the deque; Contains and Positions are
// independent of where the partition boundary currently sits.
type Snake struct {
	front []geom.Position // head at index 0
	back  []geom.Position // tail at index 0
}

// New builds a snake from positions listed head to tail.
// Panics if no positions are given: a snake body is never empty.
func New(positions ...geom.Position) Snake {
	if len(positions) == 0 {
		panic("snake: body must not be empty")
	}
	front := make([]geom.Position, len(positions))
	copy(front, positions)
	return Snake{front: front}
}

// Head returns the current head position.
// Panics if both partitions are empty, which no sequence of operations
// can produce; the check guards against contract breaches, it is not a
// recoverable condition.
func (s Snake) Head() geom.Position {
	if len(s.front) > 0 {
		return s.front[0]
	}
	if len(s.back) > 0 {
		return s.back[len(s.back)-1]
	}
	panic("snake: invariant violation: both partitions empty")
}

// Advance returns a new snake with newHead prepended. When grow is false
// the old tail is dropped so the body keeps its length; when grow is true
// the body lengthens by one. The receiver is left untouched.
func (s Snake) Advance(newHead geom.Position, grow bool) Snake {
	front := make([]geom.Position, 0, len(s.front)+1)
	front = append(front, newHead)
	front = append(front, s.front...)

	if grow {
		return Snake{front: front, back: s.back}
	}

	back := s.back
	if len(back) == 0 {
		// Rebalance: reverse the front into the back so the tail is
		// reachable at index 0.
		back = make([]geom.Position, 0, len(front))
		for i := len(front) - 1; i >= 0; i-- {
			back = append(back, front[i])
		}
		front = nil
	}
	return Snake{front: front, back: back[1:]}
}

// Contains reports whether the body occupies p. The test covers both
// partitions so it holds regardless of the current split.
func (s Snake) Contains(p geom.Position) bool {
	for _, seg := range s.front {
		if seg == p {
			return true
		}
	}
	for _, seg := range s.back {
		if seg == p {
			return true
		}
	}
	return false
}

// Len returns the number of body segments.
func (s Snake) Len() int {
	return len(s.front) + len(s.back)
}

// Positions returns the full body ordered head to tail.
// The result is a fresh slice; callers may modify it.
func (s Snake) Positions() []geom.Position {
	out := make([]geom.Position, 0, s.Len())
	out = append(out, s.front...)
	for i := len(s.back) - 1; i >= 0; i-- {
		out = append(out, s.back[i])
	}
	return out
}
