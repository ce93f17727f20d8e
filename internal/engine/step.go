package engine

import "github.com/serpentlabs/serpent/internal/geom"

// Step folds one event into the state under DefaultParams and returns the
// resulting state. See StepWith.
func Step(ev Event, st State) State {
	return StepWith(DefaultParams(), ev, st)
}

// StepWith is the transition function of the game. It is pure and total
// over well-formed events: same event and state in, same state out, no
// side effects. Rules, in priority order:
//
//  1. Restart returns the fixed initial state, from any state.
//  2. Once the game is over every other event is absorbed unchanged.
//  3. Direction changes are adopted only when they switch the movement
//     axis; a 180° reversal onto the body is ignored.
//  4. Tick advances the clock, moves the snake on move boundaries, and
//     handles collisions, growth, and food placement.
func StepWith(p Params, ev Event, st State) State {
	if _, ok := ev.(Restart); ok {
		return InitialStateWith(p)
	}
	if st.Over {
		return st
	}

	switch e := ev.(type) {
	case Direction:
		if !e.Delta.SameAxis(st.Direction) {
			st.Direction = e.Delta
		}
		return st
	case Tick:
		return stepTick(p, e, st)
	default:
		// Ignore, and anything outside the closed event set.
		return st
	}
}

func stepTick(p Params, e Tick, st State) State {
	out := st
	moveBoundary := st.Ticks%uint64(p.MoveEvery) == 0

	if moveBoundary {
		next := st.Snake.Head().Add(st.Direction)

		if geom.OutOfBounds(next, p.BoardSize) || st.Snake.Contains(next) {
			// Fatal tick: the clock still advances, everything else
			// freezes as of the collision.
			out.Over = true
			out.Ticks++
			return out
		}

		ate := st.HasFood && st.Food == next
		out.Snake = st.Snake.Advance(next, ate)
		if ate {
			out.HasFood = false
		}
	}

	// Food absent at the start of the tick (not just eaten on it) is
	// replaced by the candidate when the cell is free of the post-move
	// body; otherwise placement retries on the next tick.
	if !st.HasFood && !out.Snake.Contains(e.Candidate) {
		out.Food = e.Candidate
		out.HasFood = true
	}

	out.Ticks++
	return out
}
