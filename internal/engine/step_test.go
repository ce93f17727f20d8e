package engine

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/serpentlabs/serpent/internal/geom"
	"github.com/serpentlabs/serpent/internal/snake"
)

// farCandidate is a food candidate well away from anything the small test
// scenarios touch.
var farCandidate = geom.Position{X: 10, Y: 10}

func tickN(t *testing.T, st State, n int, candidate geom.Position) State {
	t.Helper()
	for i := 0; i < n; i++ {
		st = Step(Tick{Candidate: candidate}, st)
	}
	return st
}

func TestInitialState(t *testing.T) {
	st := InitialState()

	want := []geom.Position{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -2}, {X: 0, Y: -3}}
	if got := st.Snake.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("initial body = %v, expected %v", got, want)
	}
	if st.Direction != geom.Up {
		t.Errorf("initial direction = %v, expected up", st.Direction)
	}
	if st.HasFood {
		t.Error("initial state should have no food")
	}
	if st.Ticks != 0 || st.Over {
		t.Errorf("initial clock/over = %d/%v, expected 0/false", st.Ticks, st.Over)
	}

	// Deterministic: two calls yield identical values.
	if !reflect.DeepEqual(InitialState(), st) {
		t.Error("InitialState() is not deterministic")
	}
}

func TestMoveBoundaryScenario(t *testing.T) {
	// With MoveEvery = 5, five consecutive ticks cross exactly one move
	// boundary: the head advances to (0, 1) once and then waits.
	st := InitialState()
	st = tickN(t, st, DefaultParams().MoveEvery, farCandidate)

	if st.Head() != (geom.Position{X: 0, Y: 1}) {
		t.Errorf("head = %v after %d ticks, expected (0, 1)", st.Head(), DefaultParams().MoveEvery)
	}
	if st.Snake.Len() != 4 {
		t.Errorf("length = %d, expected 4", st.Snake.Len())
	}
	if !st.HasFood || st.Food != farCandidate {
		t.Errorf("food = %v/%v, expected placed at %v", st.Food, st.HasFood, farCandidate)
	}
	if st.Ticks != uint64(DefaultParams().MoveEvery) {
		t.Errorf("ticks = %d, expected %d", st.Ticks, DefaultParams().MoveEvery)
	}
}

func TestDirectionRules(t *testing.T) {
	tests := []struct {
		name     string
		request  geom.Delta
		expected geom.Delta // direction after the event, starting from up
	}{
		{"adopt left", geom.Left, geom.Left},
		{"adopt right", geom.Right, geom.Right},
		{"reject reversal", geom.Down, geom.Up},
		{"same direction re-press", geom.Up, geom.Up},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := InitialState()
			st = Step(Direction{Delta: tc.request}, st)
			if st.Direction != tc.expected {
				t.Errorf("direction = %v, expected %v", st.Direction, tc.expected)
			}
		})
	}
}

func TestDirectionRepressIdempotent(t *testing.T) {
	st := InitialState()
	st = Step(Direction{Delta: geom.Left}, st)

	once := Step(Direction{Delta: geom.Left}, st)
	twice := Step(Direction{Delta: geom.Left}, once)

	if once.Direction != geom.Left || twice.Direction != geom.Left {
		t.Errorf("direction after re-presses = %v, %v, expected left", once.Direction, twice.Direction)
	}
}

func TestReversalRejectedAfterTurn(t *testing.T) {
	// After turning left the forbidden reversal is right, not down.
	st := InitialState()
	st = Step(Direction{Delta: geom.Left}, st)

	st = Step(Direction{Delta: geom.Right}, st)
	if st.Direction != geom.Left {
		t.Errorf("direction = %v, reversal onto the body must be rejected", st.Direction)
	}

	st = Step(Direction{Delta: geom.Down}, st)
	if st.Direction != geom.Down {
		t.Errorf("direction = %v, axis change must be adopted", st.Direction)
	}
}

func TestOutOfBoundsDeath(t *testing.T) {
	p := DefaultParams()

	// Head on the right edge, moving right, on a move boundary.
	st := InitialState()
	st.Snake = st.Snake.Advance(geom.Position{X: p.BoardSize, Y: 0}, false)
	st.Direction = geom.Right

	before := st.Snake.Positions()
	st = Step(Tick{Candidate: farCandidate}, st)

	if !st.Over {
		t.Fatal("expected game over when the head leaves the board")
	}
	if st.Ticks != 1 {
		t.Errorf("ticks = %d on the fatal tick, expected 1 (clock still advances)", st.Ticks)
	}
	if got := st.Snake.Positions(); !reflect.DeepEqual(got, before) {
		t.Errorf("body changed on the fatal tick: %v, expected %v", got, before)
	}
	if st.HasFood {
		t.Error("food placed on the fatal tick")
	}
}

func TestSelfCollisionDeath(t *testing.T) {
	// Body curled into a hook: moving up from (0, 0) hits (0, 1), which is
	// the tail segment. Collision checks cover the whole current body,
	// tail included.
	st := InitialState()
	st.Snake = snake.New(
		geom.Position{X: 0, Y: 0},
		geom.Position{X: 1, Y: 0},
		geom.Position{X: 1, Y: 1},
		geom.Position{X: 0, Y: 1},
	)
	st.Direction = geom.Up

	st = Step(Tick{Candidate: farCandidate}, st)

	if !st.Over {
		t.Fatal("expected game over on self collision")
	}
}

func TestEatGrowsAndClearsFood(t *testing.T) {
	st := InitialState()
	st.Food = geom.Position{X: 0, Y: 1}
	st.HasFood = true
	lenBefore := st.Snake.Len()

	st = Step(Tick{Candidate: farCandidate}, st)

	if st.Snake.Len() != lenBefore+1 {
		t.Errorf("length = %d after eating, expected %d", st.Snake.Len(), lenBefore+1)
	}
	if st.Head() != (geom.Position{X: 0, Y: 1}) {
		t.Errorf("head = %v, expected the food cell (0, 1)", st.Head())
	}
	if st.HasFood {
		t.Error("food not cleared after being eaten")
	}
}

func TestFoodNotReplacedOnEatingTick(t *testing.T) {
	// The candidate of the tick that eats the food must not be placed on
	// that same tick; placement resumes on the following one.
	st := InitialState()
	st.Food = geom.Position{X: 0, Y: 1}
	st.HasFood = true

	st = Step(Tick{Candidate: farCandidate}, st)
	if st.HasFood {
		t.Fatal("candidate placed on the eating tick")
	}

	st = Step(Tick{Candidate: farCandidate}, st)
	if !st.HasFood || st.Food != farCandidate {
		t.Errorf("food = %v/%v on the next tick, expected %v", st.Food, st.HasFood, farCandidate)
	}
}

func TestFoodPlacementRetriesOnBlockedCandidate(t *testing.T) {
	st := InitialState()

	// Candidate on the snake body: no placement.
	st = Step(Tick{Candidate: geom.Position{X: 0, Y: -2}}, st)
	if st.HasFood {
		t.Fatal("food placed on an occupied cell")
	}

	// Fresh free candidate on the next tick: placed.
	st = Step(Tick{Candidate: farCandidate}, st)
	if !st.HasFood || st.Food != farCandidate {
		t.Errorf("food = %v/%v, expected retry to place %v", st.Food, st.HasFood, farCandidate)
	}
}

func TestRestartFromAnywhere(t *testing.T) {
	initial := InitialState()

	// A mid-game state.
	playing := InitialState()
	playing = Step(Direction{Delta: geom.Right}, playing)
	playing = tickN(t, playing, 12, farCandidate)

	// A game-over state.
	over := InitialState()
	over.Snake = over.Snake.Advance(geom.Position{X: DefaultParams().BoardSize, Y: 0}, false)
	over.Direction = geom.Right
	over = Step(Tick{Candidate: farCandidate}, over)
	if !over.Over {
		t.Fatal("setup: expected a game-over state")
	}

	for name, st := range map[string]State{"playing": playing, "game over": over} {
		got := Step(Restart{}, st)
		if !reflect.DeepEqual(got, initial) {
			t.Errorf("Step(Restart) from %s state = %+v, expected the initial state", name, got)
		}
	}
}

func TestGameOverAbsorbsEvents(t *testing.T) {
	st := InitialState()
	st.Snake = st.Snake.Advance(geom.Position{X: DefaultParams().BoardSize, Y: 0}, false)
	st.Direction = geom.Right
	st = Step(Tick{Candidate: farCandidate}, st)
	if !st.Over {
		t.Fatal("setup: expected a game-over state")
	}

	events := []Event{
		Tick{Candidate: farCandidate},
		Direction{Delta: geom.Up},
		Ignore{},
	}
	for _, ev := range events {
		after := Step(ev, st)
		if !reflect.DeepEqual(after, st) {
			t.Errorf("Step(%T) on a finished game changed state: %+v -> %+v", ev, st, after)
		}
	}
}

func TestIgnoreIsNoOp(t *testing.T) {
	st := InitialState()
	st = tickN(t, st, 7, farCandidate)

	after := Step(Ignore{}, st)
	if !reflect.DeepEqual(after, st) {
		t.Errorf("Step(Ignore) changed state: %+v -> %+v", st, after)
	}
}

func TestFoldInvariants(t *testing.T) {
	// Fold a long pseudo-random event stream and verify the standing
	// invariants after every transition: the direction is always a unit
	// step on one axis, and the body never shrinks.
	rng := rand.New(rand.NewSource(42))
	deltas := []geom.Delta{geom.Up, geom.Down, geom.Left, geom.Right}
	p := DefaultParams()

	st := InitialState()
	for i := 0; i < 5000; i++ {
		var ev Event
		switch rng.Intn(10) {
		case 0:
			ev = Direction{Delta: deltas[rng.Intn(len(deltas))]}
		case 1:
			ev = Restart{}
		default:
			ev = Tick{Candidate: geom.Position{
				X: rng.Intn(2*p.BoardSize+1) - p.BoardSize,
				Y: rng.Intn(2*p.BoardSize+1) - p.BoardSize,
			}}
		}

		prev := st
		st = Step(ev, st)

		if dx, dy := st.Direction.DX, st.Direction.DY; abs(dx)+abs(dy) != 1 {
			t.Fatalf("step %d: direction %v breaks the unit-axis invariant", i, st.Direction)
		}
		if _, restarted := ev.(Restart); !restarted && st.Snake.Len() < prev.Snake.Len() {
			t.Fatalf("step %d: body shrank from %d to %d", i, prev.Snake.Len(), st.Snake.Len())
		}
	}
}

func TestFoldDeterminism(t *testing.T) {
	// The same event sequence folded twice must yield the same state.
	events := []Event{
		Tick{Candidate: geom.Position{X: 0, Y: 2}},
		Direction{Delta: geom.Right},
		Tick{Candidate: geom.Position{X: 3, Y: 3}},
		Tick{Candidate: geom.Position{X: 3, Y: 3}},
		Ignore{},
		Tick{Candidate: geom.Position{X: -4, Y: 1}},
		Direction{Delta: geom.Down},
		Tick{Candidate: geom.Position{X: -4, Y: 1}},
	}

	fold := func() State {
		st := InitialState()
		for _, ev := range events {
			st = Step(ev, st)
		}
		return st
	}

	a, b := fold(), fold()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("fold is not deterministic: %+v vs %+v", a, b)
	}
}

func TestScoreCountsFoodEaten(t *testing.T) {
	p := DefaultParams()
	st := InitialState()
	if st.Score(p) != 0 {
		t.Errorf("initial score = %d, expected 0", st.Score(p))
	}

	st.Food = geom.Position{X: 0, Y: 1}
	st.HasFood = true
	st = Step(Tick{Candidate: farCandidate}, st)
	if st.Score(p) != 1 {
		t.Errorf("score after eating = %d, expected 1", st.Score(p))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
