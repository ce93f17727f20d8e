// Package session serializes concurrent input sources into the single
// ordered event stream the game engine requires. The engine itself is pure
// and single-threaded by contract; a Loop is the one writer that folds
// events into the current state, in arrival order, and publishes each
// resulting snapshot to an observer. Timer and keyboard sources only ever
// talk to the loop through Send.
package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/serpentlabs/serpent/internal/engine"
	"github.com/serpentlabs/serpent/internal/geom"
)

// defaultBuffer is the event channel capacity. Sources block once the
// loop falls this far behind, which keeps ordering intact under pressure.
const defaultBuffer = 64

// Loop owns a single engine.State and folds events into it sequentially.
type Loop struct {
	params  engine.Params
	state   engine.State
	events  chan engine.Event
	onState func(engine.State)
}

// New creates a loop starting from the fixed initial state for the given
// rules. onState, if non-nil, is invoked with the new state after every
// folded event, from the loop goroutine.
func New(params engine.Params, onState func(engine.State)) *Loop {
	return &Loop{
		params:  params,
		state:   engine.InitialStateWith(params),
		events:  make(chan engine.Event, defaultBuffer),
		onState: onState,
	}
}

// Send queues one event for the loop. Safe for concurrent use; the channel
// fixes the arrival order that the fold then consumes.
func (l *Loop) Send(ev engine.Event) {
	l.events <- ev
}

// Run consumes events until ctx is cancelled and returns the final state.
// It must be called exactly once; the state is owned by this goroutine for
// the lifetime of the call.
func (l *Loop) Run(ctx context.Context) engine.State {
	for {
		select {
		case <-ctx.Done():
			return l.state
		case ev := <-l.events:
			l.state = engine.StepWith(l.params, ev, l.state)
			if l.onState != nil {
				l.onState(l.state)
			}
		}
	}
}

// Ticker is the timer collaborator: it turns elapsed wall-clock time into
// Tick events carrying food candidates drawn from rng.
type Ticker struct {
	Interval  time.Duration
	Rng       *rand.Rand
	BoardSize int
}

// Run emits ticks into the loop until ctx is cancelled.
func (t *Ticker) Run(ctx context.Context, loop *Loop) {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			loop.Send(engine.Tick{Candidate: RandomPosition(t.Rng, t.BoardSize)})
		}
	}
}

// RandomPosition draws a board cell uniformly over [-boardSize, boardSize]
// on both axes. The engine treats the draw as an opaque capability and
// validates placement itself.
func RandomPosition(rng *rand.Rand, boardSize int) geom.Position {
	span := 2*boardSize + 1
	return geom.Position{
		X: rng.Intn(span) - boardSize,
		Y: rng.Intn(span) - boardSize,
	}
}
