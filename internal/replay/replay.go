// Package replay records event streams and re-folds them later. Because
// the engine is a pure fold over events, a log of the rules plus every
// event reproduces the final state exactly; logs are stored as YAML so
// failing sessions can be kept as fixtures and inspected by hand.
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/serpentlabs/serpent/internal/engine"
	"github.com/serpentlabs/serpent/internal/geom"
)

// Event kinds as stored in a log.
const (
	KindTick      = "tick"
	KindDirection = "direction"
	KindRestart   = "restart"
	KindIgnore    = "ignore"
)

// Entry is one recorded event. X/Y carry a tick's food candidate, DX/DY a
// direction request; the unused pair is omitted from the YAML.
type Entry struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x,omitempty"`
	Y    int    `yaml:"y,omitempty"`
	DX   int    `yaml:"dx,omitempty"`
	DY   int    `yaml:"dy,omitempty"`
}

// Rules mirrors engine.Params with stable YAML field names.
type Rules struct {
	BoardSize int `yaml:"board_size"`
	MoveEvery int `yaml:"move_every"`
	StartLen  int `yaml:"start_len"`
}

// Params converts the stored rules back to engine parameters.
func (r Rules) Params() engine.Params {
	return engine.Params{BoardSize: r.BoardSize, MoveEvery: r.MoveEvery, StartLen: r.StartLen}
}

// RulesFor captures engine parameters for storage.
func RulesFor(p engine.Params) Rules {
	return Rules{BoardSize: p.BoardSize, MoveEvery: p.MoveEvery, StartLen: p.StartLen}
}

// Validate rejects rules that cannot drive the engine. Log files are
// user-supplied, so a missing or hand-edited rules block must fail here
// rather than inside the fold.
func (r Rules) Validate() error {
	if r.BoardSize < 1 {
		return fmt.Errorf("replay: board size %d must be at least 1", r.BoardSize)
	}
	if r.MoveEvery < 1 {
		return fmt.Errorf("replay: move_every %d must be at least 1", r.MoveEvery)
	}
	if r.StartLen < 1 {
		return fmt.Errorf("replay: start_len %d must be at least 1", r.StartLen)
	}
	return nil
}

// Log is a complete recorded session: the rules it ran under and every
// event in arrival order.
type Log struct {
	Rules  Rules   `yaml:"rules"`
	Events []Entry `yaml:"events"`
}

// FromEvent converts an engine event to its log entry.
func FromEvent(ev engine.Event) Entry {
	switch e := ev.(type) {
	case engine.Tick:
		return Entry{Kind: KindTick, X: e.Candidate.X, Y: e.Candidate.Y}
	case engine.Direction:
		return Entry{Kind: KindDirection, DX: e.Delta.DX, DY: e.Delta.DY}
	case engine.Restart:
		return Entry{Kind: KindRestart}
	default:
		return Entry{Kind: KindIgnore}
	}
}

// Event converts a log entry back to an engine event, validating direction
// payloads at this boundary so malformed deltas never reach the engine.
func (e Entry) Event() (engine.Event, error) {
	switch e.Kind {
	case KindTick:
		return engine.Tick{Candidate: geom.Position{X: e.X, Y: e.Y}}, nil
	case KindDirection:
		d, err := geom.NewDelta(e.DX, e.DY)
		if err != nil {
			return nil, fmt.Errorf("replay: %w", err)
		}
		return engine.Direction{Delta: d}, nil
	case KindRestart:
		return engine.Restart{}, nil
	case KindIgnore:
		return engine.Ignore{}, nil
	default:
		return nil, fmt.Errorf("replay: unknown event kind %q", e.Kind)
	}
}

// Recorder folds events while keeping the log needed to reproduce the run.
type Recorder struct {
	log   Log
	state engine.State
}

// NewRecorder starts a recording from the initial state for the given rules.
func NewRecorder(p engine.Params) *Recorder {
	return &Recorder{
		log:   Log{Rules: RulesFor(p)},
		state: engine.InitialStateWith(p),
	}
}

// Step records the event, folds it, and returns the new state.
func (r *Recorder) Step(ev engine.Event) engine.State {
	r.log.Events = append(r.log.Events, FromEvent(ev))
	r.state = engine.StepWith(r.log.Rules.Params(), ev, r.state)
	return r.state
}

// State returns the current folded state.
func (r *Recorder) State() engine.State {
	return r.state
}

// Log returns the recording so far.
func (r *Recorder) Log() Log {
	return r.log
}

// Replay re-folds a log from the initial state and returns the final state.
func Replay(l Log) (engine.State, error) {
	if err := l.Rules.Validate(); err != nil {
		return engine.State{}, err
	}
	params := l.Rules.Params()
	st := engine.InitialStateWith(params)
	for i, entry := range l.Events {
		ev, err := entry.Event()
		if err != nil {
			return engine.State{}, fmt.Errorf("replay: event %d: %w", i, err)
		}
		st = engine.StepWith(params, ev, st)
	}
	return st, nil
}

// Save writes the log as YAML to path.
func (l Log) Save(path string) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("replay: cannot encode log: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a YAML log from path.
func Load(path string) (Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Log{}, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	var l Log
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Log{}, fmt.Errorf("replay: cannot parse %s: %w", path, err)
	}
	if err := l.Rules.Validate(); err != nil {
		return Log{}, err
	}
	return l, nil
}
