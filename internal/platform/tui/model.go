package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serpentlabs/serpent/internal/engine"
	"github.com/serpentlabs/serpent/internal/replay"
	"github.com/serpentlabs/serpent/internal/session"
	"github.com/serpentlabs/serpent/internal/storage"
)

// Options configures a game host.
type Options struct {
	Params   engine.Params
	TickRate int    // Ticks per second
	Seed     int64  // Food candidate RNG seed; 0 means current time
	Record   string // If set, save the event log here on exit
	ScreenW  int
	ScreenH  int
}

// Model is the Bubble Tea model hosting one game. The Bubble Tea update
// loop is the single consumer required by the engine: every key press and
// timer tick becomes exactly one event, folded in arrival order, and the
// model never touches state fields outside that fold.
type Model struct {
	params     engine.Params
	state      engine.State
	screen     *Screen
	store      *storage.Store
	keys       *KeyMapper
	rng        *rand.Rand
	recorder   *replay.Recorder // Non-nil when recording an event log
	tickRate   int
	quitting   bool
	scoreSaved bool // Whether the score was saved for the current game over
}

// NewModel creates a model starting at the initial state.
func NewModel(store *storage.Store, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	m := Model{
		params:   opts.Params,
		state:    engine.InitialStateWith(opts.Params),
		screen:   NewScreen(opts.ScreenW, opts.ScreenH),
		store:    store,
		keys:     NewKeyMapper(),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		tickRate: opts.TickRate,
	}
	if opts.Record != "" {
		m.recorder = replay.NewRecorder(opts.Params)
	}
	return m
}

// fold applies one event to the current state, through the recorder when
// one is attached so the log and the state cannot diverge.
func (m *Model) fold(ev engine.Event) {
	if m.recorder != nil {
		m.state = m.recorder.Step(ev)
		return
	}
	m.state = engine.StepWith(m.params, ev, m.state)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and folds events into the game state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps a key press to one event and folds it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if _, restarted := ev.(engine.Restart); restarted {
		m.scoreSaved = false
	}

	m.fold(ev)
	return m, nil
}

// handleTick folds a timer tick carrying a fresh food candidate.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	candidate := session.RandomPosition(m.rng, m.params.BoardSize)
	m.fold(engine.Tick{Candidate: candidate})

	// Save score on game over (once)
	if m.state.Over && !m.scoreSaved {
		if m.store != nil && m.state.Score(m.params) > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.state.Score(m.params), m.params.BoardSize, m.params.MoveEvery)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawState(m.screen, m.params, m.state)
	return RenderScreen(m.screen)
}

// Run starts a Bubble Tea program hosting one game in the local terminal.
// When Options.Record is set, the event log is written there after the
// program exits.
func Run(store *storage.Store, opts Options) error {
	model := NewModel(store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return err
	}

	if model.recorder != nil {
		return model.recorder.Log().Save(opts.Record)
	}
	return nil
}
