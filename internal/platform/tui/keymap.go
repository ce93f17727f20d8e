package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/serpentlabs/serpent/internal/engine"
	"github.com/serpentlabs/serpent/internal/geom"
)

// KeyMapper translates Bubble Tea key messages to engine events.
// This centralizes key bindings and makes them testable. Keys without a
// game meaning map to engine.Ignore so every key press still folds
// through the engine as exactly one event.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an engine event.
// Returns the event and whether the key was a quit request; quitting is a
// host concern and never reaches the engine.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev engine.Event, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return engine.Ignore{}, true
	}

	switch key {
	case "w", "up", "k":
		return engine.Direction{Delta: geom.Up}, false
	case "s", "down", "j":
		return engine.Direction{Delta: geom.Down}, false
	case "a", "left", "h":
		return engine.Direction{Delta: geom.Left}, false
	case "d", "right", "l":
		return engine.Direction{Delta: geom.Right}, false
	case "r":
		return engine.Restart{}, false
	}

	return engine.Ignore{}, false
}
