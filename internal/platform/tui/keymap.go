// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and rendering; the
// simulation itself lives in internal/snake.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// KeyMapper translates Bubble Tea key messages to simulation inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a simulation input. Unrecognized
// keys map to InputNone, which the simulation reports as invalid so the
// player can be re-prompted.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) snake.Input {
	switch msg.String() {
	case "w", "up":
		return snake.InputUp
	case "s", "down":
		return snake.InputDown
	case "a", "left":
		return snake.InputLeft
	case "d", "right":
		return snake.InputRight
	case "q", "ctrl+c":
		return snake.InputQuit
	}
	return snake.InputNone
}

// IsRestart reports whether the key restarts a finished session.
func (km *KeyMapper) IsRestart(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}
