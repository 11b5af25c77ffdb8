package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper translates Bubble Tea key messages into game and menu actions.
// Bindings are checked in order, so quit always wins.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	quit := key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))
	back := key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "menu"))

	return &KeyMapper{
		game: []actionBinding{
			{quit, core.ActionQuit},
			{key.NewBinding(
				key.WithKeys(" ", "up", "w", "k", "down", "s", "j"),
				key.WithHelp("space", "flip"),
			), core.ActionFlip},
			{back, core.ActionBack},
			{key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
		},
		menu: []menuBinding{
			{quit, MenuActionQuit},
			{key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("↑", "up")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j"), key.WithHelp("↓", "down")), MenuActionDown},
			{key.NewBinding(key.WithKeys("a", "left", "h"), key.WithHelp("←", "easier")), MenuActionLeft},
			{key.NewBinding(key.WithKeys("d", "right", "l"), key.WithHelp("→", "harder")), MenuActionRight},
			{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "run")), MenuActionSelect},
			{back, MenuActionBack},
			{key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}

// GameHelp returns the in-game bindings for a help line.
func (km *KeyMapper) GameHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.game))
	for _, b := range km.game {
		out = append(out, b.binding)
	}
	return out
}
