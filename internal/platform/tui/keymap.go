package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blightgrid/internal/core"
)

// WorldKeyMap defines the key bindings for the world view.
type WorldKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	PanLeft  key.Binding
	PanRight key.Binding
	Promote  key.Binding
	Flag     key.Binding
	Recenter key.Binding
	Reset    key.Binding
	Next     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WorldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Promote, k.Flag, k.Recenter, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WorldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PanUp, k.PanDown, k.PanLeft, k.PanRight},
		{k.Promote, k.Flag, k.Recenter},
		{k.Reset, k.Next, k.Help, k.Quit},
	}
}

// DefaultWorldKeyMap returns default key bindings.
func DefaultWorldKeyMap() WorldKeyMap {
	return WorldKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "north"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "south"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "east"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("shift+up", "K", "W"),
			key.WithHelp("⇧↑/K", "pan north"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("shift+down", "J", "S"),
			key.WithHelp("⇧↓/J", "pan south"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("shift+left", "A"),
			key.WithHelp("⇧←/A", "pan west"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("shift+right", "L", "D"),
			key.WithHelp("⇧→/L", "pan east"),
		),
		Promote: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "grow"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f", "z", "?"),
			key.WithHelp("f", "flag"),
		),
		Recenter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "recenter"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "random world"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next world"),
		),
		Help: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to world actions.
type KeyMapper struct {
	keys WorldKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultWorldKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() WorldKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.PanUp):
		return core.ActionPanUp, false
	case key.Matches(msg, k.PanDown):
		return core.ActionPanDown, false
	case key.Matches(msg, k.PanLeft):
		return core.ActionPanLeft, false
	case key.Matches(msg, k.PanRight):
		return core.ActionPanRight, false
	case key.Matches(msg, k.Promote):
		return core.ActionPromote, false
	case key.Matches(msg, k.Flag):
		return core.ActionFlag, false
	case key.Matches(msg, k.Recenter):
		return core.ActionRecenter, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.Next):
		return core.ActionNextWorld, false
	case key.Matches(msg, k.Help):
		return core.ActionHelp, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}
