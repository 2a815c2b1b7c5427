package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lightsout/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// It also translates key and mouse messages into game actions, which keeps
// the bindings in one place and testable.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Press      key.Binding
	Replay     key.Binding
	NewBoard   key.Binding
	Size       key.Binding
	Hint       key.Binding
	Fullscreen key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Replay, k.NewBoard, k.Size, k.Hint, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.Replay, k.NewBoard, k.Size, k.Hint},
		{k.Fullscreen, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Press: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "press"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "replay"),
		),
		NewBoard: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "new"),
		),
		Size: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "size"),
		),
		Hint: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hint"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f11"),
			key.WithHelp("f11", "fullscreen"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Press, core.ActionConfirm},
		{k.Replay, core.ActionReplay},
		{k.NewBoard, core.ActionNewBoard},
		{k.Size, core.ActionToggleSize},
		{k.Hint, core.ActionHint},
		{k.Fullscreen, core.ActionFullscreen},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button release as a click in screen cells.
// Legacy X10 encoding reports releases without a button, so those count too.
// Returns true if the message produced a click.
func MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionRelease {
		return false
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return false
	}
	frame.Click(msg.X, msg.Y)
	return true
}
