package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// ViewerKeyMap defines the key bindings of the maze viewer.
type ViewerKeyMap struct {
	Regenerate key.Binding
	Reseed     key.Binding
	TogglePath key.Binding
	NextPreset key.Binding
	Copy       key.Binding
	History    key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reseed, k.Regenerate, k.TogglePath, k.NextPreset, k.Copy, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reseed, k.Regenerate, k.NextPreset},
		{k.TogglePath, k.Copy, k.History},
		{k.Back, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rebuild"),
		),
		Reseed: key.NewBinding(
			key.WithKeys("n", " "),
			key.WithHelp("n/space", "new seed"),
		),
		TogglePath: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "route"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("tab", "d"),
			key.WithHelp("tab", "preset"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to viewer actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys ViewerKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultViewerKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() ViewerKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Regenerate):
		return core.ActionRegenerate, false
	case key.Matches(msg, k.Reseed):
		return core.ActionReseed, false
	case key.Matches(msg, k.TogglePath):
		return core.ActionTogglePath, false
	case key.Matches(msg, k.NextPreset):
		return core.ActionNextPreset, false
	case key.Matches(msg, k.Copy):
		return core.ActionCopy, false
	case key.Matches(msg, k.History):
		return core.ActionHistory, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}

	return core.ActionNone, false
}
