package ui

import (
	"charm.land/bubbles/v2/key"
)

// KeyMode selects the keybinding set for the UI.
type KeyMode string

const (
	// KeyModeVim layers j/k/h/l and g/G over the arrow keys.
	KeyModeVim KeyMode = "vim"
	// KeyModePlain uses arrow keys only.
	KeyModePlain KeyMode = "plain"
)

// DefaultKeyMode is the keybinding mode used when config selects none.
const DefaultKeyMode = KeyModeVim

// ValidKeyModes lists all valid key modes for validation.
var ValidKeyModes = []KeyMode{KeyModeVim, KeyModePlain}

// IsValidKeyMode checks if a key mode string is valid.
func IsValidKeyMode(mode string) bool {
	for _, m := range ValidKeyModes {
		if string(m) == mode {
			return true
		}
	}
	return false
}

// KeyMap holds the navigation bindings. Anything not bound here is ignored
// by the explorer (silently absorbed, never an error).
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Back    key.Binding
	Forward key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Quit    key.Binding
}

// NewKeyMap builds the bindings for a key mode.
func NewKeyMap(mode KeyMode) KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Back: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "enter"),
			key.WithHelp("→", "open"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	if mode == KeyModeVim {
		km.Up = key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		)
		km.Down = key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		)
		km.Back = key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		)
		km.Forward = key.NewBinding(
			key.WithKeys("right", "l", "enter"),
			key.WithHelp("→/l", "open"),
		)
		km.Top = key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		)
		km.Bottom = key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		)
	}
	return km
}

// matches reports whether the key string triggers the binding. Matching by
// the bound key names keeps the mapping table-driven without depending on
// message internals.
func matches(keyStr string, b key.Binding) bool {
	for _, k := range b.Keys() {
		if keyStr == k {
			return true
		}
	}
	return false
}

// helpEntries returns the footer legend in display order.
func (k KeyMap) helpEntries() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Forward, k.Back, k.Quit}
}
