package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/dohaquest/questlinks/model"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	About    key.Binding
	Privacy  key.Binding
	Security key.Binding
	Close    key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "about"),
		),
		Privacy: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "privacy"),
		),
		Security: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "safety"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setOverlay enables the bindings that are live in the given overlay state.
// Navigation is frozen while a dialog is open.
func (k *keyMap) setOverlay(open bool) {
	k.Up.SetEnabled(!open)
	k.Down.SetEnabled(!open)
	k.Close.SetEnabled(open)
	k.Cancel.SetEnabled(open)
}

func (k keyMap) forModal(id model.ModalID) key.Binding {
	switch id {
	case model.ModalPrivacy:
		return k.Privacy
	case model.ModalSecurity:
		return k.Security
	default:
		return k.About
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.About, k.Privacy, k.Security, k.Close, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.About, k.Privacy, k.Security},
		{k.Close, k.Cancel, k.Quit},
	}
}
