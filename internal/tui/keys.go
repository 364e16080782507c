package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shnupta/scc/internal/session"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Launch    key.Binding
	New       key.Binding
	Edit      key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Backspace key.Binding
	NextField key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev group"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next group"),
	),
	Launch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "connect"),
	),
	New: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "edit"),
	),
	Duplicate: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "duplicate"),
	),
	Delete: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "delete"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// browseHelp and formHelp are the bindings shown in the help bar.
var (
	browseHelp = []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.Launch, keys.New, keys.Edit, keys.Duplicate, keys.Delete, keys.Quit}
	formHelp   = []key.Binding{keys.NextField, keys.Launch, keys.Cancel, keys.Quit}
)

// bindingCodes maps each action binding to the key code the controller expects.
var bindingCodes = []struct {
	binding key.Binding
	code    session.Key
}{
	{keys.Up, session.KeyUp},
	{keys.Down, session.KeyDown},
	{keys.Left, session.KeyLeft},
	{keys.Right, session.KeyRight},
	{keys.Launch, session.KeyEnter},
	{keys.New, session.KeyNew},
	{keys.Edit, session.KeyEdit},
	{keys.Duplicate, session.KeyDuplicate},
	{keys.Delete, session.KeyDelete},
	{keys.Backspace, session.KeyBackspace},
	{keys.NextField, session.KeyTab},
	{keys.Cancel, session.KeyEsc},
	{keys.Quit, session.KeyQuit},
}

// keyCodes translates a bubbletea key event into controller key codes.
// Pasted text arrives as a single event with several runes; each printable
// rune becomes one code. Anything else yields nothing.
func keyCodes(msg tea.KeyMsg) []session.Key {
	for _, bc := range bindingCodes {
		if key.Matches(msg, bc.binding) {
			return []session.Key{bc.code}
		}
	}
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return []session.Key{' '}
	case tea.KeyRunes:
		var codes []session.Key
		for _, r := range msg.Runes {
			if k := session.Key(r); k.IsPrintable() {
				codes = append(codes, k)
			}
		}
		return codes
	}
	return nil
}
