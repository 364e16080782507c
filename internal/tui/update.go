package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case storeChangedMsg:
		// A failed reload leaves the store empty; the controller must
		// see that too.
		if changed, _ := m.ctrl.Store().ReloadIfChanged(); changed {
			m.ctrl.Reload()
		}
		return m, waitForChange(m.watcher)

	case watchErrMsg:
		m.watchErr = msg.err
		return m, waitForWatchError(m.watcher)

	case tea.KeyMsg:
		for _, k := range keyCodes(msg) {
			m.ctrl.HandleKey(k)
		}
		if m.ctrl.Exit() != nil {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}
