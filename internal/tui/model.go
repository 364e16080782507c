package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shnupta/scc/internal/session"
	"github.com/shnupta/scc/internal/watch"
)

// storeChangedMsg is sent when the connections file changed on disk.
type storeChangedMsg struct{}

// watchErrMsg carries a failure reported by the file watcher.
type watchErrMsg struct{ err error }

// Model is the root BubbleTea model. All navigation and editing state lives
// in the session controller; the model only adapts terminal events to it and
// draws its projection.
type Model struct {
	// Dimensions
	width  int
	height int

	ctrl    *session.Controller
	watcher watch.WatcherIface
	help    help.Model

	watchErr error // last watcher failure, shown on the status line
	ready    bool
}

// New creates a Model driving ctrl. w may be nil when live reload is off.
func New(ctrl *session.Controller, w watch.WatcherIface) Model {
	h := help.New()
	h.ShortSeparator = "  "
	return Model{
		ctrl:    ctrl,
		watcher: w,
		help:    h,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.watcher), waitForWatchError(m.watcher))
}

// waitForChange waits for the next change notification from the watcher.
func waitForChange(w watch.WatcherIface) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-w.Events()
		if !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// waitForWatchError waits for the next failure reported by the watcher.
func waitForWatchError(w watch.WatcherIface) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-w.Errors()
		if !ok {
			return nil
		}
		return watchErrMsg{err}
	}
}

// LaunchCommand returns the shell command chosen by the user, if any.
func (m Model) LaunchCommand() (string, bool) {
	return m.ctrl.LaunchCommand()
}

// Controller returns the session controller behind the model.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}
