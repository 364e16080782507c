// Package session implements the interactive launcher state machine: the
// filtered and grouped view of the connection store, the current selection,
// and the browse/add/edit input modes.
package session

import (
	"strings"

	"github.com/shnupta/scc/internal/connection"
	"github.com/shnupta/scc/internal/store"
)

// Exit is the outcome of an exit request. Command is empty when the user
// quit without choosing a connection.
type Exit struct {
	Command string
}

// Controller interprets key codes against a Store.
type Controller struct {
	store *store.Store

	search        string
	byGroup       bool // rows come from QueryByGroup rather than Query
	groups        []string
	selectedGroup int
	rows          []store.Entry
	selectedRow   int
	current       store.ID // zero when rows is empty

	mode   Mode
	exit   *Exit
	notice string // shown until the next key
}

// New creates a Controller showing every connection in s.
func New(s *store.Store) *Controller {
	c := &Controller{store: s, mode: Browse{}}
	c.reload()
	return c
}

// HandleKey feeds one key code into the active mode. Keys are ignored once
// an exit has been requested.
func (c *Controller) HandleKey(k Key) {
	if c.exit != nil {
		return
	}
	c.notice = ""
	if k == KeyQuit {
		c.requestExit("")
		return
	}
	switch m := c.mode.(type) {
	case *AddForm:
		c.handleForm(&m.Form, k, func() {
			conn := connection.FromFields(m.Fields)
			switch {
			case strings.TrimSpace(conn.Name) == "":
			case c.store.NamesOnly():
				c.store.AddUnique(conn)
			default:
				c.store.Add(conn)
			}
		})
	case *EditForm:
		c.handleForm(&m.Form, k, func() {
			conn := connection.FromFields(m.Fields)
			if strings.TrimSpace(conn.Name) != "" && !c.nameTaken(conn.Name, m.Target) {
				c.store.Update(m.Target, conn)
			}
		})
	default:
		c.handleBrowse(k)
	}
}

func (c *Controller) handleBrowse(k Key) {
	switch {
	case k == KeyNew:
		c.mode = &AddForm{}

	case k == KeyEdit:
		if e, ok := c.Current(); ok {
			c.mode = &EditForm{Target: e.ID, Form: Form{Fields: e.Fields()}}
		}

	case k == KeyDuplicate:
		if c.current != 0 && !c.store.NamesOnly() && c.store.Duplicate(c.current) {
			c.reload()
		}

	case k == KeyDelete:
		c.deleteCurrent()

	case k.isEnter():
		if e, ok := c.Current(); ok {
			c.requestExit(c.command(e))
		}

	case k == KeyUp:
		c.selectRow(c.selectedRow - 1)

	case k == KeyDown:
		c.selectRow(c.selectedRow + 1)

	case k == KeyLeft:
		c.selectGroup(c.selectedGroup - 1)

	case k == KeyRight:
		c.selectGroup(c.selectedGroup + 1)

	case k.isBackspace():
		c.search = dropLastRune(c.search)
		c.byGroup = false
		c.reload()

	case k.IsPrintable():
		c.search += string(rune(k))
		c.byGroup = false
		c.reload()
	}
}

func (c *Controller) handleForm(f *Form, k Key, commit func()) {
	switch {
	case k == KeyEsc:
		c.mode = Browse{}
	case k.isEnter():
		commit()
		c.mode = Browse{}
		c.reload()
	case k == KeyUp:
		f.prev()
	case k == KeyDown, k == KeyTab:
		f.next()
	case k.isBackspace():
		f.popChar()
	case k.IsPrintable():
		f.appendChar(k)
	}
}

// deleteCurrent removes the current connection. The selection stays on the
// same row, which now shows the following connection, or moves up one row
// when the last row was removed.
func (c *Controller) deleteCurrent() {
	if c.current == 0 {
		return
	}
	row := c.selectedRow
	c.store.Remove(c.current)
	c.current = 0
	c.reload()
	if row >= len(c.rows) {
		row = len(c.rows) - 1
	}
	c.selectRow(row)
}

func (c *Controller) selectRow(row int) {
	if len(c.rows) == 0 {
		c.selectedRow, c.current = 0, 0
		return
	}
	if row < 0 {
		row = 0
	}
	if row > len(c.rows)-1 {
		row = len(c.rows) - 1
	}
	c.selectedRow = row
	c.current = c.rows[row].ID
}

func (c *Controller) selectGroup(idx int) {
	if idx >= 0 && idx < len(c.groups) {
		c.selectedGroup = idx
	}
	c.search = ""
	c.byGroup = true
	c.reload()
}

// Reload re-derives groups and reruns the active filter, keeping the current
// connection selected if it is still listed. Call it after the store was
// reloaded from disk. An open edit form whose target is gone is discarded.
func (c *Controller) Reload() {
	if m, ok := c.mode.(*EditForm); ok {
		if _, found := c.store.Get(m.Target); !found {
			c.mode = Browse{}
			c.notice = "connections changed on disk, edit discarded"
		}
	}
	c.reload()
}

func (c *Controller) reload() {
	c.groups = c.store.Groups()
	if c.selectedGroup > len(c.groups)-1 {
		c.selectedGroup = len(c.groups) - 1
	}

	if c.byGroup {
		c.rows = c.store.QueryByGroup(c.groups[c.selectedGroup])
	} else {
		c.rows = c.store.Query(c.search)
	}

	prev := c.current
	c.selectedRow, c.current = 0, 0
	if len(c.rows) == 0 {
		return
	}
	c.current = c.rows[0].ID
	for i, e := range c.rows {
		if e.ID == prev {
			c.selectedRow, c.current = i, e.ID
			break
		}
	}
}

// command is the shell command that connects to e. A names-only store keeps
// the whole command line in the name.
func (c *Controller) command(e store.Entry) string {
	if c.store.NamesOnly() {
		return e.Name
	}
	return e.Command()
}

// nameTaken reports whether a names-only store already holds name under an
// entry other than id.
func (c *Controller) nameTaken(name string, id store.ID) bool {
	if !c.store.NamesOnly() {
		return false
	}
	e, ok := c.store.FindByName(name)
	return ok && e.ID != id
}

func (c *Controller) requestExit(command string) {
	c.exit = &Exit{Command: command}
}

// Exit returns the exit request, or nil while the session is running.
func (c *Controller) Exit() *Exit { return c.exit }

// LaunchCommand returns the command to run after the interface is torn down.
func (c *Controller) LaunchCommand() (string, bool) {
	if c.exit == nil || c.exit.Command == "" {
		return "", false
	}
	return c.exit.Command, true
}

// Current resolves the selected connection through the store.
func (c *Controller) Current() (store.Entry, bool) {
	if c.current == 0 {
		return store.Entry{}, false
	}
	return c.store.Get(c.current)
}

// Notice returns a one-off message for the user, or "".
func (c *Controller) Notice() string { return c.notice }

func (c *Controller) Mode() Mode          { return c.mode }
func (c *Controller) Search() string      { return c.search }
func (c *Controller) SelectedRow() int    { return c.selectedRow }
func (c *Controller) SelectedGroup() int  { return c.selectedGroup }
func (c *Controller) Rows() []store.Entry { return c.rows }
func (c *Controller) Groups() []string    { return c.groups }
func (c *Controller) Store() *store.Store { return c.store }
