package session

import (
	"github.com/shnupta/scc/internal/domain"
)

// GroupItem is one label in the group bar.
type GroupItem struct {
	Label    string
	Selected bool
}

// Row is one connection in the list. The password is never exposed here.
type Row struct {
	Name     string
	Hostname string
	Group    string
	User     string
	Selected bool
}

// FormField is one line of the add/edit form.
type FormField struct {
	Label   string
	Value   string // masked for the password field
	Focused bool
}

// ViewModel is everything the renderer needs to draw one frame.
type ViewModel struct {
	Groups []GroupItem
	Rows   []Row
	Search string
	Mode   ModeKind
	Title  string
	Form   []FormField // nil in browse mode
	Status string      // notice or last save error
}

// Project builds the ViewModel for c. It only reads controller state.
func Project(c *Controller) ViewModel {
	vm := ViewModel{
		Search: c.search,
		Mode:   c.mode.Kind(),
	}

	for i, g := range c.groups {
		vm.Groups = append(vm.Groups, GroupItem{Label: g, Selected: i == c.selectedGroup})
	}
	for i, e := range c.rows {
		vm.Rows = append(vm.Rows, Row{
			Name:     e.Name,
			Hostname: e.Hostname,
			Group:    e.Group,
			User:     e.User,
			Selected: i == c.selectedRow,
		})
	}

	switch m := c.mode.(type) {
	case *AddForm:
		vm.Title = "Add connection"
		vm.Form = projectForm(m.Form)
	case *EditForm:
		vm.Title = "Edit connection"
		vm.Form = projectForm(m.Form)
	}

	if err := c.store.Err(); err != nil {
		vm.Status = "save failed: " + err.Error()
	}
	if c.notice != "" {
		vm.Status = c.notice
	}
	return vm
}

func projectForm(f Form) []FormField {
	fields := make([]FormField, FieldCount)
	for i := range fields {
		v := f.Fields[i]
		if i == FieldPassword {
			v = domain.Mask(v)
		}
		fields[i] = FormField{Label: FieldLabels[i], Value: v, Focused: i == f.Focus}
	}
	return fields
}
