package session

import (
	"errors"
	"reflect"
	"testing"
)

func TestProjectBrowse(t *testing.T) {
	c, _ := newTestController(t, conn("A", "h1", "", "u", "pw"), conn("B", "h2", "x", "", ""))
	send(c, KeyDown)

	vm := Project(c)
	if vm.Mode != ModeBrowse || vm.Form != nil || vm.Title != "" {
		t.Errorf("browse projection has form state: %+v", vm)
	}

	wantGroups := []GroupItem{{Label: "", Selected: true}, {Label: "*"}, {Label: "x"}}
	if !reflect.DeepEqual(vm.Groups, wantGroups) {
		t.Errorf("Groups = %+v, want %+v", vm.Groups, wantGroups)
	}

	wantRows := []Row{
		{Name: "A", Hostname: "h1", User: "u"},
		{Name: "B", Hostname: "h2", Group: "x", Selected: true},
	}
	if !reflect.DeepEqual(vm.Rows, wantRows) {
		t.Errorf("Rows = %+v, want %+v", vm.Rows, wantRows)
	}
}

func TestProjectSearchText(t *testing.T) {
	c, _ := newTestController(t, conn("web", "", "", "", ""))
	typeText(c, "we")
	if vm := Project(c); vm.Search != "we" {
		t.Errorf("Search = %q, want we", vm.Search)
	}
}

func TestProjectFormMasksPassword(t *testing.T) {
	c, _ := newTestController(t, conn("db", "h", "g", "u", "secret"))
	send(c, KeyEdit, KeyUp)

	vm := Project(c)
	if vm.Mode != ModeEdit || vm.Title != "Edit connection" {
		t.Fatalf("mode/title = %v/%q", vm.Mode, vm.Title)
	}
	want := []FormField{
		{Label: "Name", Value: "db"},
		{Label: "Hostname", Value: "h"},
		{Label: "Group", Value: "g"},
		{Label: "User", Value: "u"},
		{Label: "Password", Value: "******", Focused: true},
	}
	if !reflect.DeepEqual(vm.Form, want) {
		t.Errorf("Form = %+v, want %+v", vm.Form, want)
	}

	form := c.Mode().(*EditForm)
	if form.Fields[FieldPassword] != "secret" {
		t.Errorf("projection changed the buffer: %q", form.Fields[FieldPassword])
	}
}

func TestProjectAddTitle(t *testing.T) {
	c, _ := newTestController(t)
	send(c, KeyNew)
	vm := Project(c)
	if vm.Mode != ModeAdd || vm.Title != "Add connection" || len(vm.Form) != FieldCount {
		t.Errorf("add projection = %+v", vm)
	}
	if !vm.Form[FieldName].Focused {
		t.Error("name field not focused initially")
	}
}

func TestProjectIsRepeatable(t *testing.T) {
	c, _ := newTestController(t, conn("a", "", "g", "", ""), conn("b", "", "", "", ""))
	send(c, KeyDown, KeyNew)
	typeText(c, "x")

	first := Project(c)
	second := Project(c)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("projections differ:\n%+v\n%+v", first, second)
	}
	if c.SelectedRow() != 1 || c.Mode().Kind() != ModeAdd {
		t.Error("projection mutated controller state")
	}
}

func TestProjectStatusOnSaveError(t *testing.T) {
	c, b := newTestController(t, conn("a", "", "", "", ""))
	b.SaveErr = errors.New("disk full")
	send(c, KeyDuplicate)

	if vm := Project(c); vm.Status != "save failed: disk full" {
		t.Errorf("Status = %q", vm.Status)
	}
}
