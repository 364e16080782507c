package domain

import (
	"reflect"
	"testing"

	"github.com/shnupta/scc/internal/connection"
)

func TestDeriveGroups(t *testing.T) {
	conns := []connection.Connection{
		{Name: "A", Group: ""},
		{Name: "B", Group: "x"},
		{Name: "C", Group: "x"},
	}
	got := DeriveGroups(conns)
	want := []string{"", "*", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeriveGroups() = %q, want %q", got, want)
	}
}

func TestDeriveGroups_Empty(t *testing.T) {
	got := DeriveGroups(nil)
	if !reflect.DeepEqual(got, []string{"*"}) {
		t.Errorf("DeriveGroups(nil) = %q, want [*]", got)
	}
}

func TestDeriveGroups_StarNotAlwaysFirst(t *testing.T) {
	conns := []connection.Connection{{Group: "prod"}, {Group: "!ops"}, {Group: "*"}}
	got := DeriveGroups(conns)
	want := []string{"!ops", "*", "prod"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeriveGroups() = %q, want %q", got, want)
	}
}
