package domain

import (
	"reflect"
	"testing"

	"github.com/shnupta/scc/internal/connection"
)

func testConns() []connection.Connection {
	return []connection.Connection{
		{Name: "web", Hostname: "10.0.0.5", Group: "prod", User: "deploy", Password: "s3cret"},
		{Name: "db", Hostname: "10.0.0.2", Group: "prod", User: "admin"},
		{Name: "lab", Hostname: "lab.home", Group: "", User: "pi"},
	}
}

func TestApplyFilter_EmptyQuery(t *testing.T) {
	result := ApplyFilter("", testConns())
	expected := []int{0, 1, 2}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestApplyFilter_MatchesHostname(t *testing.T) {
	result := ApplyFilter("10.0.0.2", testConns())
	expected := []int{1}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestApplyFilter_MatchesGroupAndUser(t *testing.T) {
	if result := ApplyFilter("prod", testConns()); !reflect.DeepEqual(result, []int{0, 1}) {
		t.Errorf("group: expected [0 1], got %v", result)
	}
	if result := ApplyFilter("pi", testConns()); !reflect.DeepEqual(result, []int{2}) {
		t.Errorf("user: expected [2], got %v", result)
	}
}

func TestApplyFilter_CaseInsensitive(t *testing.T) {
	result := ApplyFilter("LAB.HOME", testConns())
	expected := []int{2}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestApplyFilter_IgnoresPassword(t *testing.T) {
	result := ApplyFilter("s3cret", testConns())
	if len(result) != 0 {
		t.Errorf("expected empty result, got %v", result)
	}
}

func TestFilterByGroup(t *testing.T) {
	tests := []struct {
		group string
		want  []int
	}{
		{AllGroups, []int{0, 1, 2}},
		{"prod", []int{0, 1}},
		{"", []int{2}},
		{"missing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			got := FilterByGroup(tt.group, testConns())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterByGroup(%q) = %v, want %v", tt.group, got, tt.want)
			}
		})
	}
}

func TestSortByName(t *testing.T) {
	conns := testConns()
	indices := ApplyFilter("", conns)
	SortByName(indices, conns)

	expected := []int{1, 2, 0} // db, lab, web
	if !reflect.DeepEqual(indices, expected) {
		t.Errorf("expected %v, got %v", expected, indices)
	}
}

func TestSortByName_CaseSensitive(t *testing.T) {
	conns := []connection.Connection{{Name: "beta"}, {Name: "Zulu"}, {Name: "alpha"}}
	indices := []int{0, 1, 2}
	SortByName(indices, conns)

	expected := []int{1, 2, 0} // "Zulu" < "alpha" < "beta"
	if !reflect.DeepEqual(indices, expected) {
		t.Errorf("expected %v, got %v", expected, indices)
	}
}
