package domain

import (
	"sort"

	"github.com/shnupta/scc/internal/connection"
)

// AllGroups is the synthetic group label that disables group filtering.
const AllGroups = "*"

// ApplyFilter returns indices into conns that match the query.
// Match is case-insensitive and checks Name, Hostname, Group, User.
// An empty query returns all indices.
func ApplyFilter(query string, conns []connection.Connection) []int {
	if query == "" {
		return allIndices(conns)
	}

	var result []int
	for i, c := range conns {
		if c.Matches(query) {
			result = append(result, i)
		}
	}
	return result
}

// FilterByGroup returns indices into conns whose Group equals group exactly.
// AllGroups returns all indices.
func FilterByGroup(group string, conns []connection.Connection) []int {
	if group == AllGroups {
		return allIndices(conns)
	}

	var result []int
	for i, c := range conns {
		if c.Group == group {
			result = append(result, i)
		}
	}
	return result
}

// SortByName orders indices by the Name of the connection they point at.
// Equal names keep their relative (insertion) order.
func SortByName(indices []int, conns []connection.Connection) {
	sort.SliceStable(indices, func(i, j int) bool {
		return conns[indices[i]].Name < conns[indices[j]].Name
	})
}

func allIndices(conns []connection.Connection) []int {
	indices := make([]int, len(conns))
	for i := range conns {
		indices[i] = i
	}
	return indices
}
