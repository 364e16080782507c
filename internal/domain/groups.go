package domain

import (
	"sort"

	"github.com/shnupta/scc/internal/connection"
)

// DeriveGroups returns AllGroups plus every distinct Group in conns, sorted.
//
// AllGroups is prepended before sorting, so a group that sorts lower than
// "*" (e.g. "!ops" or the empty group) is listed ahead of it.
func DeriveGroups(conns []connection.Connection) []string {
	groups := []string{AllGroups}
	seen := map[string]bool{AllGroups: true}
	for _, c := range conns {
		if !seen[c.Group] {
			seen[c.Group] = true
			groups = append(groups, c.Group)
		}
	}
	sort.Strings(groups)
	return groups
}
