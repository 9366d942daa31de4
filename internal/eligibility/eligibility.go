// Package eligibility precomputes the dense player×role eligibility matrix
// that the assignment engine (internal/assign) consumes. Construction is
// O(P·R), trivial for the domain's P≤57, R=96 bounds.
package eligibility

import (
	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/domain/categorymap"
	"github.com/jstittsworth/fm-teamselect/internal/rolefile"
)

// Index is the dense eligibility matrix for one invocation: for player index
// p and role r, table[p][r] reports whether p may occupy r.
type Index struct {
	table [][]bool
}

// Build constructs an Index from players (in their parsed order) and the
// role file's filters. Semantics match spec.md §4.5 exactly: a player with
// no filter is eligible for every role; a filtered player is eligible for a
// role iff that role belongs to at least one of the player's allowed
// categories.
func Build(players []domain.PlayerRecord, rf *rolefile.RoleFile) *Index {
	roles := domain.Roles()
	idx := &Index{table: make([][]bool, len(players))}

	for p, player := range players {
		row := make([]bool, len(roles))
		filter, filtered := rf.Filters[player.Name]
		if !filtered {
			for i := range row {
				row[i] = true
			}
			idx.table[p] = row
			continue
		}
		for i, r := range roles {
			for cat := range filter.AllowedCategories {
				if categorymap.IsIn(r, cat) {
					row[i] = true
					break
				}
			}
		}
		idx.table[p] = row
	}

	return idx
}

// IsEligible reports whether the player at index p may occupy role.
func (idx *Index) IsEligible(p int, role domain.RoleId) bool {
	i, ok := domain.RoleIndex(role)
	if !ok || p < 0 || p >= len(idx.table) {
		return false
	}
	return idx.table[p][i]
}

// HasAnyEligibleRole reports whether the player at index p is eligible for
// at least one role in the closed set.
func (idx *Index) HasAnyEligibleRole(p int) bool {
	if p < 0 || p >= len(idx.table) {
		return false
	}
	for _, eligible := range idx.table[p] {
		if eligible {
			return true
		}
	}
	return false
}
