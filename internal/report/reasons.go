package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jstittsworth/fm-teamselect/internal/assign"
	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/domain/categorymap"
	"github.com/jstittsworth/fm-teamselect/internal/eligibility"
)

// RenderWithBreakdown behaves exactly like Render (the mandatory §4.7
// format is byte-for-byte unchanged up to that point) but appends one
// optional annotation per unassigned player's "- {name}" line naming the
// categories that would have made them eligible for at least one of the
// eleven assigned roles. Purely informational; the first token of every
// unassigned line is still "- {name}".
func RenderWithBreakdown(players []domain.PlayerRecord, team *assign.Team, unassigned assign.UnassignedSet, idx *eligibility.Index) string {
	if len(unassigned) == 0 {
		return Render(team, unassigned)
	}

	byName := make(map[string]int, len(players))
	for i, p := range players {
		byName[p.Name] = i
	}

	base := Render(team, nil)
	return base + unassignedBlock(unassigned, func(name string) string {
		line := "- " + name
		p, ok := byName[name]
		if !ok {
			return line
		}
		cats := eligibleViaCategories(p, team, idx)
		if len(cats) == 0 {
			return line
		}
		return fmt.Sprintf("%s\n  (would be eligible via: %s)", line, strings.Join(cats, ", "))
	})
}

// eligibleViaCategories names every category that, if added to player p's
// filter, would grant eligibility for at least one of team's eleven roles
// p is not currently eligible for.
func eligibleViaCategories(p int, team *assign.Team, idx *eligibility.Index) []string {
	found := map[string]bool{}
	for _, a := range team.Assignments {
		if idx.IsEligible(p, a.Role) {
			continue
		}
		for _, cat := range categorymap.CategoriesFor(a.Role) {
			found[string(cat)] = true
		}
	}
	out := make([]string, 0, len(found))
	for c := range found {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
