// Package report renders a solved Team into the stable textual format
// spec.md §4.7 pins down: one line per assignment in role-sorted (not
// declaration) order, a total-score line, and an optional warning block for
// unassigned players. Purely a pure function over already-computed data —
// it never touches the clock, the network, or a file.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jstittsworth/fm-teamselect/internal/assign"
)

// Render produces the mandatory spec.md §4.7 report text for team and
// unassigned. Line separators are "\n"; the returned string has no trailing
// newline beyond the last line it writes.
func Render(team *assign.Team, unassigned assign.UnassignedSet) string {
	var b strings.Builder

	sorted := make([]assign.Assignment, len(team.Assignments))
	copy(sorted, team.Assignments)
	sort.Slice(sorted, func(i, j int) bool {
		return string(sorted[i].Role) < string(sorted[j].Role)
	})

	for _, a := range sorted {
		fmt.Fprintf(&b, "%s -> %s (score: %s)\n", a.Role, a.PlayerName, formatScore(a.Score))
	}
	fmt.Fprintf(&b, "Total Score: %s", formatScore(team.TotalScore))

	if len(unassigned) > 0 {
		b.WriteString(unassignedBlock(unassigned, func(name string) string { return "- " + name }))
	}

	return b.String()
}

// unassignedBlock renders the spec.md §4.7 warning section: a header line
// followed by one line per unassigned player, formatted by line. line is
// given just the player name and returns that player's full line (including
// the leading "- " token, which every caller must keep first).
func unassignedBlock(unassigned assign.UnassignedSet, line func(name string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\nWarning: %d player(s) could not be assigned due to filter restrictions\n", len(unassigned))
	lines := make([]string, len(unassigned))
	for i, name := range unassigned {
		lines[i] = line(name)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// formatScore renders v with exactly one decimal place, round-half-to-even,
// with negative zero normalized to "0.0" (spec.md §4.7). This covers both
// v == 0 and values that only round to zero at one decimal place (e.g.
// -0.04), since %.1f would otherwise print "-0.0" for those too.
func formatScore(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if rest := strings.TrimPrefix(s, "-"); rest != s && strings.Trim(rest, "0.") == "" {
		return rest
	}
	return s
}
