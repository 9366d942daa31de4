package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/jstittsworth/fm-teamselect/internal/assign"
	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/domain/categorymap"
	"github.com/jstittsworth/fm-teamselect/internal/eligibility"
)

// DepthAppendix renders an optional "squad depth" section: per category,
// the mean and standard deviation of the best eligible score among players
// who were not picked for the starting eleven. It supplements spec.md
// §4.7's mandatory report (never replaces or reorders it) and is appended
// by callers that want it — the core Render output is unaffected by its
// presence or absence.
func DepthAppendix(players []domain.PlayerRecord, team *assign.Team, idx *eligibility.Index) string {
	assigned := make(map[string]bool, len(team.Assignments))
	for _, a := range team.Assignments {
		assigned[a.PlayerName] = true
	}

	var lines []string
	for _, cat := range domain.Categories() {
		roles := categorymap.RolesFor(cat)
		var scores []float64
		for p, player := range players {
			if assigned[player.Name] {
				continue
			}
			best := 0.0
			eligibleAny := false
			for _, r := range roles {
				if !idx.IsEligible(p, r) {
					continue
				}
				if s := player.RoleScore(r); !eligibleAny || s > best {
					best = s
				}
				eligibleAny = true
			}
			if eligibleAny {
				scores = append(scores, best)
			}
		}
		if len(scores) == 0 {
			continue
		}
		mean := stat.Mean(scores, nil)
		std := stat.StdDev(scores, nil)
		lines = append(lines, fmt.Sprintf("%s: n=%d mean=%s stddev=%s", cat, len(scores), formatScore(mean), formatScore(std)))
	}

	if len(lines) == 0 {
		return ""
	}
	return "Squad depth:\n" + strings.Join(lines, "\n")
}
