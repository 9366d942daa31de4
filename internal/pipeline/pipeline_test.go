package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/fm-teamselect/internal/assign"
)

const roleFile = `[roles]
GK
CD(d)
CD(s)
WB(s) L
WB(s) R
DM(d)
CM(s)
CM(a)
W(a) L
W(a) R
AF(a)
`

func tableRow(name string, roleScores map[string]string) []string {
	row := make([]string, 147)
	row[0] = name
	byRole := map[string]int{
		"GK": 51, "CD(d)": 55, "CD(s)": 56, "WB(s) L": 78, "WB(s) R": 79,
		"DM(d)": 94, "CM(s)": 104, "CM(a)": 105, "W(a) L": 112, "W(a) R": 113, "AF(a)": 139,
	}
	for role, val := range roleScores {
		row[byRole[role]] = val
	}
	return row
}

func TestRun_EndToEnd(t *testing.T) {
	rows := [][]string{
		tableRow("Keeper", map[string]string{"GK": "16"}),
		tableRow("Stopper1", map[string]string{"CD(d)": "14"}),
		tableRow("Stopper2", map[string]string{"CD(s)": "13"}),
		tableRow("LeftBack", map[string]string{"WB(s) L": "12"}),
		tableRow("RightBack", map[string]string{"WB(s) R": "12"}),
		tableRow("Anchor", map[string]string{"DM(d)": "15"}),
		tableRow("BoxToBox", map[string]string{"CM(s)": "14"}),
		tableRow("Playmaker", map[string]string{"CM(a)": "15"}),
		tableRow("LeftWing", map[string]string{"W(a) L": "13"}),
		tableRow("RightWing", map[string]string{"W(a) R": "13"}),
		tableRow("Striker", map[string]string{"AF(a)": "17"}),
	}

	var events []assign.SlotEvent
	result, err := Run([]byte(roleFile), rows, func(ev assign.SlotEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	assert.Len(t, result.Team.Assignments, 11)
	assert.Len(t, events, 11)
	assert.Contains(t, result.Report, "GK -> Keeper")
	assert.Empty(t, result.Unassigned)
}

func TestEligibility_PreviewDoesNotSolve(t *testing.T) {
	rows := [][]string{
		tableRow("Keeper", map[string]string{"GK": "16"}),
	}
	rf, players, idx, err := Eligibility([]byte(roleFile), rows)
	require.NoError(t, err)
	assert.Len(t, rf.Roles, 11)
	require.Len(t, players, 1)
	assert.True(t, idx.IsEligible(0, "GK"))
}
