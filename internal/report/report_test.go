package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/fm-teamselect/internal/assign"
)

func TestRender_SortsByRoleAndAppendsTotal(t *testing.T) {
	team := &assign.Team{
		Assignments: []assign.Assignment{
			{PlayerName: "Jones", Role: "W(a) L", Score: 12.3},
			{PlayerName: "Smith", Role: "GK", Score: 15.0},
		},
		TotalScore: 27.3,
	}

	out := Render(team, nil)
	assert.Equal(t, "GK -> Smith (score: 15.0)\nW(a) L -> Jones (score: 12.3)\nTotal Score: 27.3", out)
}

func TestRender_WithUnassignedWarning(t *testing.T) {
	team := &assign.Team{
		Assignments: []assign.Assignment{{PlayerName: "Smith", Role: "GK", Score: 10.0}},
		TotalScore:  10.0,
	}
	out := Render(team, assign.UnassignedSet{"Jones", "Patel"})
	assert.Contains(t, out, "Warning: 2 player(s) could not be assigned due to filter restrictions")
	assert.Contains(t, out, "- Jones")
	assert.Contains(t, out, "- Patel")
}

func TestFormatScore_ZeroIsOneDecimal(t *testing.T) {
	assert.Equal(t, "0.0", formatScore(0))
	assert.Equal(t, "0.0", formatScore(-0.0001))
	assert.Equal(t, "0.0", formatScore(-0.04))
	assert.Equal(t, "10.5", formatScore(10.5))
	assert.Equal(t, "-5.0", formatScore(-5.0))
}
