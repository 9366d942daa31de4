package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/fm-teamselect/internal/assign"
	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/eligibility"
	"github.com/jstittsworth/fm-teamselect/internal/rolefile"
)

func TestDepthAppendix_SkipsAssignedPlayers(t *testing.T) {
	players := []domain.PlayerRecord{
		{Name: "Starter", RoleScores: map[domain.RoleId]float64{"GK": 15.0}},
		{Name: "Backup1", RoleScores: map[domain.RoleId]float64{"GK": 12.0}},
		{Name: "Backup2", RoleScores: map[domain.RoleId]float64{"GK": 10.0}},
	}
	rf := &rolefile.RoleFile{Filters: map[string]rolefile.PlayerFilter{}}
	idx := eligibility.Build(players, rf)
	team := &assign.Team{Assignments: []assign.Assignment{{PlayerName: "Starter", Role: "GK", Score: 15.0}}}

	out := DepthAppendix(players, team, idx)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Squad depth:")
	assert.Contains(t, out, "goal: n=2")
}

func TestDepthAppendix_EmptyWhenNothingLeftOver(t *testing.T) {
	players := []domain.PlayerRecord{
		{Name: "Starter", RoleScores: map[domain.RoleId]float64{"GK": 15.0}},
	}
	rf := &rolefile.RoleFile{Filters: map[string]rolefile.PlayerFilter{}}
	idx := eligibility.Build(players, rf)
	team := &assign.Team{Assignments: []assign.Assignment{{PlayerName: "Starter", Role: "GK", Score: 15.0}}}

	assert.Equal(t, "", DepthAppendix(players, team, idx))
}
