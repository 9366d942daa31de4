package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/rolefile"
)

func TestBuild_UnfilteredPlayerEligibleForEveryRole(t *testing.T) {
	players := []domain.PlayerRecord{{Name: "Smith"}}
	rf := &rolefile.RoleFile{Filters: map[string]rolefile.PlayerFilter{}}
	idx := Build(players, rf)

	for _, r := range domain.Roles() {
		assert.True(t, idx.IsEligible(0, r))
	}
	assert.True(t, idx.HasAnyEligibleRole(0))
}

func TestBuild_FilteredPlayerRestrictedToCategory(t *testing.T) {
	players := []domain.PlayerRecord{{Name: "Smith"}}
	rf := &rolefile.RoleFile{Filters: map[string]rolefile.PlayerFilter{
		"Smith": {Name: "Smith", AllowedCategories: map[domain.CategoryId]bool{domain.CategoryGoal: true}},
	}}
	idx := Build(players, rf)

	assert.True(t, idx.IsEligible(0, "GK"))
	assert.False(t, idx.IsEligible(0, "CD(d)"))
	assert.True(t, idx.HasAnyEligibleRole(0))
}

func TestBuild_FilteredPlayerWithNoMatchingRoles(t *testing.T) {
	players := []domain.PlayerRecord{{Name: "Smith"}}
	rf := &rolefile.RoleFile{Filters: map[string]rolefile.PlayerFilter{
		"Smith": {Name: "Smith", AllowedCategories: map[domain.CategoryId]bool{}},
	}}
	idx := Build(players, rf)
	require.False(t, idx.HasAnyEligibleRole(0))
}

func TestIsEligible_OutOfRangeIsFalse(t *testing.T) {
	idx := Build(nil, &rolefile.RoleFile{Filters: map[string]rolefile.PlayerFilter{}})
	assert.False(t, idx.IsEligible(0, "GK"))
	assert.False(t, idx.HasAnyEligibleRole(0))
}
