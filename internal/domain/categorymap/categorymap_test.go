package categorymap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/fm-teamselect/internal/domain"
)

func TestIsIn_OverlapRoles(t *testing.T) {
	assert.True(t, IsIn("CM(a)", domain.CategoryCM))
	assert.True(t, IsIn("CM(a)", domain.CategoryAM))
	assert.False(t, IsIn("CM(a)", domain.CategoryDM))

	assert.True(t, IsIn("DLP(d)", domain.CategoryDM))
	assert.True(t, IsIn("DLP(d)", domain.CategoryCM))
	assert.True(t, IsIn("DLP(d)", domain.CategoryPM))
}

func TestRolesFor_EveryRoleCovered(t *testing.T) {
	seen := make(map[domain.RoleId]bool)
	for _, cat := range domain.Categories() {
		for _, r := range RolesFor(cat) {
			seen[r] = true
		}
	}
	for _, r := range domain.Roles() {
		assert.True(t, seen[r], "role %s is not reachable from any category", r)
	}
}

func TestCategoriesFor_NeverEmptyForValidRole(t *testing.T) {
	for _, r := range domain.Roles() {
		assert.NotEmpty(t, CategoriesFor(r), "role %s has no categories", r)
	}
}

func TestCategoriesFor_UnknownRole(t *testing.T) {
	assert.Empty(t, CategoriesFor("not-a-role"))
}
