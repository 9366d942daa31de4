package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_FixedSize(t *testing.T) {
	assert.Equal(t, 96, RoleCount())
	assert.Len(t, Roles(), 96)
}

func TestRoles_ReturnsACopy(t *testing.T) {
	out := Roles()
	out[0] = "MUTATED"
	assert.NotEqual(t, RoleId("MUTATED"), Roles()[0])
}

func TestNewRoleId_KnownAndUnknown(t *testing.T) {
	r, err := NewRoleId("GK")
	require.NoError(t, err)
	assert.Equal(t, RoleId("GK"), r)

	_, err = NewRoleId("not-a-role")
	assert.Error(t, err)
	assert.False(t, IsValidRole("not-a-role"))
	assert.True(t, IsValidRole("WCB(a) L"))
}

func TestRoleIndex_StableOrder(t *testing.T) {
	first, ok := RoleIndex("GK")
	require.True(t, ok)
	assert.Equal(t, 0, first)

	_, ok = RoleIndex("nonexistent")
	assert.False(t, ok)
}
