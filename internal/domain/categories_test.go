package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_FixedSize(t *testing.T) {
	assert.Len(t, Categories(), 9)
}

func TestNewCategoryId_CaseInsensitive(t *testing.T) {
	c, err := NewCategoryId("  CM ")
	require.NoError(t, err)
	assert.Equal(t, CategoryCM, c)

	_, err = NewCategoryId("defense")
	assert.Error(t, err)
	assert.True(t, IsValidCategory("Wing"))
	assert.False(t, IsValidCategory("defense"))
}
