package teamerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_FormattingIncludesLocator(t *testing.T) {
	e := UnknownRole(5, "BOGUS")
	assert.Equal(t, `UnknownRole: "BOGUS" (line 5)`, e.Error())

	e2 := MalformedScore(3, 60)
	assert.Contains(t, e2.Error(), "row 3, col 60")
}

func TestAs_MatchesOnlyTeamErrors(t *testing.T) {
	te, ok := As(InsufficientPlayers(4))
	assert.True(t, ok)
	assert.Equal(t, KindInsufficientPlayers, te.Kind)

	_, ok = As(errors.New("plain error"))
	assert.False(t, ok)
}
