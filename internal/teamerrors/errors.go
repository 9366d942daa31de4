// Package teamerrors defines the structured error taxonomy the team
// selection core raises. It generalizes the teacher's free-form
// utils.AppError{Code, Message, Details} into a closed, testable
// enumeration with the locator fields (line/row/col) the spec requires —
// every fallible operation in the core returns one of these, never a bare
// string, and no error is ever recovered partway: validation failures abort
// the invocation. The one exception is domain.NewCategoryId, which returns a
// plain error; the role-file parser reports an UnknownCategory in its place.
package teamerrors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error kinds the core can raise.
type Kind string

const (
	KindUnknownRole        Kind = "UnknownRole"
	KindUnknownCategory    Kind = "UnknownCategory"
	KindRoleCount          Kind = "RoleCount"
	KindDuplicateFilter    Kind = "DuplicateFilter"
	KindMalformed          Kind = "Malformed"
	KindUnrecognizedSection Kind = "UnrecognizedSection"
	KindDuplicatePlayer    Kind = "DuplicatePlayer"
	KindMalformedScore     Kind = "MalformedScore"
	KindInsufficientPlayers Kind = "InsufficientPlayers"
	KindSlotUnfillable     Kind = "SlotUnfillable"
)

// Error is the structured error every core component returns. Line is a
// 1-based role-file line number (C3); Row/Col are 0-based player-table
// coordinates (C4). Line 0, or Row/Col -1, means "not applicable" for that
// kind.
type Error struct {
	Kind    Kind
	Value   string // the offending token/name, when one exists
	Line    int    // 1-based; 0 if not applicable
	Row     int    // 0-based; -1 if not applicable
	Col     int    // 0-based; -1 if not applicable
	Message string // optional human-readable detail beyond Kind+Value
}

func (e *Error) Error() string {
	loc := ""
	switch {
	case e.Line > 0:
		loc = fmt.Sprintf(" (line %d)", e.Line)
	case e.Row >= 0 && e.Col >= 0:
		loc = fmt.Sprintf(" (row %d, col %d)", e.Row, e.Col)
	case e.Row >= 0:
		loc = fmt.Sprintf(" (row %d)", e.Row)
	}
	if e.Value != "" {
		if e.Message != "" {
			return fmt.Sprintf("%s: %q%s: %s", e.Kind, e.Value, loc, e.Message)
		}
		return fmt.Sprintf("%s: %q%s", e.Kind, e.Value, loc)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s%s: %s", e.Kind, loc, e.Message)
	}
	return fmt.Sprintf("%s%s", e.Kind, loc)
}

func newErr(k Kind) *Error { return &Error{Kind: k, Row: -1, Col: -1} }

// UnknownRole reports a string that is not in the 96-role closed set.
func UnknownRole(line int, text string) *Error {
	e := newErr(KindUnknownRole)
	e.Line, e.Value = line, text
	return e
}

// UnknownCategory reports a string that is not one of the 9 categories.
func UnknownCategory(line int, player, text string) *Error {
	e := newErr(KindUnknownCategory)
	e.Line, e.Value = line, text
	e.Message = fmt.Sprintf("for player %q", player)
	return e
}

// RoleCount reports a [roles] section with other than 11 entries.
func RoleCount(actual int) *Error {
	e := newErr(KindRoleCount)
	e.Message = fmt.Sprintf("expected 11 roles, got %d", actual)
	return e
}

// DuplicateFilter reports the same player name listed twice in [filters].
func DuplicateFilter(line int, player string) *Error {
	e := newErr(KindDuplicateFilter)
	e.Line, e.Value = line, player
	return e
}

// Malformed reports a line that cannot be parsed within its section.
func Malformed(line int) *Error {
	e := newErr(KindMalformed)
	e.Line = line
	return e
}

// UnrecognizedSection reports a [x] header that is neither roles nor filters.
func UnrecognizedSection(line int, name string) *Error {
	e := newErr(KindUnrecognizedSection)
	e.Line, e.Value = line, name
	return e
}

// DuplicatePlayer reports two player-table rows sharing a name.
func DuplicatePlayer(name string) *Error {
	e := newErr(KindDuplicatePlayer)
	e.Value = name
	return e
}

// MalformedScore reports a cell expected to be numeric that was not.
func MalformedScore(row, col int) *Error {
	e := newErr(KindMalformedScore)
	e.Row, e.Col = row, col
	return e
}

// InsufficientPlayers reports fewer than 11 valid player rows.
func InsufficientPlayers(count int) *Error {
	e := newErr(KindInsufficientPlayers)
	e.Message = fmt.Sprintf("need at least 11 players, have %d", count)
	return e
}

// SlotUnfillable reports a slot with zero eligible unassigned players.
func SlotUnfillable(roleID string, slotIndex int) *Error {
	e := newErr(KindSlotUnfillable)
	e.Value = roleID
	e.Message = fmt.Sprintf("slot %d has no eligible unassigned player", slotIndex)
	return e
}

// As is a tiny convenience wrapper around errors.As for *Error, used by
// callers (the driver, the API layer) that want to branch on Kind without
// importing the standard errors package directly in every call site.
func As(err error) (*Error, bool) {
	var te *Error
	ok := errors.As(err, &te)
	return te, ok
}
