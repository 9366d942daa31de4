// Package domain holds the closed enumerations and record shapes that the
// rest of the team selection core is built on: the 96-role closed set, the
// 9 positional categories, the 47-attribute list, and PlayerRecord itself.
package domain

import (
	"fmt"

	"github.com/jstittsworth/fm-teamselect/internal/teamerrors"
)

// RoleId identifies one of the 96 fixed tactical roles. Equality is exact
// string match; case and whitespace are significant.
type RoleId string

// roleOrder is the canonical, frozen order of the 96-role closed set. It is
// the same order used to index player-table columns 51..146 (internal/roster)
// and is never reordered: reordering it would change the meaning of every
// previously-parsed table.
var roleOrder = []RoleId{
	// Goalkeepers
	"GK", "SK(d)", "SK(s)", "SK(a)",

	// Centre-backs (includes wide centre-backs from a back three)
	"CD(d)", "CD(s)", "CD(c)", "BPD(d)", "BPD(s)", "BPD(c)", "NCB(d)", "L(s)", "L(d)",
	"WCB(d) L", "WCB(d) R", "WCB(s) L", "WCB(s) R", "WCB(a) L", "WCB(a) R",

	// Wing-backs and full-backs
	"FB(d) L", "FB(d) R", "FB(s) L", "FB(s) R", "FB(a) L", "FB(a) R",
	"WB(d) L", "WB(d) R", "WB(s) L", "WB(s) R", "WB(a) L", "WB(a) R",
	"IWB(d) L", "IWB(d) R", "IWB(s) L", "IWB(s) R", "IWB(a) L", "IWB(a) R",
	"CWB(s) L", "CWB(s) R", "CWB(a) L", "CWB(a) R",
	"NNB(d) L", "NNB(d) R",

	// Defensive midfielders
	"DM(d)", "DM(s)", "A(d)", "HB(d)", "DLP(d)", "DLP(s)", "BWM(d)", "BWM(s)", "RGA(s)",

	// Central midfielders
	"CM(d)", "CM(s)", "CM(a)", "BBM(s)", "MEZ(s)", "MEZ(a)", "CAR(s)",

	// Wide midfielders and wingers
	"W(s) L", "W(s) R", "W(a) L", "W(a) R",
	"WM(d) L", "WM(d) R", "WM(s) L", "WM(s) R", "WM(a) L", "WM(a) R",
	"IW(s) L", "IW(s) R", "IW(a) L", "IW(a) R",
	"WP(s) L", "WP(s) R", "WP(a) L", "WP(a) R",

	// Attacking midfielders
	"AM(s)", "AM(a)", "SS(a)", "T(a)", "EG(s)", "AP(s)", "AP(a)",

	// Strikers
	"DLF(s)", "DLF(a)", "CF(s)", "CF(a)", "AF(a)",
	"TM(s)", "TM(a)", "P(a)", "F9(s)", "PF(d)", "PF(s)", "PF(a)",
}

var roleSet map[RoleId]int // role -> its index in roleOrder

func init() {
	roleSet = make(map[RoleId]int, len(roleOrder))
	for i, r := range roleOrder {
		roleSet[r] = i
	}
	if len(roleOrder) != 96 {
		panic(fmt.Sprintf("domain: role closed set must have 96 entries, has %d", len(roleOrder)))
	}
}

// Roles returns the canonical, frozen ordering of all 96 roles as a fresh
// copy; mutating the returned slice does not affect the canonical order.
func Roles() []RoleId {
	out := make([]RoleId, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// RoleCount is the size of the closed role set (always 96).
func RoleCount() int { return len(roleOrder) }

// RoleIndex returns the column index of r within the canonical role order,
// and whether r is a known role.
func RoleIndex(r RoleId) (int, bool) {
	idx, ok := roleSet[r]
	return idx, ok
}

// NewRoleId validates s against the closed set and returns it as a RoleId.
// An unknown s yields a teamerrors UnknownRole error with no line locator.
func NewRoleId(s string) (RoleId, error) {
	r := RoleId(s)
	if _, ok := roleSet[r]; !ok {
		return "", teamerrors.UnknownRole(0, s)
	}
	return r, nil
}

// IsValidRole reports whether s names one of the 96 closed-set roles.
func IsValidRole(s string) bool {
	_, ok := roleSet[RoleId(s)]
	return ok
}
