// Package categorymap holds the static many-to-many relation between the 9
// positional categories and the 96-role closed set (domain.CategoryId and
// domain.RoleId). It is a read-only singleton: two dense tables precomputed
// once at package init, never mutated afterward, freely shareable across
// goroutines and invocations.
package categorymap

import "github.com/jstittsworth/fm-teamselect/internal/domain"

// membership is the ground-truth relation: which roles belong to each
// category. A role may appear under more than one category (e.g. DLP(d)
// belongs to dm, cm and pm; CM(a) belongs to cm and am) — that overlap is
// exactly what lets a player's filter admit roles from several positional
// families at once.
var membership = map[domain.CategoryId][]domain.RoleId{
	domain.CategoryGoal: {
		"GK", "SK(d)", "SK(s)", "SK(a)",
	},
	domain.CategoryCD: {
		"CD(d)", "CD(s)", "CD(c)", "BPD(d)", "BPD(s)", "BPD(c)", "NCB(d)", "L(s)", "L(d)",
		"WCB(d) L", "WCB(d) R", "WCB(s) L", "WCB(s) R", "WCB(a) L", "WCB(a) R",
	},
	domain.CategoryWB: {
		"FB(d) L", "FB(d) R", "FB(s) L", "FB(s) R", "FB(a) L", "FB(a) R",
		"WB(d) L", "WB(d) R", "WB(s) L", "WB(s) R", "WB(a) L", "WB(a) R",
		"IWB(d) L", "IWB(d) R", "IWB(s) L", "IWB(s) R", "IWB(a) L", "IWB(a) R",
		"CWB(s) L", "CWB(s) R", "CWB(a) L", "CWB(a) R",
		"NNB(d) L", "NNB(d) R",
	},
	domain.CategoryDM: {
		"DM(d)", "DM(s)", "A(d)", "HB(d)", "DLP(d)", "DLP(s)", "BWM(d)", "BWM(s)", "RGA(s)",
		"IWB(d) L", "IWB(d) R",
	},
	domain.CategoryCM: {
		"CM(d)", "CM(s)", "CM(a)", "BBM(s)", "MEZ(s)", "MEZ(a)", "CAR(s)",
		"DLP(d)", "DLP(s)",
		"IWB(s) L", "IWB(s) R", "IWB(a) L", "IWB(a) R",
	},
	domain.CategoryWing: {
		"W(s) L", "W(s) R", "W(a) L", "W(a) R",
		"WM(d) L", "WM(d) R", "WM(s) L", "WM(s) R", "WM(a) L", "WM(a) R",
		"IW(s) L", "IW(s) R", "IW(a) L", "IW(a) R",
		"WP(s) L", "WP(s) R", "WP(a) L", "WP(a) R",
	},
	domain.CategoryAM: {
		"AM(s)", "AM(a)", "SS(a)", "T(a)", "EG(s)", "AP(s)", "AP(a)",
		"CM(a)",
		"IW(s) L", "IW(s) R", "IW(a) L", "IW(a) R",
		"WP(s) L", "WP(s) R", "WP(a) L", "WP(a) R",
		"F9(s)",
	},
	domain.CategoryPM: {
		"DLP(d)", "DLP(s)", "RGA(s)", "AP(s)", "AP(a)",
	},
	domain.CategoryStr: {
		"DLF(s)", "DLF(a)", "CF(s)", "CF(a)", "AF(a)",
		"TM(s)", "TM(a)", "P(a)", "F9(s)", "PF(d)", "PF(s)", "PF(a)",
	},
}

// roleBits[r] is a 9-bit mask; bit i is set iff r belongs to domain.Categories()[i].
var roleBits map[domain.RoleId]uint16

// categoryIndex maps a CategoryId to its bit position in roleBits.
var categoryIndex map[domain.CategoryId]int

func init() {
	cats := domain.Categories()
	categoryIndex = make(map[domain.CategoryId]int, len(cats))
	for i, c := range cats {
		categoryIndex[c] = i
	}

	roleBits = make(map[domain.RoleId]uint16, domain.RoleCount())
	for _, r := range domain.Roles() {
		roleBits[r] = 0
	}
	for cat, roles := range membership {
		bit := uint16(1) << uint(categoryIndex[cat])
		for _, r := range roles {
			if _, ok := domain.RoleIndex(r); !ok {
				panic("categorymap: role " + string(r) + " in category " + string(cat) + " is not in the closed role set")
			}
			roleBits[r] |= bit
		}
	}
	for _, r := range domain.Roles() {
		if roleBits[r] == 0 {
			panic("categorymap: role " + string(r) + " is not assigned to any category")
		}
	}
}

// RolesFor returns every role belonging to category, in canonical role
// order. Total over the 9 categories (role closure invariant).
func RolesFor(category domain.CategoryId) []domain.RoleId {
	idx, ok := categoryIndex[category]
	if !ok {
		return nil
	}
	bit := uint16(1) << uint(idx)
	var out []domain.RoleId
	for _, r := range domain.Roles() {
		if roleBits[r]&bit != 0 {
			out = append(out, r)
		}
	}
	return out
}

// CategoriesFor returns every category role belongs to, in the fixed
// category enumeration order. Never empty for a valid RoleId — every role
// in the domain is assigned to at least one category.
func CategoriesFor(role domain.RoleId) []domain.CategoryId {
	bits, ok := roleBits[role]
	if !ok {
		return nil
	}
	var out []domain.CategoryId
	for _, c := range domain.Categories() {
		if bits&(uint16(1)<<uint(categoryIndex[c])) != 0 {
			out = append(out, c)
		}
	}
	return out
}

// IsIn reports whether role belongs to category.
func IsIn(role domain.RoleId, category domain.CategoryId) bool {
	idx, ok := categoryIndex[category]
	if !ok {
		return false
	}
	return roleBits[role]&(uint16(1)<<uint(idx)) != 0
}
