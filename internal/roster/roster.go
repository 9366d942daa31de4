// Package roster converts a rectangular string table (one row per player)
// into validated domain.PlayerRecord values. Column layout is fixed and
// documented in spec.md §4.4: name, age, foot, 47 ability columns, DNA, then
// the 96 role-score columns in domain.Roles() order.
package roster

import (
	"strconv"
	"strings"

	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/teamerrors"
)

const (
	roleColumnCount = 96 // mirrors domain.RoleCount(); fixed here for const-expr column math

	colName        = 0
	colAge         = 1
	colFoot        = 2
	colAbilityBase = 3                                       // cols 3..49 (47 columns)
	colDNA         = colAbilityBase + domain.AttributeCountConst // 50
	colRoleBase    = colDNA + 1                              // 51..146 (96 columns)
	totalColumns   = colRoleBase + roleColumnCount            // 147 (cols 0..146 inclusive)
)

func init() {
	if roleColumnCount != domain.RoleCount() {
		panic("roster: roleColumnCount is out of sync with domain.RoleCount()")
	}
}

// Warning is a non-fatal observation recorded while parsing a row — the
// only one the spec defines is the foot-value fallback (spec.md §4.4, §7).
type Warning struct {
	Row     int
	Message string
}

// Parse converts rows into player records in input order, skipping rows
// with an empty/whitespace-only name. Returns the structured
// teamerrors.Error for any row-level validation failure (spec.md §4.4).
func Parse(rows [][]string) ([]domain.PlayerRecord, []Warning, error) {
	var players []domain.PlayerRecord
	var warnings []Warning
	seen := make(map[string]bool)

	for rowIdx, row := range rows {
		row = normalizeRow(row)

		name := strings.TrimSpace(row[colName])
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, nil, teamerrors.DuplicatePlayer(name)
		}
		seen[name] = true

		rec := domain.PlayerRecord{Name: name}

		rec.Age = parseOptionalInt(row[colAge])

		foot, ok := parseFoot(row[colFoot])
		if !ok {
			warnings = append(warnings, Warning{
				Row:     rowIdx,
				Message: "unrecognized foot value, defaulting to Either",
			})
		}
		rec.Foot = foot

		for i := 0; i < domain.AttributeCountConst; i++ {
			cell := strings.TrimSpace(row[colAbilityBase+i])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue // abilities are preserved-only; unparsable cells are treated as missing
			}
			rec.Abilities[i] = &v
		}

		if cell := strings.TrimSpace(row[colDNA]); cell != "" {
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				rec.DNA = &v
			}
		}

		rec.RoleScores = make(map[domain.RoleId]float64, domain.RoleCount())
		for i, role := range domain.Roles() {
			cell := strings.TrimSpace(row[colRoleBase+i])
			if cell == "" {
				rec.RoleScores[role] = 0.0
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, teamerrors.MalformedScore(rowIdx, colRoleBase+i)
			}
			rec.RoleScores[role] = v
		}

		players = append(players, rec)
	}

	return players, warnings, nil
}

// normalizeRow pads short rows with empty cells and truncates rows longer
// than the contract's 147 columns, per spec.md §4.4's tolerance rules.
func normalizeRow(row []string) []string {
	if len(row) >= totalColumns {
		return row[:totalColumns]
	}
	out := make([]string, totalColumns)
	copy(out, row)
	return out
}

func parseOptionalInt(cell string) int {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		return 0
	}
	return v
}

func parseFoot(cell string) (domain.Foot, bool) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "left", "l":
		return domain.FootLeft, true
	case "right", "r":
		return domain.FootRight, true
	case "either", "rl", "lr", "both":
		return domain.FootEither, true
	default:
		// empty and unrecognized are both reported as a warning, not an
		// error (spec.md §4.4).
		return domain.FootEither, false
	}
}
