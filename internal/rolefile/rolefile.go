// Package rolefile parses the role-and-filter file: an ordered list of
// exactly 11 role slots plus an optional set of per-player category
// filters. It accepts two textual formats (legacy and sectioned) and picks
// between them with the single detection rule spec.md §4.3 pins down, so
// independent implementations converge on identical acceptance.
package rolefile

import (
	"bufio"
	"bytes"
	"sort"
	"strings"

	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/teamerrors"
)

// PlayerFilter restricts a named player to roles reachable from a set of
// allowed categories. AllowedCategories is always non-empty for a
// successfully parsed filter.
type PlayerFilter struct {
	Name              string
	AllowedCategories map[domain.CategoryId]bool
}

// RoleFile is the parsed result: exactly 11 declared role slots (duplicates
// allowed, declaration order preserved — it is the assignment engine's
// tie-break priority) plus an optional player filter map.
type RoleFile struct {
	Roles   []domain.RoleId
	Filters map[string]PlayerFilter // keyed by player name, case-sensitive
}

const requiredRoleCount = 11

// Parse consumes UTF-8 role-file bytes and returns a RoleFile, auto-
// detecting legacy vs sectioned format.
func Parse(data []byte) (*RoleFile, error) {
	lines := splitLines(data)
	if isSectioned(lines) {
		return parseSectioned(lines)
	}
	return parseLegacy(lines)
}

func splitLines(data []byte) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

func isSectioned(lines []string) bool {
	for _, l := range lines {
		t := strings.ToLower(strings.TrimSpace(l))
		if t == "[roles]" || t == "[filters]" {
			return true
		}
	}
	return false
}

func parseLegacy(lines []string) (*RoleFile, error) {
	var roles []domain.RoleId
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		r, err := domain.NewRoleId(line)
		if err != nil {
			return nil, teamerrors.UnknownRole(i+1, line)
		}
		roles = append(roles, r)
	}
	if len(roles) != requiredRoleCount {
		return nil, teamerrors.RoleCount(len(roles))
	}
	return &RoleFile{Roles: roles, Filters: map[string]PlayerFilter{}}, nil
}

type section int

const (
	sectionNone section = iota
	sectionRoles
	sectionFilters
)

func parseSectioned(lines []string) (*RoleFile, error) {
	rf := &RoleFile{Filters: map[string]PlayerFilter{}}
	cur := sectionNone

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.ToLower(line[1 : len(line)-1])
			switch name {
			case "roles":
				cur = sectionRoles
			case "filters":
				cur = sectionFilters
			default:
				return nil, teamerrors.UnrecognizedSection(lineNo, line)
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		switch cur {
		case sectionRoles:
			r, err := domain.NewRoleId(line)
			if err != nil {
				return nil, teamerrors.UnknownRole(lineNo, line)
			}
			rf.Roles = append(rf.Roles, r)

		case sectionFilters:
			if err := parseFilterLine(rf, lineNo, line); err != nil {
				return nil, err
			}

		default:
			return nil, teamerrors.Malformed(lineNo)
		}
	}

	if len(rf.Roles) != requiredRoleCount {
		return nil, teamerrors.RoleCount(len(rf.Roles))
	}
	return rf, nil
}

func parseFilterLine(rf *RoleFile, lineNo int, line string) error {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return teamerrors.Malformed(lineNo)
	}
	player := strings.TrimSpace(line[:idx])
	if player == "" {
		return teamerrors.Malformed(lineNo)
	}
	if _, dup := rf.Filters[player]; dup {
		return teamerrors.DuplicateFilter(lineNo, player)
	}

	tokens := strings.Split(line[idx+1:], ",")
	allowed := make(map[domain.CategoryId]bool, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		cat, err := domain.NewCategoryId(tok)
		if err != nil {
			return teamerrors.UnknownCategory(lineNo, player, tok)
		}
		allowed[cat] = true
	}
	if len(allowed) == 0 {
		return teamerrors.Malformed(lineNo)
	}

	rf.Filters[player] = PlayerFilter{Name: player, AllowedCategories: allowed}
	return nil
}

// Write renders rf back into sectioned-format bytes. This is the inverse of
// Parse, used to make the round-trip invariant (spec.md §8 property 7)
// mechanically testable; it is never on the CLI/API request path.
func Write(rf *RoleFile) []byte {
	var b bytes.Buffer
	b.WriteString("[roles]\n")
	for _, r := range rf.Roles {
		b.WriteString(string(r))
		b.WriteByte('\n')
	}

	if len(rf.Filters) == 0 {
		return b.Bytes()
	}

	b.WriteString("\n[filters]\n")
	names := make([]string, 0, len(rf.Filters))
	for name := range rf.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := rf.Filters[name]
		cats := make([]string, 0, len(f.AllowedCategories))
		for c := range f.AllowedCategories {
			cats = append(cats, string(c))
		}
		sort.Strings(cats)
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(strings.Join(cats, ", "))
		b.WriteByte('\n')
	}
	return b.Bytes()
}
