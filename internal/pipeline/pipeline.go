// Package pipeline wires the core stages together exactly the way spec.md
// §2 describes the control flow: role-file bytes and a 2-D table go in,
// C3 and C4 run in parallel concerns (not goroutines — both are pure,
// synchronous transforms), C5 combines their output with the static C2,
// C6 solves, and C7 renders. This is the one place both cmd/teamselect and
// internal/api call into; neither driver reimplements the wiring.
package pipeline

import (
	"github.com/jstittsworth/fm-teamselect/internal/assign"
	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/eligibility"
	"github.com/jstittsworth/fm-teamselect/internal/report"
	"github.com/jstittsworth/fm-teamselect/internal/rolefile"
	"github.com/jstittsworth/fm-teamselect/internal/roster"
)

// Result is everything one invocation produces.
type Result struct {
	RoleFile   *rolefile.RoleFile
	Players    []domain.PlayerRecord
	Warnings   []roster.Warning
	Index      *eligibility.Index
	Team       *assign.Team
	Unassigned assign.UnassignedSet
	Report     string
}

// Run executes the full pipeline once. observe, if non-nil, is invoked once
// per slot as the greedy solver fills or fails to fill it.
func Run(roleFileBytes []byte, rows [][]string, observe func(assign.SlotEvent)) (*Result, error) {
	rf, err := rolefile.Parse(roleFileBytes)
	if err != nil {
		return nil, err
	}

	players, warnings, err := roster.Parse(rows)
	if err != nil {
		return nil, err
	}

	idx := eligibility.Build(players, rf)

	team, unassigned, err := assign.RunObserved(players, rf, idx, observe)
	if err != nil {
		return nil, err
	}

	rendered := report.Render(team, unassigned)

	return &Result{
		RoleFile:   rf,
		Players:    players,
		Warnings:   warnings,
		Index:      idx,
		Team:       team,
		Unassigned: unassigned,
		Report:     rendered,
	}, nil
}

// Eligibility runs C3+C4+C5 only (no solver), for the --dry-run eligibility
// preview: which categories/roles each player qualifies for.
func Eligibility(roleFileBytes []byte, rows [][]string) (*rolefile.RoleFile, []domain.PlayerRecord, *eligibility.Index, error) {
	rf, err := rolefile.Parse(roleFileBytes)
	if err != nil {
		return nil, nil, nil, err
	}
	players, _, err := roster.Parse(rows)
	if err != nil {
		return nil, nil, nil, err
	}
	idx := eligibility.Build(players, rf)
	return rf, players, idx, nil
}
