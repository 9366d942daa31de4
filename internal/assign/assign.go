// Package assign implements the deterministic greedy solver (C6): given
// players, a declared role file, and a precomputed eligibility index, it
// fills each of the 11 declared slots, in declaration order, with the
// highest-scoring still-available eligible player.
//
// This is deliberately a free function taking explicit arguments and
// holding no hidden state — following the redesign note in spec.md §9
// that greedy assignment should not be a method on a struct
// holding borrowed slices, precisely so the determinism invariant
// (spec.md §8 property 6) is trivial to test: same inputs in, byte-for-byte
// same Team out.
package assign

import (
	"math"

	"github.com/jstittsworth/fm-teamselect/internal/domain"
	"github.com/jstittsworth/fm-teamselect/internal/eligibility"
	"github.com/jstittsworth/fm-teamselect/internal/rolefile"
	"github.com/jstittsworth/fm-teamselect/internal/teamerrors"
)

// Assignment binds one player to one slot's role, at the score the player
// actually has for that role.
type Assignment struct {
	PlayerName string
	Role       domain.RoleId
	Score      float64
}

// Team is the eleven assignments the greedy solver produced, plus their sum.
type Team struct {
	Assignments []Assignment
	TotalScore  float64
}

// UnassignedSet names the leftover players who were warned about: those
// with a filter (it may have cost them their spot), and any player
// ineligible for every role regardless of remaining slots. In input order.
type UnassignedSet []string

const slotCount = 11

// SlotEvent reports the outcome of filling one slot, in declaration order.
// It exists so a caller (internal/progress) can observe the solver's
// progress without the solver itself depending on any transport — the
// observer is a plain callback, never a channel or interface the core owns.
type SlotEvent struct {
	SlotIndex  int
	Role       domain.RoleId
	PlayerName string // empty when Filled is false
	Score      float64
	Filled     bool
}

// Run executes the greedy solver. players must already be validated
// (internal/roster.Parse); rf must already be validated
// (internal/rolefile.Parse); idx must be built from the same players and rf
// (internal/eligibility.Build).
func Run(players []domain.PlayerRecord, rf *rolefile.RoleFile, idx *eligibility.Index) (*Team, UnassignedSet, error) {
	return RunObserved(players, rf, idx, nil)
}

// RunObserved behaves exactly like Run, additionally invoking observe once
// per slot (filled or unfillable) as the greedy pass proceeds. observe may
// be nil.
func RunObserved(players []domain.PlayerRecord, rf *rolefile.RoleFile, idx *eligibility.Index, observe func(SlotEvent)) (*Team, UnassignedSet, error) {
	if len(players) < slotCount {
		return nil, nil, teamerrors.InsufficientPlayers(len(players))
	}

	taken := make([]bool, len(players))
	team := &Team{Assignments: make([]Assignment, 0, len(rf.Roles))}

	for slotIdx, role := range rf.Roles {
		best := -1
		bestScore := -math.MaxFloat64

		for p := range players {
			if taken[p] || !idx.IsEligible(p, role) {
				continue
			}
			score := players[p].RoleScore(role)
			if score > bestScore {
				bestScore = score
				best = p
			}
		}

		if best == -1 {
			if observe != nil {
				observe(SlotEvent{SlotIndex: slotIdx, Role: role, Filled: false})
			}
			return nil, nil, teamerrors.SlotUnfillable(string(role), slotIdx)
		}

		taken[best] = true
		team.Assignments = append(team.Assignments, Assignment{
			PlayerName: players[best].Name,
			Role:       role,
			Score:      bestScore,
		})
		team.TotalScore += bestScore

		if observe != nil {
			observe(SlotEvent{
				SlotIndex:  slotIdx,
				Role:       role,
				PlayerName: players[best].Name,
				Score:      bestScore,
				Filled:     true,
			})
		}
	}

	var unassigned UnassignedSet
	for p, player := range players {
		if taken[p] {
			continue
		}
		_, filtered := rf.Filters[player.Name]
		if filtered || !idx.HasAnyEligibleRole(p) {
			unassigned = append(unassigned, player.Name)
		}
	}

	return team, unassigned, nil
}
