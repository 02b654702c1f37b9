// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rules

import "fmt"

// Faction is one of the two hidden factions of a match.
type Faction uint8

const (
	// Loyal is the faction of the resistance members.
	Loyal Faction = iota
	// Spies is the faction of the infiltrated spies.
	Spies
)

func (f Faction) String() string {
	switch f {
	case Loyal:
		return "loyal"
	case Spies:
		return "spies"
	default:
		return fmt.Sprintf("faction(%d)", uint8(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Faction) MarshalText() (text []byte, err error) {
	return []byte(f.String()), nil
}

// Score counts the missions resolved so far.
type Score struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

func (s Score) String() string {
	return fmt.Sprintf("%d succeeded, %d failed", s.Successes, s.Failures)
}

// Rules holds the win conditions of a match.
type Rules struct {
	// MissionsToWin is the number of successful missions the loyal
	// faction needs, and the number of failed missions the spies need.
	MissionsToWin int
	// MaxRejectedTeams is the number of consecutive rejected teams
	// handing the victory to the spies. Zero disables the limit.
	MaxRejectedTeams int
}

// Default returns the classic rules: three missions to win
// and five rejected teams in a row for the spies to win.
func Default() Rules {
	return Rules{
		MissionsToWin:    3,
		MaxRejectedTeams: 5,
	}
}

// IsZero returns true if no rule is set.
func (r Rules) IsZero() bool {
	return r == Rules{}
}

// Decide returns the winning faction and true if the score decides
// the match, and false otherwise.
func (r Rules) Decide(score Score) (winner Faction, decided bool) {
	switch {
	case score.Failures >= r.MissionsToWin:
		return Spies, true
	case score.Successes >= r.MissionsToWin:
		return Loyal, true
	default:
		return Loyal, false
	}
}

// Exhausted returns the winner of a match whose missions ran out
// before the score decided it. Ties go to the spies.
func (r Rules) Exhausted(score Score) (winner Faction) {
	if score.Successes > score.Failures {
		return Loyal
	}
	return Spies
}

// TooManyRejections returns true if the number of consecutive
// rejected teams hands the victory to the spies.
func (r Rules) TooManyRejections(rejected int) bool {
	return r.MaxRejectedTeams > 0 && rejected >= r.MaxRejectedTeams
}
