// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import "github.com/ChainSafe/resistance/lib/rules"

// EventType identifies the transition an event reports.
type EventType uint8

const (
	FactionsAssignedType EventType = iota
	LeaderChangedType
	OperativesChosenType
	TeamRejectedType
	MissionStartingType
	MissionCompletedType
	GameOverType
	VoteCancelledType
)

func (t EventType) String() string {
	switch t {
	case FactionsAssignedType:
		return "factions_assigned"
	case LeaderChangedType:
		return "leader_changed"
	case OperativesChosenType:
		return "operatives_chosen"
	case TeamRejectedType:
		return "team_rejected"
	case MissionStartingType:
		return "mission_starting"
	case MissionCompletedType:
		return "mission_completed"
	case GameOverType:
		return "game_over"
	case VoteCancelledType:
		return "vote_cancelled"
	default:
		return "unknown"
	}
}

// Event is a lifecycle notification of the game.
// Players are referenced by their seat in the roster
// and missions by their number, starting at 1.
type Event interface {
	Type() EventType
}

// FactionsAssigned is emitted once the spies are selected.
type FactionsAssigned struct {
	Spies []int `json:"spies"`
}

// LeaderChanged is emitted when a leader is selected.
type LeaderChanged struct {
	Leader int `json:"leader"`
}

// OperativesChosen is emitted when the leader proposed a valid team.
type OperativesChosen struct {
	Mission int   `json:"mission"`
	Leader  int   `json:"leader"`
	Team    []int `json:"team"`
}

// TeamRejected is emitted when the proposed team is voted down,
// or when the leader failed to propose a valid team, in which
// case no ballot took place.
type TeamRejected struct {
	Mission int `json:"mission"`
	// Rejected is the number of consecutive rejected teams.
	Rejected int `json:"rejected"`
}

// MissionStarting is emitted when the proposed team is approved.
type MissionStarting struct {
	Mission int   `json:"mission"`
	Team    []int `json:"team"`
}

// MissionCompleted is emitted once the team executed the mission.
type MissionCompleted struct {
	Mission   int         `json:"mission"`
	Succeeded bool        `json:"succeeded"`
	Score     rules.Score `json:"score"`
}

// GameOver is emitted when the game reaches its end state.
// Decided is false if the game was stopped without a winner.
type GameOver struct {
	Winner  rules.Faction `json:"winner"`
	Decided bool          `json:"decided"`
	Score   rules.Score   `json:"score"`
}

// VoteCancelled is emitted when the coordinator refused the vote
// on the proposed team because another ballot was in flight.
// The mission goes back to the front of the queue and the
// count of rejected teams is left untouched.
type VoteCancelled struct {
	Mission int `json:"mission"`
}

func (FactionsAssigned) Type() EventType { return FactionsAssignedType }
func (LeaderChanged) Type() EventType    { return LeaderChangedType }
func (OperativesChosen) Type() EventType { return OperativesChosenType }
func (TeamRejected) Type() EventType     { return TeamRejectedType }
func (MissionStarting) Type() EventType  { return MissionStartingType }
func (MissionCompleted) Type() EventType { return MissionCompletedType }
func (GameOver) Type() EventType         { return GameOverType }
func (VoteCancelled) Type() EventType    { return VoteCancelledType }
