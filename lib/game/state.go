// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import "fmt"

// State is the protocol state of a game.
type State uint8

const (
	// NotReady is the state of a game whose factions are not assigned yet.
	NotReady State = iota
	// SelectingLeader waits for the next leader to be selected.
	SelectingLeader
	// WaitingForMission waits for the leader's mission to be started.
	WaitingForMission
	// SelectingMissionOperatives waits for the leader to propose a team.
	SelectingMissionOperatives
	// Voting waits for every player to vote on the proposed team.
	Voting
	// Mission waits for the approved team to execute the mission.
	Mission
	// End is the terminal state.
	End
)

func (s State) String() string {
	switch s {
	case NotReady:
		return "not ready"
	case SelectingLeader:
		return "selecting leader"
	case WaitingForMission:
		return "waiting for mission"
	case SelectingMissionOperatives:
		return "selecting mission operatives"
	case Voting:
		return "voting"
	case Mission:
		return "mission"
	case End:
		return "end"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}
