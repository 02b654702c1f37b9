// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import (
	"context"

	"github.com/ChainSafe/resistance/lib/mission"
	"github.com/ChainSafe/resistance/lib/vote"
)

// Participant is a player of the game, whatever drives its
// decisions. Implementations must be comparable since players
// are identified by equality.
type Participant interface {
	vote.Voter
	mission.Operative

	// NotifyLoyal tells the participant it belongs to the loyal faction.
	NotifyLoyal()
	// NotifySpy tells the participant it is a spy, together with
	// the full roster of spies.
	NotifySpy(spies []Participant)
	// ProposeTeam asks the leader to propose a team for the mission.
	ProposeTeam(ctx context.Context, m mission.Mission) (team []Participant, err error)
}

// Coordinator runs the votes of the game.
type Coordinator interface {
	CallVote(ctx context.Context, voters []vote.Voter) *vote.Ballot
}
