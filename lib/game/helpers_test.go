// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import (
	"context"
	"testing"
	"time"

	"github.com/ChainSafe/resistance/lib/vote"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type stubVoter bool

func (s stubVoter) CastVote(context.Context) (bool, error) { return bool(s), nil }

func stubVoters(yes, no int) (voters []vote.Voter) {
	for i := 0; i < yes; i++ {
		voters = append(voters, stubVoter(true))
	}
	for i := 0; i < no; i++ {
		voters = append(voters, stubVoter(false))
	}
	return voters
}

// stubBallot returns a coordinator function resolving a
// real ballot over the stub voters given.
func stubBallot(yes, no int) func(ctx context.Context, _ []vote.Voter) *vote.Ballot {
	return func(ctx context.Context, _ []vote.Voter) *vote.Ballot {
		return vote.NewCoordinator().CallVote(ctx, stubVoters(yes, no))
	}
}

func newMockPlayers(ctrl *gomock.Controller, n int) (
	players []Participant, mocks []*MockParticipant) {
	players = make([]Participant, n)
	mocks = make([]*MockParticipant, n)
	for i := range players {
		mocks[i] = NewMockParticipant(ctrl)
		players[i] = mocks[i]
	}
	return players, mocks
}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		require.FailNow(t, "timed out waiting for event")
		return nil
	}
}

func assertNoEvent(t *testing.T, events <-chan Event) {
	t.Helper()
	select {
	case event := <-events:
		require.FailNow(t, "unexpected event", "%#v", event)
	default:
	}
}

// readyGame creates a game without spies, subscribes the events channel
// and selects the first player as leader. The game is stopped at cleanup.
func readyGame(t *testing.T, cfg *Config, mocks []*MockParticipant,
	events chan Event) *Game {
	t.Helper()

	for _, m := range mocks {
		m.EXPECT().NotifyLoyal()
	}

	g, err := NewGame(cfg)
	require.NoError(t, err)
	t.Cleanup(g.Stop)

	g.Subscribe(ChannelObserver(events))
	require.True(t, g.SelectSpies(nil))
	require.True(t, g.SelectLeader(cfg.Players[0]))
	require.Equal(t, FactionsAssigned{Spies: []int{}}, waitEvent(t, events))
	require.Equal(t, LeaderChanged{Leader: 0}, waitEvent(t, events))

	return g
}
