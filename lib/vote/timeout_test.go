// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package vote

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("vote_in_time", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		voter := NewMockVoter(ctrl)
		voter.EXPECT().CastVote(gomock.Any()).Return(true, nil)

		yes, err := WithTimeout(voter, time.Second).CastVote(context.Background())

		require.NoError(t, err)
		assert.True(t, yes)
	})

	t.Run("unresponsive_voter", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		release := make(chan struct{})
		defer close(release)
		voter := NewMockVoter(ctrl)
		voter.EXPECT().CastVote(gomock.Any()).
			DoAndReturn(func(context.Context) (bool, error) {
				<-release
				return true, nil
			})

		yes, err := WithTimeout(voter, time.Millisecond).CastVote(context.Background())

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, yes)
	})

	t.Run("unresponsive_voter_counts_as_no", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		release := make(chan struct{})
		defer close(release)
		slow := NewMockVoter(ctrl)
		slow.EXPECT().CastVote(gomock.Any()).
			DoAndReturn(func(context.Context) (bool, error) {
				<-release
				return true, nil
			})
		voters := append(newVoters(ctrl, 1, 0, 0), WithTimeout(slow, time.Millisecond))

		ballot := NewCoordinator().CallVote(context.Background(), voters)
		passed, err := waitBallot(t, ballot)

		require.NoError(t, err)
		assert.False(t, passed)
		assert.Equal(t, Tally{Yes: 1, No: 1, Errored: 1}, ballot.Tally())
	})
}
