// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package vote

import (
	"context"
	"fmt"
)

// Tally holds the final counts of a ballot.
type Tally struct {
	Yes int
	No  int
	// Errored is the number of voters which failed to vote.
	// They are also counted in No.
	Errored int
}

func (t Tally) String() string {
	return fmt.Sprintf("%d yes, %d no (%d errored)", t.Yes, t.No, t.Errored)
}

// Ballot is the future outcome of a call for a vote.
// It resolves exactly once, either to a boolean outcome
// or to the cancelled state.
type Ballot struct {
	done      chan struct{}
	passed    bool
	cancelled bool
	tally     Tally
}

func newBallot() *Ballot {
	return &Ballot{
		done: make(chan struct{}),
	}
}

func newCancelledBallot() *Ballot {
	b := newBallot()
	b.cancelled = true
	close(b.done)
	return b
}

// resolve must be called exactly once.
func (b *Ballot) resolve(tally Tally) {
	b.tally = tally
	b.passed = tally.Yes > tally.No
	close(b.done)
}

func (b *Ballot) resolved() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed once the ballot is resolved.
func (b *Ballot) Done() <-chan struct{} {
	return b.done
}

// Wait blocks until the ballot resolves or the context is done.
// It returns ErrVoteInProgress if the ballot was cancelled.
func (b *Ballot) Wait(ctx context.Context) (passed bool, err error) {
	select {
	case <-b.done:
		return b.outcome()
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Result returns the outcome of the ballot without blocking.
// It returns ErrBallotPending if the ballot has not resolved yet,
// and ErrVoteInProgress if the ballot was cancelled.
func (b *Ballot) Result() (passed bool, err error) {
	select {
	case <-b.done:
		return b.outcome()
	default:
		return false, ErrBallotPending
	}
}

func (b *Ballot) outcome() (passed bool, err error) {
	if b.cancelled {
		return false, ErrVoteInProgress
	}
	return b.passed, nil
}

// Cancelled returns true if the ballot was rejected because
// another vote was in progress.
func (b *Ballot) Cancelled() bool {
	select {
	case <-b.done:
		return b.cancelled
	default:
		return false
	}
}

// Tally returns the final counts of the ballot, which are
// zero until the ballot resolves.
func (b *Ballot) Tally() Tally {
	select {
	case <-b.done:
		return b.tally
	default:
		return Tally{}
	}
}
