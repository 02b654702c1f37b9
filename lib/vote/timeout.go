// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package vote

import (
	"context"
	"time"
)

type timeoutVoter struct {
	voter   Voter
	timeout time.Duration
}

// WithTimeout wraps the voter so its vote fails with
// context.DeadlineExceeded once the timeout elapses,
// even if the voter ignores its context.
func WithTimeout(voter Voter, timeout time.Duration) Voter {
	return &timeoutVoter{
		voter:   voter,
		timeout: timeout,
	}
}

type castResult struct {
	yes bool
	err error
}

func (t *timeoutVoter) CastVote(ctx context.Context) (yes bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	result := make(chan castResult, 1)
	go func() {
		yes, err := t.voter.CastVote(ctx)
		result <- castResult{yes: yes, err: err}
	}()

	select {
	case r := <-result:
		return r.yes, r.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
