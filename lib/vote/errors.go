// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package vote

import "errors"

var (
	// ErrVoteInProgress is the outcome of a ballot rejected because
	// another ballot of the coordinator had not resolved yet.
	ErrVoteInProgress = errors.New("vote already in progress")
	// ErrBallotPending is returned when reading the result of a
	// ballot which has not resolved yet.
	ErrBallotPending = errors.New("ballot is not resolved yet")
)
