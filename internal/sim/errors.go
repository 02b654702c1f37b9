// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sim

import "errors"

var (
	// ErrFactionsNotAssigned is returned if the spies cannot be selected.
	ErrFactionsNotAssigned = errors.New("factions cannot be assigned")
	// ErrInterrupted is returned if the match is stopped before its end.
	ErrInterrupted = errors.New("match interrupted")
)
