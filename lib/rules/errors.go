// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rules

import "errors"

// ErrPlayerCount is returned when a roster size is outside
// the supported range of players.
var ErrPlayerCount = errors.New("player count is not valid")
