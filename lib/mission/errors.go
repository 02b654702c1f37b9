// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package mission

import "errors"

// ErrTeamSize is returned when a mission is executed by a team
// whose size differs from the operative count of the mission.
var ErrTeamSize = errors.New("team size does not match operative count")
