// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package mission

import "context"

// Operative is a team member taking part in a mission.
type Operative interface {
	// PerformMission returns true to support the mission
	// and false to sabotage it.
	PerformMission(ctx context.Context, m Mission) (support bool, err error)
}

// Mission describes a unit of round play.
// Implementations must be comparable since missions are
// identified by equality in the mission queue.
type Mission interface {
	// OperativeCount is the number of operatives required on the team.
	OperativeCount() int
	// SabotageThreshold is the number of sabotages needed to fail the mission.
	SabotageThreshold() int
	// Execute runs the mission with the team given and returns
	// whether the mission succeeded.
	Execute(ctx context.Context, team []Operative) (succeeded bool, err error)
}
