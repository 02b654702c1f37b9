// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rules

import (
	"fmt"

	"github.com/ChainSafe/resistance/lib/mission"
)

const (
	// MinPlayers is the minimum roster size of a match.
	MinPlayers = 5
	// MaxPlayers is the maximum roster size of a match.
	MaxPlayers = 10
)

// MissionsPerGame is the number of missions of a match.
const MissionsPerGame = 5

// indexed by player count minus MinPlayers
var teamSizes = [MaxPlayers - MinPlayers + 1][MissionsPerGame]int{
	{2, 3, 2, 3, 3},
	{2, 3, 4, 3, 4},
	{2, 3, 3, 4, 4},
	{3, 4, 4, 5, 5},
	{3, 4, 4, 5, 5},
	{3, 4, 4, 5, 5},
}

var spyCounts = [MaxPlayers - MinPlayers + 1]int{2, 2, 3, 3, 3, 4}

// ValidatePlayerCount returns an error wrapping ErrPlayerCount
// if n is outside [MinPlayers, MaxPlayers].
func ValidatePlayerCount(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("%w: %d is not in [%d, %d]",
			ErrPlayerCount, n, MinPlayers, MaxPlayers)
	}
	return nil
}

// SpyCount returns the number of spies for a roster of n players.
func SpyCount(n int) (spies int, err error) {
	if err := ValidatePlayerCount(n); err != nil {
		return 0, err
	}
	return spyCounts[n-MinPlayers], nil
}

// TeamSizes returns the team size of each mission of a
// match with n players, in mission order.
func TeamSizes(n int) (sizes []int, err error) {
	if err := ValidatePlayerCount(n); err != nil {
		return nil, err
	}
	row := teamSizes[n-MinPlayers]
	return row[:], nil
}

// SabotageThreshold returns the number of sabotages failing the
// mission with the given number (starting at 1) for n players.
// The fourth mission needs two sabotages with seven players or more.
func SabotageThreshold(n, number int) int {
	const fourthMission = 4
	if number == fourthMission && n >= 7 {
		return 2
	}
	return 1
}

// Missions returns the standard missions of a match with n players.
func Missions(n int) (missions []*mission.Standard, err error) {
	sizes, err := TeamSizes(n)
	if err != nil {
		return nil, err
	}

	missions = make([]*mission.Standard, len(sizes))
	for i, size := range sizes {
		number := i + 1
		missions[i] = mission.NewStandard(number, size, SabotageThreshold(n, number))
	}
	return missions, nil
}
