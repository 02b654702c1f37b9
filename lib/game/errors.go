// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import (
	"errors"
)

// ErrNilConfig is returned when creating a game without configuration
var ErrNilConfig = errors.New("config is nil")

// ErrNilPlayer is returned when the roster contains a nil participant
var ErrNilPlayer = errors.New("player is nil")

// ErrDuplicatePlayer is returned when a participant appears twice in the roster
var ErrDuplicatePlayer = errors.New("player is already in the roster")

// ErrNilMission is returned when the mission set contains a nil mission
var ErrNilMission = errors.New("mission is nil")

// ErrDuplicateMission is returned when a mission appears twice in the mission set
var ErrDuplicateMission = errors.New("mission is already in the mission set")

var (
	errTeamSize        = errors.New("team size does not match operative count")
	errNotAPlayer      = errors.New("team member is not a player")
	errDuplicateMember = errors.New("team member appears more than once")
)
