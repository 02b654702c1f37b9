// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import (
	"github.com/ChainSafe/resistance/lib/mission"
	"github.com/ChainSafe/resistance/lib/rules"
)

// PlayerCount returns the roster size.
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// Players returns a copy of the roster, in seat order.
func (g *Game) Players() (players []Participant) {
	players = make([]Participant, len(g.players))
	copy(players, g.players)
	return players
}

// Seat returns the seat of the participant in the roster,
// or -1 if the participant is not a player.
func (g *Game) Seat(p Participant) (seat int) {
	if !g.isPlayer(p) {
		return -1
	}
	return g.seats[p]
}

// Spies returns a copy of the spies, which is empty
// until the factions are assigned.
func (g *Game) Spies() (spies []Participant) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	spies = make([]Participant, len(g.spies))
	copy(spies, g.spies)
	return spies
}

// State returns the current protocol state.
func (g *Game) State() State {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.state
}

// Leader returns the last leader selected, or nil.
func (g *Game) Leader() Participant {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.leader
}

// CurrentMission returns the mission of the round in progress, or nil.
func (g *Game) CurrentMission() mission.Mission {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.current
}

// PendingMissions returns the queued missions, head first.
func (g *Game) PendingMissions() []mission.Mission {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.queue.Missions()
}

// MissionNumber returns the number of the mission in the mission
// set, starting at 1, or 0 if the mission is not part of the game.
func (g *Game) MissionNumber(m mission.Mission) int {
	if m == nil {
		return 0
	}
	return g.missions[m]
}

// Team returns a copy of the team of the round in progress.
func (g *Game) Team() (team []Participant) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	team = make([]Participant, len(g.team))
	copy(team, g.team)
	return team
}

// RejectedTeamsThisRound returns the number of consecutive teams rejected.
func (g *Game) RejectedTeamsThisRound() int {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.rejected
}

// Score returns the missions resolved so far.
func (g *Game) Score() rules.Score {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.score
}

// Winner returns the winning faction and true once
// the game ended with a winner.
func (g *Game) Winner() (winner rules.Faction, decided bool) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.winner, g.decided
}
