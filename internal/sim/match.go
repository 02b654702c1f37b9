// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ChainSafe/resistance/internal/log"
	"github.com/ChainSafe/resistance/lib/game"
	"github.com/ChainSafe/resistance/lib/mission"
	"github.com/ChainSafe/resistance/lib/rules"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "sim"))

// Settings are the settings of a simulated match.
type Settings struct {
	LogLvl      log.Level
	Players     int
	Seed        int64
	Rules       rules.Rules
	VoteTimeout time.Duration
	// Observers are subscribed to the game before the match starts.
	Observers []game.Observer
}

// NewMatch creates a game played by bots, with spies drawn at random
// from the seed, and returns the driver of the match.
func NewMatch(settings Settings) (driver *Driver, err error) {
	spyCount, err := rules.SpyCount(settings.Players)
	if err != nil {
		return nil, err
	}

	standards, err := rules.Missions(settings.Players)
	if err != nil {
		return nil, err
	}
	missions := make([]mission.Mission, len(standards))
	for i, m := range standards {
		missions[i] = m
	}

	patience := settings.Rules.MaxRejectedTeams - 1
	if settings.Rules.IsZero() {
		patience = rules.Default().MaxRejectedTeams - 1
	}
	bots := NewBots(settings.Players, settings.Seed, patience)
	roster := Join(bots)

	g, err := game.NewGame(&game.Config{
		LogLvl:      settings.LogLvl,
		Players:     roster,
		Missions:    missions,
		Rules:       settings.Rules,
		VoteTimeout: settings.VoteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}

	// bots follow the team proposals through the game events
	for _, b := range bots {
		g.Subscribe(b)
	}
	for _, observer := range settings.Observers {
		g.Subscribe(observer)
	}

	random := rand.New(rand.NewSource(settings.Seed)) //nolint:gosec
	spies := make([]game.Participant, spyCount)
	for i, seat := range random.Perm(settings.Players)[:spyCount] {
		spies[i] = roster[seat]
	}

	matchLogger := logger.New(log.SetLevel(settings.LogLvl),
		log.AddContext("seed", fmt.Sprint(settings.Seed)))
	return NewDriver(g, spies, matchLogger), nil
}
