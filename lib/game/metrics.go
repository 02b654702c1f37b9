// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roundsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "resistance_game",
		Name:      "rounds_total",
		Help:      "total number of missions started",
	})
	rejectedTeamsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "resistance_game",
		Name:      "rejected_teams_total",
		Help:      "total number of teams rejected",
	})
	missionsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resistance_game",
		Name:      "missions_total",
		Help:      "total number of missions executed by outcome",
	}, []string{"outcome"})
	gamesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resistance_game",
		Name:      "games_total",
		Help:      "total number of games ended by winner",
	}, []string{"winner"})
)
