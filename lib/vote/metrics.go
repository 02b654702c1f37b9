// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package vote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomePassed    = "passed"
	outcomeFailed    = "failed"
	outcomeCancelled = "cancelled"
)

var (
	ballotsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "resistance_vote",
		Name:      "ballots_total",
		Help:      "total number of ballots by outcome",
	}, []string{"outcome"})
	voterErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "resistance_vote",
		Name:      "voter_errors_total",
		Help:      "total number of voters failing to cast their vote",
	})
	ballotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "resistance_vote",
		Name:      "duration_seconds",
		Help:      "time spent between calling a vote and its resolution",
	})
)
