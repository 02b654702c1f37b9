// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sim

import (
	"context"
	"fmt"

	"github.com/ChainSafe/resistance/internal/log"
	"github.com/ChainSafe/resistance/lib/game"
	"github.com/ChainSafe/resistance/lib/rules"
)

const eventsBuffer = 64

// Summary is the outcome of a match.
type Summary struct {
	Winner  rules.Faction
	Decided bool
	Score   rules.Score
	// Rounds is the number of missions started, rejected teams included.
	Rounds        int
	RejectedTeams int
	Missions      int
}

// Driver plays the host of a match: it assigns the factions,
// passes the leadership seat by seat and starts the head
// mission of the queue at every round.
type Driver struct {
	game   *game.Game
	spies  []game.Participant
	logger log.LeveledLogger

	seat int
}

// NewDriver creates a driver for the game and the spies given.
func NewDriver(g *game.Game, spies []game.Participant, logger log.LeveledLogger) *Driver {
	return &Driver{
		game:   g,
		spies:  spies,
		logger: logger,
	}
}

// Game returns the game driven.
func (d *Driver) Game() *game.Game {
	return d.game
}

// Run plays the match until the game is over. If the context is
// done first, the game is stopped and ErrInterrupted is returned
// together with the summary so far.
func (d *Driver) Run(ctx context.Context) (summary Summary, err error) {
	events := make(chan game.Event, eventsBuffer)
	id := d.game.Subscribe(game.ChannelObserver(events))
	defer d.game.Unsubscribe(id)

	if !d.game.SelectSpies(d.spies) {
		return summary, fmt.Errorf("%w: game is in state %s",
			ErrFactionsNotAssigned, d.game.State())
	}

	ctxDone := ctx.Done()
	for {
		select {
		case <-ctxDone:
			// stop asynchronously since the game over event
			// must still be drained from the events channel.
			ctxDone = nil
			err = fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
			go d.game.Stop()
		case event := <-events:
			d.logger.Tracef("event %s: %+v", event.Type(), event)

			switch e := event.(type) {
			case game.FactionsAssigned:
				d.startRound(&summary)
			case game.TeamRejected:
				summary.RejectedTeams++
				d.startRound(&summary)
			case game.VoteCancelled:
				d.startRound(&summary)
			case game.MissionCompleted:
				summary.Missions++
				d.startRound(&summary)
			case game.GameOver:
				summary.Winner = e.Winner
				summary.Decided = e.Decided
				summary.Score = e.Score
				return summary, err
			}
		}
	}
}

// startRound selects the next leader and starts the head mission,
// unless the game left the leader selection meanwhile.
func (d *Driver) startRound(summary *Summary) {
	if d.game.State() != game.SelectingLeader {
		return
	}

	players := d.game.Players()
	leader := players[d.seat%len(players)]
	if !d.game.SelectLeader(leader) {
		return
	}
	d.seat++

	pending := d.game.PendingMissions()
	if len(pending) == 0 {
		d.logger.Warn("no mission left to start")
		return
	}
	if !d.game.StartMission(pending[0]) {
		return
	}
	summary.Rounds++
	d.logger.Debugf("round %d: mission %d led by player %d",
		summary.Rounds, d.game.MissionNumber(pending[0]), d.game.Seat(leader))
}
