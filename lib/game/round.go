// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/resistance/lib/mission"
	"github.com/ChainSafe/resistance/lib/vote"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (g *Game) proposeTeam(leader Participant, m mission.Mission) {
	ctx, span := g.tracer.Start(g.ctx, "game.propose_team",
		trace.WithAttributes(
			attribute.Int("mission", g.missions[m]),
			attribute.Int("leader", g.seats[leader]),
		))
	team, err := leader.ProposeTeam(ctx, m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	g.teamProposed(m, team, err)
}

func (g *Game) teamProposed(m mission.Mission, team []Participant, err error) {
	g.mutex.Lock()

	if g.state != SelectingMissionOperatives || g.current != m {
		g.mutex.Unlock()
		return
	}

	if err == nil {
		err = g.validateTeam(m, team)
	}
	if err != nil {
		g.logger.Debugf("team proposal for mission %d rejected: %s", g.missions[m], err)
		events := g.rejectTeamLocked()
		ticket := g.notifier.ticket()
		g.mutex.Unlock()
		g.notifier.deliver(ticket, nil, events...)
		return
	}

	g.team = make([]Participant, len(team))
	copy(g.team, team)
	g.state = Voting
	event := OperativesChosen{
		Mission: g.missions[m],
		Leader:  g.seats[g.leader],
		Team:    g.seatsOf(team),
	}
	ticket := g.notifier.ticket()
	g.mutex.Unlock()

	g.notifier.deliver(ticket, nil, event)

	go g.runVote(m)
}

func (g *Game) validateTeam(m mission.Mission, team []Participant) error {
	if len(team) != m.OperativeCount() {
		return fmt.Errorf("%w: %d operatives instead of %d",
			errTeamSize, len(team), m.OperativeCount())
	}

	members := make(map[Participant]struct{}, len(team))
	for _, member := range team {
		if !g.isPlayer(member) {
			return errNotAPlayer
		}
		if _, has := members[member]; has {
			return fmt.Errorf("%w: player %d", errDuplicateMember, g.seats[member])
		}
		members[member] = struct{}{}
	}
	return nil
}

func (g *Game) runVote(m mission.Mission) {
	ctx, span := g.tracer.Start(g.ctx, "game.vote",
		trace.WithAttributes(attribute.Int("mission", g.missions[m])))
	ballot := g.coordinator.CallVote(ctx, g.voters())
	passed, err := ballot.Wait(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Bool("passed", passed))
	span.End()

	g.voteResolved(m, passed, err)
}

func (g *Game) voteResolved(m mission.Mission, passed bool, err error) {
	g.mutex.Lock()

	if g.state != Voting || g.current != m {
		g.mutex.Unlock()
		return
	}

	if errors.Is(err, vote.ErrVoteInProgress) {
		number := g.missions[m]
		g.queue.PushFront(m)
		g.current = nil
		g.team = nil
		g.state = SelectingLeader
		ticket := g.notifier.ticket()
		g.mutex.Unlock()

		g.logger.Warnf("vote for mission %d cancelled: %s", number, err)

		g.notifier.deliver(ticket, nil, VoteCancelled{Mission: number})
		return
	}

	if err != nil {
		g.logger.Warnf("vote for mission %d did not resolve: %s", g.missions[m], err)
		passed = false
	}

	if !passed {
		events := g.rejectTeamLocked()
		ticket := g.notifier.ticket()
		g.mutex.Unlock()
		g.notifier.deliver(ticket, nil, events...)
		return
	}

	g.rejected = 0
	g.state = Mission
	team := make([]Participant, len(g.team))
	copy(team, g.team)
	event := MissionStarting{
		Mission: g.missions[m],
		Team:    g.seatsOf(team),
	}
	ticket := g.notifier.ticket()
	g.mutex.Unlock()

	g.logger.Debugf("team approved for mission %d", event.Mission)

	g.notifier.deliver(ticket, nil, event)

	go g.executeMission(m, team)
}

func (g *Game) executeMission(m mission.Mission, team []Participant) {
	ctx, span := g.tracer.Start(g.ctx, "game.execute_mission",
		trace.WithAttributes(
			attribute.Int("mission", g.missions[m]),
			attribute.Int("operatives", len(team)),
		))

	operatives := make([]mission.Operative, len(team))
	for i, member := range team {
		operatives[i] = member
	}

	succeeded, err := m.Execute(ctx, operatives)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Bool("succeeded", succeeded))
	span.End()

	g.missionExecuted(m, succeeded, err)
}

func (g *Game) missionExecuted(m mission.Mission, succeeded bool, err error) {
	g.mutex.Lock()

	if g.state != Mission || g.current != m {
		g.mutex.Unlock()
		return
	}

	number := g.missions[m]
	if err != nil {
		g.logger.Warnf("mission %d failed to execute: %s", number, err)
		succeeded = false
	}

	outcome := "failed"
	if succeeded {
		outcome = "succeeded"
		g.score.Successes++
	} else {
		g.score.Failures++
	}
	missionsCounter.WithLabelValues(outcome).Inc()
	g.logger.Debugf("mission %d %s, score is %s", number, outcome, g.score)

	g.current = nil
	g.team = nil
	events := []Event{MissionCompleted{
		Mission:   number,
		Succeeded: succeeded,
		Score:     g.score,
	}}

	winner, decided := g.rules.Decide(g.score)
	switch {
	case decided:
		events = append(events, g.endLocked(winner, true))
	case g.queue.Len() == 0:
		events = append(events, g.endLocked(g.rules.Exhausted(g.score), true))
	default:
		g.state = SelectingLeader
	}

	ticket := g.notifier.ticket()
	g.mutex.Unlock()

	g.notifier.deliver(ticket, nil, events...)
}
