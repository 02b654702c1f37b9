// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/resistance/internal/log"
	"github.com/ChainSafe/resistance/lib/mission"
	"github.com/ChainSafe/resistance/lib/rules"
	"github.com/ChainSafe/resistance/lib/vote"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "game"))

const instrumentationName = "github.com/ChainSafe/resistance/lib/game"

// Config is the configuration of a game.
type Config struct {
	LogLvl log.Level
	// Players is the roster of the game, from 5 to 10 unique participants.
	Players []Participant
	// Missions is the mission set of the game, in queue order.
	Missions []mission.Mission
	// Coordinator runs the votes. It defaults to a new vote coordinator.
	Coordinator Coordinator
	// Rules are the win conditions. They default to rules.Default().
	Rules rules.Rules
	// VoteTimeout bounds the time each player has to vote, a player
	// running out of time voting no. Zero disables the timeout.
	VoteTimeout time.Duration
	// Tracer defaults to the tracer of the global tracer provider.
	Tracer trace.Tracer
}

// Game is the protocol state machine of a match.
// Guarded operations report false and leave the game untouched if
// their precondition does not hold. Team proposals, votes and mission
// executions run on their own goroutines and drive the internal
// transitions when they complete.
// A proposal which fails, or whose team is not made of distinct players
// matching the operative count, is rejected without calling a vote.
// It is thread safe to use.
type Game struct {
	logger      *log.Logger
	tracer      trace.Tracer
	coordinator Coordinator
	rules       rules.Rules
	voteTimeout time.Duration
	notifier    *notifier
	ctx         context.Context
	cancel      context.CancelFunc

	// read only after construction
	players  []Participant
	seats    map[Participant]int
	missions map[mission.Mission]int

	mutex    sync.Mutex
	state    State
	spies    []Participant
	queue    *mission.Queue
	current  mission.Mission
	leader   Participant
	team     []Participant
	rejected int
	score    rules.Score
	winner   rules.Faction
	decided  bool
}

// NewGame creates a game from the configuration given.
func NewGame(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if err := rules.ValidatePlayerCount(len(cfg.Players)); err != nil {
		return nil, err
	}

	seats := make(map[Participant]int, len(cfg.Players))
	for i, p := range cfg.Players {
		if p == nil {
			return nil, fmt.Errorf("%w: at seat %d", ErrNilPlayer, i)
		}
		if seat, has := seats[p]; has {
			return nil, fmt.Errorf("%w: at seats %d and %d", ErrDuplicatePlayer, seat, i)
		}
		seats[p] = i
	}

	numbers := make(map[mission.Mission]int, len(cfg.Missions))
	for i, m := range cfg.Missions {
		if m == nil {
			return nil, fmt.Errorf("%w: at index %d", ErrNilMission, i)
		}
		if number, has := numbers[m]; has {
			return nil, fmt.Errorf("%w: missions %d and %d", ErrDuplicateMission, number, i+1)
		}
		numbers[m] = i + 1
	}

	coordinator := cfg.Coordinator
	if coordinator == nil {
		coordinator = vote.NewCoordinator()
	}

	gameRules := cfg.Rules
	if gameRules.IsZero() {
		gameRules = rules.Default()
	}
	if gameRules.MissionsToWin <= 0 {
		gameRules.MissionsToWin = rules.Default().MissionsToWin
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}

	players := make([]Participant, len(cfg.Players))
	copy(players, cfg.Players)

	ctx, cancel := context.WithCancel(context.Background())

	return &Game{
		logger:      logger.New(log.SetLevel(cfg.LogLvl)),
		tracer:      tracer,
		coordinator: coordinator,
		rules:       gameRules,
		voteTimeout: cfg.VoteTimeout,
		notifier:    newNotifier(),
		ctx:         ctx,
		cancel:      cancel,
		players:     players,
		seats:       seats,
		missions:    numbers,
		state:       NotReady,
		queue:       mission.NewQueue(cfg.Missions...),
	}, nil
}

// Subscribe registers an observer for every future event
// and returns its subscription id.
func (g *Game) Subscribe(observer Observer) (id uint32) {
	return g.notifier.subscribe(observer)
}

// Unsubscribe removes the subscription with the given id
// and returns false if no such subscription exists.
func (g *Game) Unsubscribe(id uint32) (removed bool) {
	return g.notifier.unsubscribe(id)
}

// SelectSpies assigns the factions. It succeeds only before the leader
// selection starts and if every spy given is a player. Spies are told
// the full roster of spies and every other player is told it is loyal.
func (g *Game) SelectSpies(spies []Participant) (ok bool) {
	g.mutex.Lock()

	if g.state != NotReady {
		g.mutex.Unlock()
		g.logger.Debugf("cannot select spies in state %s", g.state)
		return false
	}

	selected := make([]Participant, 0, len(spies))
	isSpy := make(map[Participant]struct{}, len(spies))
	for _, spy := range spies {
		if !g.isPlayer(spy) {
			g.mutex.Unlock()
			g.logger.Debug("cannot select a spy which is not a player")
			return false
		}
		if _, has := isSpy[spy]; has {
			continue
		}
		isSpy[spy] = struct{}{}
		selected = append(selected, spy)
	}

	g.spies = selected
	g.state = SelectingLeader
	event := FactionsAssigned{Spies: g.seatsOf(selected)}
	ticket := g.notifier.ticket()
	g.mutex.Unlock()

	g.logger.Debugf("%d spies selected", len(selected))

	g.notifier.deliver(ticket, func() {
		for _, p := range g.players {
			if _, spy := isSpy[p]; !spy {
				p.NotifyLoyal()
				continue
			}
			roster := make([]Participant, len(selected))
			copy(roster, selected)
			p.NotifySpy(roster)
		}
	}, event)
	return true
}

// SelectLeader selects the leader of the next mission.
// It succeeds only while selecting a leader and if the
// candidate is a player.
func (g *Game) SelectLeader(candidate Participant) (ok bool) {
	g.mutex.Lock()

	if g.state != SelectingLeader || !g.isPlayer(candidate) {
		state := g.state
		g.mutex.Unlock()
		g.logger.Debugf("cannot select leader in state %s", state)
		return false
	}

	g.leader = candidate
	g.state = WaitingForMission
	event := LeaderChanged{Leader: g.seats[candidate]}
	ticket := g.notifier.ticket()
	g.mutex.Unlock()

	g.logger.Debugf("player %d is the leader", event.Leader)

	g.notifier.deliver(ticket, nil, event)
	return true
}

// StartMission takes the mission out of the pending missions and
// asks the leader to propose a team for it. It succeeds only once a
// leader is selected and if the mission is pending.
func (g *Game) StartMission(m mission.Mission) (ok bool) {
	g.mutex.Lock()

	if g.state != WaitingForMission || m == nil || !g.queue.Contains(m) {
		state := g.state
		g.mutex.Unlock()
		g.logger.Debugf("cannot start mission in state %s", state)
		return false
	}

	g.queue.Remove(m)
	g.current = m
	g.team = nil
	g.state = SelectingMissionOperatives
	leader := g.leader
	g.mutex.Unlock()

	roundsCounter.Inc()
	g.logger.Debugf("mission %d started, waiting for team proposal", g.missions[m])

	go g.proposeTeam(leader, m)
	return true
}

// Stop ends the game without a winner and cancels the context
// given to outstanding participant and coordinator calls.
// It is a no-op if the game already ended.
func (g *Game) Stop() {
	g.mutex.Lock()

	if g.state == End {
		g.mutex.Unlock()
		return
	}

	event := g.endLocked(rules.Loyal, false)
	ticket := g.notifier.ticket()
	g.mutex.Unlock()

	g.logger.Debug("game stopped")

	g.notifier.deliver(ticket, nil, event)
}

func (g *Game) isPlayer(p Participant) bool {
	if p == nil {
		return false
	}
	_, has := g.seats[p]
	return has
}

func (g *Game) seatsOf(participants []Participant) (seats []int) {
	seats = make([]int, len(participants))
	for i, p := range participants {
		seats[i] = g.seats[p]
	}
	return seats
}

func (g *Game) voters() (voters []vote.Voter) {
	voters = make([]vote.Voter, len(g.players))
	for i, p := range g.players {
		voters[i] = p
		if g.voteTimeout > 0 {
			voters[i] = vote.WithTimeout(p, g.voteTimeout)
		}
	}
	return voters
}

// rejectTeamLocked handles a failed vote or an invalid proposal
// for the current mission, and must be called with the mutex locked.
func (g *Game) rejectTeamLocked() (events []Event) {
	number := g.missions[g.current]
	g.rejected++
	g.queue.PushFront(g.current)
	g.current = nil
	g.team = nil
	g.state = SelectingLeader

	rejectedTeamsCounter.Inc()
	g.logger.Debugf("team rejected for mission %d (%d in a row)", number, g.rejected)

	events = append(events, TeamRejected{Mission: number, Rejected: g.rejected})
	if g.rules.TooManyRejections(g.rejected) {
		events = append(events, g.endLocked(rules.Spies, true))
	}
	return events
}

// endLocked must be called with the mutex locked.
func (g *Game) endLocked(winner rules.Faction, decided bool) GameOver {
	g.state = End
	g.winner = winner
	g.decided = decided
	g.cancel()

	label := "none"
	if decided {
		label = winner.String()
		g.logger.Infof("game over, %s win with %s", winner, g.score)
	}
	gamesCounter.WithLabelValues(label).Inc()

	return GameOver{
		Winner:  winner,
		Decided: decided,
		Score:   g.score,
	}
}
