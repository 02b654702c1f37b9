// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/ChainSafe/resistance/lib/game"
	"github.com/ChainSafe/resistance/lib/mission"
)

// loyalApproval is the probability a loyal bot approves
// a team it is not part of.
const loyalApproval = 0.6

// Bot is a simulated participant. It knows what its faction
// tells it and what the game events show.
// It must be subscribed to the game it plays to follow the
// proposed teams.
type Bot struct {
	id int

	mutex    sync.Mutex
	random   *rand.Rand
	patience int
	roster   []game.Participant
	spy      bool
	spies    map[game.Participant]struct{}
	team     []game.Participant
	rejected int
}

// NewBots creates n bots, each seeded from the seed given.
// Loyal bots approve any team once patience teams in a row
// were rejected.
func NewBots(n int, seed int64, patience int) (bots []*Bot) {
	bots = make([]*Bot, n)
	for i := range bots {
		bots[i] = &Bot{
			id:       i,
			random:   rand.New(rand.NewSource(seed + int64(i) + 1)), //nolint:gosec
			patience: patience,
		}
	}
	return bots
}

// Join seats the bots in the order given and returns the roster.
func Join(bots []*Bot) (roster []game.Participant) {
	roster = make([]game.Participant, len(bots))
	for i, b := range bots {
		roster[i] = b
	}
	for _, b := range bots {
		b.mutex.Lock()
		b.roster = roster
		b.mutex.Unlock()
	}
	return roster
}

func (b *Bot) String() string {
	return fmt.Sprintf("bot %d", b.id)
}

// IsSpy returns true if the bot was told it is a spy.
func (b *Bot) IsSpy() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.spy
}

// NotifyLoyal implements game.Participant.
func (b *Bot) NotifyLoyal() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.spy = false
	b.spies = nil
}

// NotifySpy implements game.Participant.
func (b *Bot) NotifySpy(spies []game.Participant) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.spy = true
	b.spies = make(map[game.Participant]struct{}, len(spies))
	for _, spy := range spies {
		b.spies[spy] = struct{}{}
	}
}

// Notify implements game.Observer to follow the team proposals.
func (b *Bot) Notify(event game.Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	switch e := event.(type) {
	case game.OperativesChosen:
		b.team = make([]game.Participant, 0, len(e.Team))
		for _, seat := range e.Team {
			if seat >= 0 && seat < len(b.roster) {
				b.team = append(b.team, b.roster[seat])
			}
		}
	case game.TeamRejected:
		b.team = nil
		b.rejected = e.Rejected
	case game.VoteCancelled:
		b.team = nil
	case game.MissionStarting:
		b.rejected = 0
	case game.MissionCompleted, game.GameOver:
		b.team = nil
	}
}

// ProposeTeam implements game.Participant. The bot
// proposes itself together with random players.
func (b *Bot) ProposeTeam(ctx context.Context, m mission.Mission) (
	team []game.Participant, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	size := m.OperativeCount()
	if size > len(b.roster) {
		return nil, fmt.Errorf("%w: %d operatives needed for %d players",
			mission.ErrTeamSize, size, len(b.roster))
	}

	team = make([]game.Participant, 0, size)
	if size == 0 {
		return team, nil
	}
	team = append(team, b)
	for _, i := range b.random.Perm(len(b.roster)) {
		if len(team) == size {
			break
		}
		if b.roster[i] == game.Participant(b) {
			continue
		}
		team = append(team, b.roster[i])
	}
	return team, nil
}

// CastVote implements vote.Voter. Spies approve teams with
// a spy on them. Loyal bots approve teams they are part of,
// any team once out of patience, and other teams at random.
func (b *Bot) CastVote(ctx context.Context) (yes bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.spy {
		for _, member := range b.team {
			if _, spy := b.spies[member]; spy {
				return true, nil
			}
		}
		return false, nil
	}

	for _, member := range b.team {
		if member == game.Participant(b) {
			return true, nil
		}
	}
	if b.patience > 0 && b.rejected >= b.patience {
		return true, nil
	}
	return b.random.Float64() < loyalApproval, nil
}

// PerformMission implements mission.Operative.
// Spies always sabotage.
func (b *Bot) PerformMission(ctx context.Context, _ mission.Mission) (
	success bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return !b.IsSpy(), nil
}
