// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package mission

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ChainSafe/resistance/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "mission"))

// Standard is a mission resolved by counting sabotages: every
// operative of the team performs the mission concurrently and the
// mission fails once the sabotage threshold is reached.
type Standard struct {
	number     int
	operatives int
	threshold  int
	sabotages  atomic.Int32
}

var _ Mission = (*Standard)(nil)

// NewStandard creates a standard mission with the given number,
// team size and sabotage threshold.
func NewStandard(number, operatives, threshold int) *Standard {
	return &Standard{
		number:     number,
		operatives: operatives,
		threshold:  threshold,
	}
}

// Number returns the mission number, starting at 1.
func (s *Standard) Number() int { return s.number }

// OperativeCount returns the team size required.
func (s *Standard) OperativeCount() int { return s.operatives }

// SabotageThreshold returns the number of sabotages failing the mission.
func (s *Standard) SabotageThreshold() int { return s.threshold }

// Sabotages returns the sabotage count of the last execution.
func (s *Standard) Sabotages() int { return int(s.sabotages.Load()) }

func (s *Standard) String() string {
	return fmt.Sprintf("mission #%d (%d operatives, %d to fail)",
		s.number, s.operatives, s.threshold)
}

// Execute asks every operative of the team to perform the mission
// concurrently. An operative returning false or an error sabotages it.
// The mission succeeds if the sabotage count stays below the threshold.
func (s *Standard) Execute(ctx context.Context, team []Operative) (succeeded bool, err error) {
	if len(team) != s.operatives {
		return false, fmt.Errorf("%w: %d operatives for %s",
			ErrTeamSize, len(team), s)
	}

	s.sabotages.Store(0)

	var wg sync.WaitGroup
	wg.Add(len(team))
	for _, operative := range team {
		go func(operative Operative) {
			defer wg.Done()
			support, err := operative.PerformMission(ctx, s)
			if err != nil {
				logger.Debugf("operative failed to perform %s: %s", s, err)
				s.sabotages.Add(1)
				return
			}
			if !support {
				s.sabotages.Add(1)
			}
		}(operative)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return false, err
	}

	sabotages := int(s.sabotages.Load())
	logger.Debugf("%s finished with %d sabotage(s)", s, sabotages)
	return sabotages < s.threshold, nil
}
