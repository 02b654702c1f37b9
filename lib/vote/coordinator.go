// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package vote

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ChainSafe/resistance/internal/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "vote"))

const instrumentationName = "github.com/ChainSafe/resistance/lib/vote"

// Voter is a participant asked to approve or reject a proposal.
type Voter interface {
	CastVote(ctx context.Context) (yes bool, err error)
}

// Coordinator polls voters concurrently and reduces their
// responses to a single outcome. At most one ballot is in
// flight at any time.
// It is thread safe to use.
type Coordinator struct {
	// mutex guards current, the last ballot accepted.
	// A ballot is in flight until it resolves.
	mutex   sync.Mutex
	current *Ballot

	yes       atomic.Int32
	no        atomic.Int32
	errored   atomic.Int32
	remaining atomic.Int32

	tracer trace.Tracer
}

// NewCoordinator creates a vote coordinator using the global
// tracer provider.
func NewCoordinator() *Coordinator {
	return NewCoordinatorWithTracer(otel.Tracer(instrumentationName))
}

// NewCoordinatorWithTracer creates a vote coordinator
// recording its ballots with the tracer given.
func NewCoordinatorWithTracer(tracer trace.Tracer) *Coordinator {
	return &Coordinator{
		tracer: tracer,
	}
}

// InFlight returns true if a ballot is waiting for votes.
func (c *Coordinator) InFlight() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.inFlightLocked()
}

func (c *Coordinator) inFlightLocked() bool {
	return c.current != nil && !c.current.resolved()
}

// CallVote asks every voter for its vote concurrently and returns
// the ballot resolving once every voter responded. The ballot passes
// if there are strictly more yes than no votes, so a ballot without
// voters fails. A voter failing to vote counts as a no.
// If a ballot is already in flight, no voter is polled and the ballot
// returned is resolved as cancelled.
func (c *Coordinator) CallVote(ctx context.Context, voters []Voter) *Ballot {
	c.mutex.Lock()
	if c.inFlightLocked() {
		c.mutex.Unlock()
		ballotsCounter.WithLabelValues(outcomeCancelled).Inc()
		logger.Debug("vote already in progress, cancelling ballot")
		return newCancelledBallot()
	}

	c.yes.Store(0)
	c.no.Store(0)
	c.errored.Store(0)
	c.remaining.Store(int32(len(voters)))

	ballot := newBallot()
	c.current = ballot
	c.mutex.Unlock()

	start := time.Now()
	_, span := c.tracer.Start(ctx, "vote.ballot",
		trace.WithAttributes(attribute.Int("voters", len(voters))))

	finish := func() {
		tally := Tally{
			Yes:     int(c.yes.Load()),
			No:      int(c.no.Load()),
			Errored: int(c.errored.Load()),
		}
		ballotDuration.Observe(time.Since(start).Seconds())
		span.SetAttributes(
			attribute.Int("yes", tally.Yes),
			attribute.Int("no", tally.No),
			attribute.Int("errored", tally.Errored),
		)
		span.End()

		// resolving the ballot releases the coordinator
		ballot.resolve(tally)

		outcome := outcomeFailed
		if ballot.passed {
			outcome = outcomePassed
		}
		ballotsCounter.WithLabelValues(outcome).Inc()
		logger.Debugf("ballot %s with %s", outcome, tally)
	}

	if len(voters) == 0 {
		finish()
		return ballot
	}

	for _, voter := range voters {
		go func(voter Voter) {
			yes, err := voter.CastVote(ctx)
			switch {
			case err != nil:
				logger.Debugf("voter failed to cast vote: %s", err)
				voterErrorsCounter.Inc()
				c.errored.Add(1)
				c.no.Add(1)
			case yes:
				c.yes.Add(1)
			default:
				c.no.Add(1)
			}

			if c.remaining.Add(-1) == 0 {
				finish()
			}
		}(voter)
	}

	return ballot
}
