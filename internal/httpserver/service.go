// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"fmt"
	"time"
)

// Runner runs an HTTP server until its context is canceled.
type Runner interface {
	Run(ctx context.Context, ready chan<- struct{}, done chan<- error)
}

// Service wraps a runner with blocking Start and Stop methods.
type Service struct {
	name     string
	runner   Runner
	optional optionalSettings
	cancel   context.CancelFunc
	done     chan error
}

// NewService creates a service for the runner given.
func NewService(name string, runner Runner, options ...Option) *Service {
	return &Service{
		name:     name,
		runner:   runner,
		optional: newOptionalSettings(options),
	}
}

// Start runs the server and returns once it listens,
// or with the error it terminated with.
func (s *Service) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan error)
	ready := make(chan struct{})

	go s.runner.Run(ctx, ready, s.done)

	select {
	case <-ready:
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrServerDoneBeforeReady, s.name)
	}
}

// Stop stops the server and waits for it to terminate.
func (s *Service) Stop() (err error) {
	s.cancel()

	timer := time.NewTimer(s.optional.stopTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		return err
	case <-timer.C:
		return fmt.Errorf("%w: %s after %s", ErrStopTimeout, s.name, s.optional.stopTimeout)
	}
}
