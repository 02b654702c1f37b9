// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import "time"

const (
	defaultShutdownTimeout = 3 * time.Second
	defaultStopTimeout     = 30 * time.Second
)

// Option is a functional option for the HTTP server and service.
type Option func(s *optionalSettings)

type optionalSettings struct {
	shutdownTimeout time.Duration
	stopTimeout     time.Duration
}

func newOptionalSettings(options []Option) (settings optionalSettings) {
	for _, option := range options {
		option(&settings)
	}
	if settings.shutdownTimeout == 0 {
		settings.shutdownTimeout = defaultShutdownTimeout
	}
	if settings.stopTimeout == 0 {
		settings.stopTimeout = defaultStopTimeout
	}
	return settings
}

// ShutdownTimeout sets the time the HTTP server has to shut down
// gracefully once its context is canceled. It defaults to 3 seconds.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) {
		s.shutdownTimeout = timeout
	}
}

// StopTimeout sets the time Service.Stop waits for the server
// to terminate. It defaults to 30 seconds.
func StopTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) {
		s.stopTimeout = timeout
	}
}
