// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import "errors"

var (
	// ErrServerDoneBeforeReady is returned when the server
	// terminates before listening.
	ErrServerDoneBeforeReady = errors.New("server terminated before being ready")
	// ErrStopTimeout is returned when the server does not
	// terminate in time after being stopped.
	ErrStopTimeout = errors.New("server exit timeout")
)
