// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package telemetry

import "github.com/ChainSafe/resistance/lib/game"

// Noop is a game observer discarding every event.
type Noop struct{}

var _ game.Observer = Noop{}

// Notify does nothing.
func (Noop) Notify(game.Event) {}
