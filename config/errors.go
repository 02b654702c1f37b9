// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import "errors"

// ErrInvalidConfig is returned when a configuration value is not valid
var ErrInvalidConfig = errors.New("configuration is not valid")
