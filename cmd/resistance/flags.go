// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import "github.com/urfave/cli"

var (
	// ConfigFlag is the TOML configuration file path
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag is the global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit, eror, warn, info, dbug and trce",
	}
	// SeedFlag seeds the first match, the next matches using the following seeds
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed of the first match, each next match using the next seed",
	}
	// MatchesFlag is the number of matches to play
	MatchesFlag = cli.IntFlag{
		Name:  "matches",
		Usage: "Number of matches to play",
	}
	// PlayersFlag is the number of players of each match
	PlayersFlag = cli.IntFlag{
		Name:  "players",
		Usage: "Number of players of each match, from 5 to 10",
	}
)

// Observability flags
var (
	// MetricsAddressFlag enables the prometheus server on the address given
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Enable the prometheus metrics server on the listening address given, eg localhost:9876",
	}
	// PprofAddressFlag enables the pprof server on the address given
	PprofAddressFlag = cli.StringFlag{
		Name:  "pprof-address",
		Usage: "Enable the pprof server on the listening address given, eg localhost:6060",
	}
	// TelemetryFlag adds a websocket telemetry endpoint
	TelemetryFlag = cli.StringSliceFlag{
		Name:  "telemetry",
		Usage: "Websocket telemetry endpoint URL, can be repeated",
	}
	// TracingEndpointFlag sets the OTLP HTTP traces endpoint
	TracingEndpointFlag = cli.StringFlag{
		Name:  "tracing-endpoint",
		Usage: "OTLP HTTP endpoint URL to export traces to, eg http://localhost:4318",
	}
)

// OutputFlag is the path the config command writes the configuration to
var OutputFlag = cli.StringFlag{
	Name:  "output",
	Usage: "Write the effective configuration to the TOML file given",
}

var playFlags = []cli.Flag{
	ConfigFlag,
	LogFlag,
	SeedFlag,
	MatchesFlag,
	PlayersFlag,
	MetricsAddressFlag,
	PprofAddressFlag,
	TelemetryFlag,
	TracingEndpointFlag,
}

var configFlags = append(append([]cli.Flag{}, playFlags...), OutputFlag)
