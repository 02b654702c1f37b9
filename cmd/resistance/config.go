// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/ChainSafe/resistance/config"
	"github.com/urfave/cli"
)

// loadConfig builds the configuration from the defaults, the
// TOML file if any, the environment and the flags, in this order
// of precedence, and validates it.
func loadConfig(ctx *cli.Context) (cfg *config.Config, err error) {
	cfg = config.Default()
	if path := ctx.String(ConfigFlag.Name); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
		logger.Debugf("configuration loaded from %s", path)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	applyFlags(ctx, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet(LogFlag.Name) {
		cfg.Global.LogLvl = ctx.String(LogFlag.Name)
	}
	if ctx.IsSet(SeedFlag.Name) {
		cfg.Global.Seed = ctx.Int64(SeedFlag.Name)
	}
	if ctx.IsSet(MatchesFlag.Name) {
		cfg.Global.Matches = ctx.Int(MatchesFlag.Name)
	}
	if ctx.IsSet(PlayersFlag.Name) {
		cfg.Game.Players = ctx.Int(PlayersFlag.Name)
	}
	if ctx.IsSet(MetricsAddressFlag.Name) {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Address = ctx.String(MetricsAddressFlag.Name)
	}
	if ctx.IsSet(PprofAddressFlag.Name) {
		cfg.Pprof.Enabled = true
		cfg.Pprof.ListeningAddress = ctx.String(PprofAddressFlag.Name)
	}
	if ctx.IsSet(TelemetryFlag.Name) {
		cfg.Telemetry.Endpoints = ctx.StringSlice(TelemetryFlag.Name)
	}
	if ctx.IsSet(TracingEndpointFlag.Name) {
		cfg.Tracing.Endpoint = ctx.String(TracingEndpointFlag.Name)
	}
}

// configAction prints the effective configuration, and writes
// it to the output file if one is given.
func configAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.App.Writer, cfg.String())

	if path := ctx.String(OutputFlag.Name); path != "" {
		if err := cfg.Encode(path); err != nil {
			return err
		}
		logger.Infof("configuration written to %s", path)
	}
	return nil
}
