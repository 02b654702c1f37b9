// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/resistance/config"
	"github.com/ChainSafe/resistance/internal/log"
	"github.com/ChainSafe/resistance/internal/metrics"
	"github.com/ChainSafe/resistance/internal/pprof"
	"github.com/ChainSafe/resistance/internal/sim"
	"github.com/ChainSafe/resistance/internal/tracing"
	"github.com/ChainSafe/resistance/lib/game"
	"github.com/ChainSafe/resistance/lib/rules"
	"github.com/ChainSafe/resistance/lib/telemetry"
	"github.com/pterm/pterm"
	"github.com/urfave/cli"
)

const serviceName = "resistance"

// playAction plays the configured number of simulated
// matches and prints their summaries.
func playAction(ctx *cli.Context) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Global.LogLvl)
	if err != nil {
		return err
	}
	log.Patch(log.SetLevel(level))

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop, err := startServices(runCtx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		stopErr := stop()
		if err == nil {
			err = stopErr
		}
	}()

	observer := game.Observer(telemetry.Noop{})
	if len(cfg.Telemetry.Endpoints) > 0 {
		mailer := telemetry.NewMailer(runCtx, cfg.Telemetry.Endpoints, logger)
		defer func() {
			if closeErr := mailer.Close(); closeErr != nil {
				logger.Warnf("closing telemetry: %s", closeErr)
			}
		}()
		observer = mailer
	}

	summaries := make([]sim.Summary, 0, cfg.Global.Matches)
	for i := 0; i < cfg.Global.Matches; i++ {
		seed := cfg.Global.Seed + int64(i)
		summary, err := playMatch(runCtx, cfg, seed, observer)
		if err != nil && !errors.Is(err, sim.ErrInterrupted) {
			return fmt.Errorf("playing match with seed %d: %w", seed, err)
		}
		if err != nil {
			logger.Warnf("match with seed %d: %s", seed, err)
		}
		summaries = append(summaries, summary)
	}

	table, err := renderSummaries(cfg.Global.Seed, summaries)
	if err != nil {
		return fmt.Errorf("rendering summaries: %w", err)
	}
	fmt.Fprintln(ctx.App.Writer, table)
	return nil
}

func playMatch(ctx context.Context, cfg *config.Config, seed int64,
	observer game.Observer) (summary sim.Summary, err error) {
	driver, err := sim.NewMatch(sim.Settings{
		Players: cfg.Game.Players,
		Seed:    seed,
		Rules: rules.Rules{
			MissionsToWin:    cfg.Game.MissionsToWin,
			MaxRejectedTeams: cfg.Game.MaxRejectedTeams,
		},
		VoteTimeout: time.Duration(cfg.Game.VoteTimeout),
		Observers:   []game.Observer{observer},
	})
	if err != nil {
		return summary, err
	}

	if timeout := time.Duration(cfg.Game.MatchTimeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return driver.Run(ctx)
}

// startServices starts the enabled metrics, pprof and tracing
// services, and returns a function stopping them.
func startServices(ctx context.Context, cfg *config.Config) (
	stop func() error, err error) {
	var stops []func() error
	stop = func() (err error) {
		for i := len(stops) - 1; i >= 0; i-- {
			if stopErr := stops[i](); stopErr != nil && err == nil {
				err = stopErr
			}
		}
		return err
	}

	if cfg.Metrics.Enabled {
		server := metrics.NewServer(cfg.Metrics.Address)
		if err := server.Start(); err != nil {
			return nil, fmt.Errorf("starting metrics server: %w", err)
		}
		stops = append(stops, server.Stop)
	}

	if cfg.Pprof.Enabled {
		service := pprof.NewService(pprof.Settings{
			ListeningAddress: cfg.Pprof.ListeningAddress,
			BlockProfileRate: cfg.Pprof.BlockProfileRate,
			MutexProfileRate: cfg.Pprof.MutexProfileRate,
		}, logger)
		if err := service.Start(); err != nil {
			_ = stop()
			return nil, fmt.Errorf("starting pprof service: %w", err)
		}
		stops = append(stops, service.Stop)
	}

	shutdown, err := tracing.Setup(ctx, serviceName, cfg.Tracing.Endpoint)
	if err != nil {
		_ = stop()
		return nil, fmt.Errorf("setting up tracing: %w", err)
	}
	stops = append(stops, func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return shutdown(shutdownCtx)
	})

	return stop, nil
}

func renderSummaries(firstSeed int64, summaries []sim.Summary) (string, error) {
	data := pterm.TableData{
		{"Seed", "Winner", "Score", "Rounds", "Rejected teams"},
	}
	wins := make(map[string]int)
	for i, summary := range summaries {
		winner := "none"
		if summary.Decided {
			winner = summary.Winner.String()
		}
		wins[winner]++
		data = append(data, []string{
			fmt.Sprint(firstSeed + int64(i)),
			winner,
			summary.Score.String(),
			fmt.Sprint(summary.Rounds),
			fmt.Sprint(summary.RejectedTeams),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\nwins: loyal %d, spies %d, undecided %d",
		table, wins[rules.Loyal.String()], wins[rules.Spies.String()], wins["none"]), nil
}
