// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ChainSafe/resistance/internal/log"
	"github.com/ChainSafe/resistance/lib/rules"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
	"github.com/qdm12/gotree"
)

// Config is the configuration of the match runner.
type Config struct {
	Global    GlobalConfig    `toml:"global"`
	Game      GameConfig      `toml:"game"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Pprof     PprofConfig     `toml:"pprof"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Tracing   TracingConfig   `toml:"tracing"`
}

// GlobalConfig is the process wide configuration.
type GlobalConfig struct {
	LogLvl  string `toml:"log" env:"RESISTANCE_LOG" validate:"required"`
	Seed    int64  `toml:"seed" env:"RESISTANCE_SEED"`
	Matches int    `toml:"matches" env:"RESISTANCE_MATCHES" validate:"min=1,max=10000"`
}

// GameConfig is the configuration of every match.
type GameConfig struct {
	Players          int      `toml:"players" env:"RESISTANCE_GAME_PLAYERS" validate:"min=5,max=10"`
	MissionsToWin    int      `toml:"missions-to-win" env:"RESISTANCE_GAME_MISSIONS_TO_WIN" validate:"min=1,max=5"`
	MaxRejectedTeams int      `toml:"max-rejected-teams" env:"RESISTANCE_GAME_MAX_REJECTED_TEAMS" validate:"min=0"`
	VoteTimeout      Duration `toml:"vote-timeout" env:"RESISTANCE_GAME_VOTE_TIMEOUT"`
	MatchTimeout     Duration `toml:"match-timeout" env:"RESISTANCE_GAME_MATCH_TIMEOUT"`
}

// MetricsConfig is the prometheus metrics server configuration.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled" env:"RESISTANCE_METRICS_ENABLED"`
	Address string `toml:"address" env:"RESISTANCE_METRICS_ADDRESS" validate:"required_if=Enabled true"`
}

// PprofConfig is the pprof server configuration.
type PprofConfig struct {
	Enabled          bool   `toml:"enabled" env:"RESISTANCE_PPROF_ENABLED"`
	ListeningAddress string `toml:"listening-address" env:"RESISTANCE_PPROF_ADDRESS"`
	BlockProfileRate int    `toml:"block-profile-rate" env:"RESISTANCE_PPROF_BLOCK_RATE"`
	MutexProfileRate int    `toml:"mutex-profile-rate" env:"RESISTANCE_PPROF_MUTEX_RATE"`
}

// TelemetryConfig lists the websocket telemetry endpoints.
type TelemetryConfig struct {
	Endpoints []string `toml:"endpoints" env:"RESISTANCE_TELEMETRY_ENDPOINTS" envSeparator:"," validate:"dive,url"`
}

// TracingConfig is the OpenTelemetry trace exporter configuration.
type TracingConfig struct {
	// Endpoint is the OTLP HTTP endpoint URL. Tracing is disabled if empty.
	Endpoint string `toml:"endpoint" env:"RESISTANCE_TRACING_ENDPOINT" validate:"omitempty,url"`
}

// Duration is a time.Duration encoded as a duration string, such as "1m30s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			LogLvl:  "info",
			Seed:    1,
			Matches: 1,
		},
		Game: GameConfig{
			Players:          5,
			MissionsToWin:    3,
			MaxRejectedTeams: 5,
			VoteTimeout:      Duration(5 * time.Second),
			MatchTimeout:     Duration(time.Minute),
		},
		Metrics: MetricsConfig{
			Address: "localhost:9876",
		},
		Pprof: PprofConfig{
			ListeningAddress: "localhost:6060",
		},
	}
}

// Load decodes the TOML file at path on top of the default configuration.
func Load(path string) (cfg *Config, err error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing config file: %w", closeErr)
		}
	}()

	cfg = Default()
	if err = toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes the configuration in TOML to the file at path.
func (c *Config) Encode(path string) (err error) {
	b, err := toml.Marshal(*c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	const perm = 0o600
	if err := os.WriteFile(path, b, perm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides the configuration with the environment
// variables which are set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate returns an error if a configuration value is not valid.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	if _, err := log.ParseLevel(c.Global.LogLvl); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Game.MissionsToWin > rules.MissionsPerGame {
		return fmt.Errorf("%w: %d missions to win out of %d missions",
			ErrInvalidConfig, c.Game.MissionsToWin, rules.MissionsPerGame)
	}
	if c.Game.VoteTimeout < 0 || c.Game.MatchTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidConfig)
	}
	return nil
}

// String returns the configuration as a tree.
func (c *Config) String() string {
	return c.toLinesNode().String()
}

func (c *Config) toLinesNode() (node *gotree.Node) {
	node = gotree.New("Configuration")

	global := node.Appendf("Global:")
	global.Appendf("Log level: %s", c.Global.LogLvl)
	global.Appendf("Seed: %d", c.Global.Seed)
	global.Appendf("Matches: %d", c.Global.Matches)

	game := node.Appendf("Game:")
	game.Appendf("Players: %d", c.Game.Players)
	game.Appendf("Missions to win: %d", c.Game.MissionsToWin)
	if c.Game.MaxRejectedTeams == 0 {
		game.Appendf("Rejected teams limit: disabled")
	} else {
		game.Appendf("Rejected teams limit: %d", c.Game.MaxRejectedTeams)
	}
	game.Appendf("Vote timeout: %s", durationString(c.Game.VoteTimeout))
	game.Appendf("Match timeout: %s", durationString(c.Game.MatchTimeout))

	metrics := node.Appendf("Metrics:")
	if !c.Metrics.Enabled {
		metrics.Appendf("Enabled: no")
	} else {
		metrics.Appendf("Listening address: %s", c.Metrics.Address)
	}

	pprof := node.Appendf("Pprof:")
	if !c.Pprof.Enabled {
		pprof.Appendf("Enabled: no")
	} else {
		pprof.Appendf("Listening address: %s", c.Pprof.ListeningAddress)
		pprof.Appendf("Block profile rate: %d", c.Pprof.BlockProfileRate)
		pprof.Appendf("Mutex profile rate: %d", c.Pprof.MutexProfileRate)
	}

	telemetry := node.Appendf("Telemetry:")
	if len(c.Telemetry.Endpoints) == 0 {
		telemetry.Appendf("Endpoints: none")
	}
	for _, endpoint := range c.Telemetry.Endpoints {
		telemetry.Appendf("Endpoint: %s", endpoint)
	}

	tracing := node.Appendf("Tracing:")
	if c.Tracing.Endpoint == "" {
		tracing.Appendf("Enabled: no")
	} else {
		tracing.Appendf("Endpoint: %s", c.Tracing.Endpoint)
	}

	return node
}

func durationString(d Duration) string {
	if d == 0 {
		return "disabled"
	}
	return time.Duration(d).String()
}
