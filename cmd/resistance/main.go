// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/resistance/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Critical(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "resistance"
	app.Usage = "Simulated matches of the Resistance social deduction game"
	app.Version = "0.1.0"
	app.Action = playAction
	app.Flags = playFlags
	app.Commands = []cli.Command{
		{
			Name:        "play",
			Usage:       "Play simulated matches",
			Description: "The play command plays simulated matches between bots and prints a summary of each match.",
			Action:      playAction,
			Flags:       playFlags,
		},
		{
			Name:        "config",
			Usage:       "Print the effective configuration",
			Description: "The config command prints the configuration merged from the defaults, the TOML file, the environment and the flags.",
			Action:      configAction,
			Flags:       configFlags,
		},
	}
	return app
}
