// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

const (
	// DoNotChange indicates the level of the logger should be
	// left as is. It is the zero value so unset configuration
	// fields keep the inherited level.
	DoNotChange Level = iota
	// Trace is the trace level.
	Trace
	// Debug is the debug level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the error level.
	Error
	// Critical is the critical level.
	Critical
)

type levelStyle struct {
	name   string
	short  string
	colour color.Attribute
}

var levelStyles = map[Level]levelStyle{
	Trace:    {name: "TRACE", short: "TRCE", colour: color.FgHiCyan},
	Debug:    {name: "DEBUG", short: "DBUG", colour: color.FgHiBlue},
	Info:     {name: "INFO", short: "INFO", colour: color.FgCyan},
	Warn:     {name: "WARN", short: "WARN", colour: color.FgYellow},
	Error:    {name: "ERROR", short: "EROR", colour: color.FgHiRed},
	Critical: {name: "CRITICAL", short: "CRIT", colour: color.FgRed},
}

func (level Level) String() (s string) {
	style, ok := levelStyles[level]
	if !ok {
		return "???"
	}
	return style.name
}

// ColouredString returns the level name in the colour of the level.
func (level Level) ColouredString() (s string) {
	style, ok := levelStyles[level]
	if !ok {
		return color.New(color.Reset).Sprint(level.String())
	}
	return color.New(style.colour).Sprint(style.name)
}

// ErrLevelNotRecognised is an error returned if the level string is
// not recognised by the ParseLevel function.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a level name, case insensitively. Short forms
// such as dbug or eror are accepted.
func ParseLevel(s string) (level Level, err error) {
	upper := strings.ToUpper(s)
	for level, style := range levelStyles {
		if upper == style.name || upper == style.short {
			return level, nil
		}
	}
	return DoNotChange, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
