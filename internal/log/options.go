// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

// Format is the output format of the logger.
type Format uint8

const (
	// FormatConsole prints the level coloured, for terminals.
	FormatConsole Format = iota
	// FormatPlain prints the level without any escape sequence.
	FormatPlain
)

// Option is the type to specify settings modifier
// for the logger operation.
type Option func(s *settings)

// SetLevel sets the level for the logger.
// DoNotChange leaves the current level untouched.
func SetLevel(level Level) Option {
	return func(s *settings) {
		if level == DoNotChange {
			return
		}
		s.level = &level
	}
}

// SetFormat set the format for the logger.
// The format defaults to FormatConsole.
func SetFormat(format Format) Option {
	return func(s *settings) {
		s.format = &format
	}
}

// SetWriter set the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// SetCallerFile enables or disables logging the caller file.
func SetCallerFile(enabled bool) Option {
	return func(s *settings) {
		s.caller.enable(callerFile, enabled)
	}
}

// SetCallerLine enables or disables logging the caller line number.
func SetCallerLine(enabled bool) Option {
	return func(s *settings) {
		s.caller.enable(callerLine, enabled)
	}
}

// SetCallerFunc enables or disables logging the caller function.
func SetCallerFunc(enabled bool) Option {
	return func(s *settings) {
		s.caller.enable(callerFunc, enabled)
	}
}

// AddContext adds the context for the logger as a key values pair.
// If a key already exists, the value is appended to the existing values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		s.context = append(s.context, contextKeyValues{key: key, values: []string{value}})
	}
}

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  callerSettings
	context []contextKeyValues
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergeWith sets values of other on s when they are not already set on s.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		level := *other.level
		s.level = &level
	}

	if s.format == nil && other.format != nil {
		format := *other.format
		s.format = &format
	}

	s.caller.mergeWith(other.caller)

	merged := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kv := range other.context {
		merged = append(merged, contextKeyValues{key: kv.key, values: append([]string(nil), kv.values...)})
	}
	for _, kv := range s.context {
		found := false
		for i := range merged {
			if merged[i].key == kv.key {
				merged[i].values = append(merged[i].values, kv.values...)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, kv)
		}
	}
	if len(merged) > 0 {
		s.context = merged
	}
}

// overrideWith sets every value set on other onto s.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}
	if other.level != nil {
		level := *other.level
		s.level = &level
	}
	if other.format != nil {
		format := *other.format
		s.format = &format
	}
	s.caller.overrideWith(other.caller)
	for _, kv := range other.context {
		for _, value := range kv.values {
			AddContext(kv.key, value)(s)
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.format == nil {
		format := FormatConsole
		s.format = &format
	}

	s.caller.setDefaults()
}
