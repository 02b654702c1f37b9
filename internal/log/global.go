// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// processLogger is the root of every package logger.
var processLogger = New()

// NewFromGlobal creates a child of the process logger registered
// to receive its patches. Package loggers are created this way so
// the command can patch them all at once, and it should not be
// called per request or per game.
func NewFromGlobal(options ...Option) *Logger {
	return processLogger.newChild(options, true)
}

// Patch patches the process logger and all its children.
func Patch(options ...Option) {
	processLogger.Patch(options...)
}
