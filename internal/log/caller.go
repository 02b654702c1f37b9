// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerField is a detail of the caller appended to log lines.
type callerField uint8

const (
	callerFile callerField = 1 << iota
	callerLine
	callerFunc

	allCallerFields = callerFile | callerLine | callerFunc
)

// callerSettings holds the enabled caller fields, and the
// fields set explicitly so a child logger can inherit the others.
type callerSettings struct {
	enabled callerField
	set     callerField
}

func (c *callerSettings) enable(field callerField, enabled bool) {
	c.set |= field
	if enabled {
		c.enabled |= field
		return
	}
	c.enabled &^= field
}

// mergeWith inherits the fields set in other but not in c.
func (c *callerSettings) mergeWith(other callerSettings) {
	inherited := other.set &^ c.set
	c.enabled |= other.enabled & inherited
	c.set |= inherited
}

// overrideWith takes every field set in other.
func (c *callerSettings) overrideWith(other callerSettings) {
	c.enabled = c.enabled&^other.set | other.enabled&other.set
	c.set |= other.set
}

// setDefaults leaves the unset fields disabled.
func (c *callerSettings) setDefaults() {
	c.set = allCallerFields
}

// getCallerString returns file:Lline:function for the caller
// of the public logging method.
func getCallerString(settings callerSettings) (s string) {
	if settings.enabled == 0 {
		return ""
	}

	const depth = 3
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "error"
	}

	fields := make([]string, 0, 3)
	if settings.enabled&callerFile != 0 {
		fields = append(fields, filepath.Base(file))
	}
	if settings.enabled&callerLine != 0 {
		fields = append(fields, "L"+strconv.Itoa(line))
	}
	if settings.enabled&callerFunc != 0 {
		if details := runtime.FuncForPC(pc); details != nil {
			fields = append(fields, strings.TrimLeft(filepath.Ext(details.Name()), "."))
		}
	}
	return strings.Join(fields, ":")
}
