// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the solver and its front ends.
// The zero value is ready to use.
package config // import "github.com/lpsteps/simplex/config"

import (
	"io"
	"os"
)

const (
	// DefaultPlaces is the number of decimal digits kept in a tableau
	// once a decimal value has entered it.
	DefaultPlaces = 2
	// DefaultMaxSteps bounds the number of pivots in one solve.
	DefaultMaxSteps = 100
)

type Config struct {
	output      io.Writer
	errOutput   io.Writer
	prompt      string
	places      int
	placesSet   bool
	maxSteps    int
	maxStepsSet bool
	legacyRatio bool
	debug       map[string]int
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Places returns the number of decimal places kept in decimal tableaux.
func (c *Config) Places() int {
	if !c.placesSet {
		return DefaultPlaces
	}
	return c.places
}

func (c *Config) SetPlaces(places int) {
	if places < 0 {
		places = 0
	}
	c.places = places
	c.placesSet = true
}

// MaxSteps returns the largest number of pivots a solve may perform.
// Zero means no limit.
func (c *Config) MaxSteps() int {
	if !c.maxStepsSet {
		return DefaultMaxSteps
	}
	return c.maxSteps
}

func (c *Config) SetMaxSteps(steps int) {
	if steps < 0 {
		steps = 0
	}
	c.maxSteps = steps
	c.maxStepsSet = true
}

// LegacyRatio reports whether the minimum-ratio test considers only the
// first two constraint rows, reproducing the behavior of the classroom
// tool this solver replaces.
func (c *Config) LegacyRatio() bool {
	return c.legacyRatio
}

func (c *Config) SetLegacyRatio(on bool) {
	c.legacyRatio = on
}

// Debug returns the value of the specified debug setting.
func (c *Config) Debug(s string) int {
	return c.debug[s]
}

// SetDebug sets the value of the specified debug setting.
func (c *Config) SetDebug(s string, state int) {
	if c.debug == nil {
		c.debug = make(map[string]int)
	}
	c.debug[s] = state
}

// DebugFlags lists the debug settings understood by SetDebug.
var DebugFlags = []string{
	"pivot",
	"tokens",
}
