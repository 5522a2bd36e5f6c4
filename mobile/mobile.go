// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mobile lets an app built with gomobile solve linear programs.
// Problems go in as an objective string and newline-separated constraints;
// traces come back as text, whole or one table at a time through a Session.
//
// Places and the ratio test are package settings shared by every call.
package mobile // import "github.com/lpsteps/simplex/mobile"

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/lpsteps/simplex/config"
	"github.com/lpsteps/simplex/demo"
	"github.com/lpsteps/simplex/parse"
	"github.com/lpsteps/simplex/problem"
	"github.com/lpsteps/simplex/run"
	"github.com/lpsteps/simplex/simplex"
	"github.com/lpsteps/simplex/table"
	"github.com/lpsteps/simplex/tableau"
)

var conf config.Config

func init() {
	Reset()
}

// Reset restores the default settings.
func Reset() {
	conf.SetPrompt("")
	conf.SetPlaces(config.DefaultPlaces)
	conf.SetMaxSteps(config.DefaultMaxSteps)
	conf.SetLegacyRatio(false)
}

// SetPlaces sets the number of decimal digits kept in tableaux
// that hold decimal values.
func SetPlaces(places int) {
	conf.SetPlaces(places)
}

// SetLegacyRatio selects the ratio test over the first two rows only.
func SetLegacyRatio(on bool) {
	conf.SetLegacyRatio(on)
}

// lines splits newline-separated constraints, dropping blank lines.
func lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Solve solves the problem and returns its full trace.
// The constraints are given one per line.
func Solve(objective, constraints string) (result string, err error) {
	stdout := new(bytes.Buffer)
	c := conf
	c.SetOutput(stdout)
	c.SetErrOutput(io.Discard)
	err = run.Solve(&c, problem.Problem{Objective: objective, Constraints: lines(constraints)})
	return stdout.String(), err
}

// Session steps through the solution of one problem a table at a time.
type Session struct {
	engine  *simplex.Engine
	started bool
	done    bool
}

// NewSession parses the problem and builds its initial tableau.
// The constraints are given one per line.
func NewSession(objective, constraints string) (*Session, error) {
	p := parse.NewParser(&conf)
	obj, err := p.Parse(objective, true)
	if err != nil {
		return nil, errors.Wrap(err, "objective function")
	}
	var cons []parse.Equation
	for i, text := range lines(constraints) {
		eq, err := p.Parse(text, false)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %d", i+1)
		}
		cons = append(cons, eq)
	}
	t, basis, err := tableau.Build(obj, cons)
	if err != nil {
		return nil, err
	}
	c := conf
	return &Session{engine: simplex.NewEngine(&c, t, basis)}, nil
}

// Next returns the next part of the trace: first the initial table, then
// the table after each pivot, and finally the outcome. It returns
// ("", io.EOF) once the outcome has been returned.
func (s *Session) Next() (result string, err error) {
	e := s.engine
	var b bytes.Buffer
	switch {
	case s.done:
		return "", io.EOF
	case !s.started:
		s.started = true
		b.WriteString("Initial table:\n")
		err = table.Fprint(&b, e.Tableau(), e.Basis())
		return b.String(), err
	}
	status, err := e.Advance()
	if err != nil {
		s.done = true
		return "", err
	}
	switch status {
	case simplex.Running:
		fmt.Fprintf(&b, "Step %d:\n", e.Steps())
		err = table.Fprint(&b, e.Tableau(), e.Basis())
	case simplex.Optimal:
		s.done = true
		fmt.Fprintf(&b, "Optimal solution: %s\n", simplex.ReadSolution(e.Tableau(), e.Basis()))
	case simplex.Unbounded:
		s.done = true
		b.WriteString("There is no finite optimal solution. Stopping.\n")
	}
	return b.String(), err
}

// Status returns the state of the solve: RUNNING, OPTIMAL or UNBOUNDED.
func (s *Session) Status() string {
	return s.engine.Status().String()
}

// Demo returns the trace of the built-in example problems.
func Demo() (result string, err error) {
	stdout := new(bytes.Buffer)
	c := conf
	c.SetOutput(stdout)
	c.SetErrOutput(io.Discard)
	for i, p := range demo.Problems() {
		if i > 0 {
			stdout.WriteString("\n")
		}
		if err := run.Solve(&c, p); err != nil {
			return stdout.String(), err
		}
	}
	return stdout.String(), nil
}

// Help returns a short description of the input format.
func Help() string {
	return help
}
