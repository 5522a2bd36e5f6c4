// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lpsteps/simplex/config"
	"github.com/lpsteps/simplex/parse"
	"github.com/lpsteps/simplex/tableau"
)

// Step is one snapshot of a solve.
type Step struct {
	N       int // 0 for the initial tableau, then 1, 2, ...
	Tableau *tableau.Tableau
	Basis   tableau.Basis
	Status  Status
	// Row and Col locate the pivot that produced this tableau.
	// They are -1 for the initial tableau.
	Row, Col int
}

// Tag describes the step: "RUNNING step N", "OPTIMAL" or "UNBOUNDED".
func (s Step) Tag() string {
	if s.Status == Running {
		return fmt.Sprintf("%s step %d", s.Status, s.N)
	}
	return s.Status.String()
}

// Result is the record of a solve.
type Result struct {
	Objective   parse.Equation
	Constraints []parse.Equation
	// Steps holds the initial tableau and every pivot after it.
	// The status of the last step is the status of the solve.
	Steps []Step
}

// Final returns the last step.
func (r *Result) Final() Step {
	return r.Steps[len(r.Steps)-1]
}

// Status returns the status of the solve.
func (r *Result) Status() Status {
	return r.Final().Status
}

// Solve parses the objective function and constraints and runs the
// simplex method to completion. A parse failure is returned before any
// tableau is built, wrapping the *parse.Error. If the step limit is
// reached the partial result is returned together with ErrStepLimit.
func Solve(conf *config.Config, objective string, constraints []string) (*Result, error) {
	p := parse.NewParser(conf)
	obj, err := p.Parse(objective, true)
	if err != nil {
		return nil, errors.Wrap(err, "objective function")
	}
	cons := make([]parse.Equation, len(constraints))
	for i, c := range constraints {
		cons[i], err = p.Parse(c, false)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %d", i+1)
		}
	}
	return SolveEquations(conf, obj, cons)
}

// SolveEquations is like Solve for equations that are already parsed.
func SolveEquations(conf *config.Config, objective parse.Equation, constraints []parse.Equation) (*Result, error) {
	t, basis, err := tableau.Build(objective, constraints)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Objective:   objective,
		Constraints: constraints,
	}
	e := NewEngine(conf, t, basis)
	res.Steps = append(res.Steps, Step{Tableau: t, Basis: e.Basis(), Row: -1, Col: -1})
	for {
		status, err := e.Advance()
		if err != nil {
			return res, err
		}
		if status != Running {
			res.Steps[len(res.Steps)-1].Status = status
			return res, nil
		}
		row, col := e.LastPivot()
		res.Steps = append(res.Steps, Step{
			N:       e.Steps(),
			Tableau: e.Tableau(),
			Basis:   e.Basis(),
			Row:     row,
			Col:     col,
		})
	}
}
